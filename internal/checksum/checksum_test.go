package checksum

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod10(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"0", 0},
		{"5", 9},
		{"9", 1},
		{"10", 9},
		{"19", 0},
		{"55", 4},
		{"261533", 4},
		{"7992739871", 3}, // classic Luhn payload
		{"001905009", 5},
		{"4014481606", 9},
		{"0680935031", 4},
		{"0000000000", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mod10(tt.digits), "Mod10(%q)", tt.digits)
	}
}

func TestMod10_ZeroWhenTotalDivides(t *testing.T) {
	// inputs whose weighted total is already a multiple of 10
	for _, digits := range []string{"19", "24", "38", "43", "57", "0000000000"} {
		assert.Equal(t, 0, Mod10(digits), "Mod10(%q)", digits)
	}
}

func TestMod10_RangeIsZeroToNine(t *testing.T) {
	for n := 0; n < 2000; n++ {
		digits := strconv.Itoa(n)
		got := Mod10(digits)
		assert.GreaterOrEqual(t, got, 0, "Mod10(%q)", digits)
		assert.LessOrEqual(t, got, 9, "Mod10(%q)", digits)
	}
}

func TestMod11(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"1", 9},
		{"2", 7},
		{"8", 6},
		{"123", 6},
		{"9999", 6},
		{"3419", 3},
		{"123456789", 7},
		// 43-digit general check input of a published bank slip
		{"0019373700000001000500940144816060680935031", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mod11(tt.digits), "Mod11(%q)", tt.digits)
	}
}

func TestMod11_ExceptionsCollapseToOne(t *testing.T) {
	// raw results 0, 10 and 11 all map to check digit 1
	for _, digits := range []string{"0", "14", "28", "31", "6", "23", "37", "5", "19", "22"} {
		assert.Equal(t, 1, Mod11(digits), "Mod11(%q)", digits)
	}
}

func TestMod11_RangeIsOneToNine(t *testing.T) {
	for n := 0; n < 2000; n++ {
		digits := strconv.Itoa(n)
		got := Mod11(digits)
		assert.GreaterOrEqual(t, got, 1, "Mod11(%q)", digits)
		assert.LessOrEqual(t, got, 9, "Mod11(%q)", digits)
	}
}
