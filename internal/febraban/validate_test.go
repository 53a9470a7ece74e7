package febraban

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_KnownGood(t *testing.T) {
	for _, s := range samples {
		for _, raw := range []string{s.bar, s.line, s.formatted} {
			c, err := Parse(raw)
			require.NoError(t, err, s.name)
			assert.True(t, c.Validate(), "%s: %q", s.name, raw)
		}
	}
}

func TestValidate_CorruptedLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"field payload digit changed", "00190590954014481606906809350314337370000000100"},
		{"field check digit changed", "00190500954014481606006809350314337370000000100"},
		{"general check digit changed", "00190500954014481606906809350314537370000000100"},
	}

	for _, tt := range tests {
		c, err := Parse(tt.raw)
		require.NoError(t, err, tt.name)
		assert.False(t, c.Validate(), tt.name)
	}
}

func TestValidate_CorruptedBar(t *testing.T) {
	// bar field payloads are not covered by stored field check digits;
	// the general modulo-11 digit still catches the change
	c, err := Parse("00193373700000001000600940144816060680935031")
	require.NoError(t, err)
	assert.False(t, c.Validate())
}

func TestValidate_DetectsSingleFlips(t *testing.T) {
	for _, s := range samples {
		if s.check == 1 {
			// a general check digit of 1 also stands for raw modulo-11
			// results 0, 10 and 11, so single flips on such codes can
			// go undetected
			continue
		}
		for i := range s.line {
			c, err := Parse(flipDigit(s.line, i))
			require.NoError(t, err, "%s line pos %d", s.name, i)
			assert.False(t, c.Validate(), "%s line pos %d", s.name, i)
		}
		for i := range s.bar {
			c, err := Parse(flipDigit(s.bar, i))
			require.NoError(t, err, "%s bar pos %d", s.name, i)
			assert.False(t, c.Validate(), "%s bar pos %d", s.name, i)
		}
	}
}

func flipDigit(s string, i int) string {
	d := (int(s[i]-'0') + 1) % 10
	return s[:i] + strconv.Itoa(d) + s[i+1:]
}
