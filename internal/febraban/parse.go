package febraban

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SrRenks/febraban-code/internal/checksum"
	"github.com/SrRenks/febraban-code/internal/factor"
	"github.com/SrRenks/febraban-code/internal/model"
)

// Parse errors.
var (
	// ErrInvalidInput reports input that is not text or carries no digits.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidLength reports a digit count that matches neither encoding.
	ErrInvalidLength = errors.New("code must have 44 (bar) or 47 (line) digits")
	// ErrMalformedLayout reports a code whose sections cannot be extracted.
	ErrMalformedLayout = errors.New("malformed code layout")
)

const (
	barLen  = 44
	lineLen = 47
)

// Parse decodes raw text into a Code. Every rune that is not an ASCII
// digit is stripped first, so a formatted line ("00190.50095 40144. ...")
// parses the same as its bare digits. The remaining digit count selects
// the encoding: 44 is a bar string, 47 is a line string, anything else is
// ErrInvalidLength.
//
// Parse does not verify check digits; a structurally well-formed code
// parses even when its digits fail verification. Use Validate for that.
func Parse(raw string) (*Code, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidInput)
	}
	digits := clean(raw)
	if digits == "" {
		return nil, fmt.Errorf("%w: no digits in %q", ErrInvalidInput, raw)
	}

	var (
		c   *Code
		err error
	)
	switch len(digits) {
	case barLen:
		c, err = parseBar(digits)
	case lineLen:
		c, err = parseLine(digits)
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(digits))
	}
	if err != nil {
		return nil, err
	}

	if c.expiry, err = factor.Expiry(c.expiryFactor); err != nil {
		return nil, fmt.Errorf("decoding expiry factor: %w", err)
	}
	if c.amount, err = factor.Amount(c.valueFactor); err != nil {
		return nil, fmt.Errorf("decoding value factor: %w", err)
	}
	return c, nil
}

// parseBar splits a 44-digit bar string:
// bank(3) currency(1) check(1) expiry(4) value(10) field1(5) field2(10) field3(10).
// The bar form carries no field check digits, so they are derived here.
func parseBar(digits string) (*Code, error) {
	if !isDigits(digits) {
		return nil, fmt.Errorf("%w: non-digit in %q", ErrMalformedLayout, digits)
	}
	c := &Code{
		kind:         model.KindBar,
		bank:         digits[0:3],
		currency:     digits[3:4],
		checkDigit:   int(digits[4] - '0'),
		expiryFactor: digits[5:9],
		valueFactor:  digits[9:19],
	}
	c.field1 = model.Field{Info: digits[19:24], Check: checksum.Mod10(c.bank + c.currency + digits[19:24])}
	c.field2 = model.Field{Info: digits[24:34], Check: checksum.Mod10(digits[24:34])}
	c.field3 = model.Field{Info: digits[34:44], Check: checksum.Mod10(digits[34:44])}
	return c, nil
}

// parseLine splits a 47-digit line string:
// bank(3) currency(1) field1(5+1) field2(10+1) field3(10+1) check(1) expiry(4) value(10).
// Field check digits are stored as typed, not recomputed.
func parseLine(digits string) (*Code, error) {
	if !isDigits(digits) {
		return nil, fmt.Errorf("%w: non-digit in %q", ErrMalformedLayout, digits)
	}
	return &Code{
		kind:         model.KindLine,
		bank:         digits[0:3],
		currency:     digits[3:4],
		field1:       model.Field{Info: digits[4:9], Check: int(digits[9] - '0')},
		field2:       model.Field{Info: digits[10:20], Check: int(digits[20] - '0')},
		field3:       model.Field{Info: digits[21:31], Check: int(digits[31] - '0')},
		checkDigit:   int(digits[32] - '0'),
		expiryFactor: digits[33:37],
		valueFactor:  digits[37:47],
	}, nil
}

// clean strips every byte outside '0'..'9'. Multi-byte UTF-8 sequences
// never contain ASCII digit bytes, so a byte scan is safe.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(lineLen)
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
