// Package factor decodes the two numeric factors embedded in FEBRABAN
// payment codes: the expiry factor, a day count from a fixed epoch, and
// the value factor, a fixed-point amount with two decimal places.
package factor

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidFactor reports a factor with the wrong width or a non-digit
// character.
var ErrInvalidFactor = errors.New("invalid factor")

const (
	expiryWidth = 4
	valueWidth  = 10
)

// Epoch is the base date of the expiry day count.
var Epoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

// Expiry converts a 4-digit expiry factor into the date it encodes:
// Epoch plus factor days. The factor "0000" is the Epoch itself.
func Expiry(f string) (time.Time, error) {
	days, err := parse(f, expiryWidth)
	if err != nil {
		return time.Time{}, err
	}
	return Epoch.AddDate(0, 0, int(days)), nil
}

// Amount converts a 10-digit value factor into a decimal amount. The last
// two digits are the fractional part, so "0000001000" is 10.00.
func Amount(f string) (decimal.Decimal, error) {
	cents, err := parse(f, valueWidth)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(cents, -2), nil
}

func parse(f string, width int) (int64, error) {
	if len(f) != width {
		return 0, fmt.Errorf("%w: %q is not %d digits", ErrInvalidFactor, f, width)
	}
	var n int64
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return 0, fmt.Errorf("%w: %q contains a non-digit", ErrInvalidFactor, f)
		}
		n = n*10 + int64(f[i]-'0')
	}
	return n, nil
}
