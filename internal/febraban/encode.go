package febraban

import (
	"fmt"
	"strconv"
)

// Bar returns the 44-digit bar representation: bank, currency, general
// check digit, expiry factor, value factor, then the three field payloads.
// Field check digits are derivable and not part of this form.
func (c *Code) Bar() string {
	return c.bank + c.currency + strconv.Itoa(c.checkDigit) +
		c.expiryFactor + c.valueFactor +
		c.field1.Info + c.field2.Info + c.field3.Info
}

// Line returns the 47-digit line representation, each field followed by
// its check digit. When formatted is true the conventional separators are
// inserted: a dot after the fifth digit of each field group and a space
// between groups.
func (c *Code) Line(formatted bool) string {
	if formatted {
		return fmt.Sprintf("%s%s%s.%s%d %s.%s%d %s.%s%d %d %s%s",
			c.bank, c.currency, c.field1.Info[:1], c.field1.Info[1:], c.field1.Check,
			c.field2.Info[:5], c.field2.Info[5:], c.field2.Check,
			c.field3.Info[:5], c.field3.Info[5:], c.field3.Check,
			c.checkDigit, c.expiryFactor, c.valueFactor)
	}
	return c.bank + c.currency +
		c.field1.Info + strconv.Itoa(c.field1.Check) +
		c.field2.Info + strconv.Itoa(c.field2.Check) +
		c.field3.Info + strconv.Itoa(c.field3.Check) +
		strconv.Itoa(c.checkDigit) + c.expiryFactor + c.valueFactor
}
