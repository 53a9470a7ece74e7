package febraban

import "github.com/SrRenks/febraban-code/internal/checksum"

// Validate recomputes every check digit and compares it with the stored
// one: modulo 10 over bank+currency+field1 payload, over the field2
// payload and over the field3 payload, then modulo 11 over the bar form
// with its check position removed. A false result means a well-formed
// code that fails verification; it is not an error.
//
// For codes parsed from the bar form the three field comparisons always
// hold, since the bar form derives those digits rather than carrying them.
func (c *Code) Validate() bool {
	if checksum.Mod10(c.bank+c.currency+c.field1.Info) != c.field1.Check {
		return false
	}
	if checksum.Mod10(c.field2.Info) != c.field2.Check {
		return false
	}
	if checksum.Mod10(c.field3.Info) != c.field3.Check {
		return false
	}
	bar := c.Bar()
	return checksum.Mod11(bar[:4]+bar[5:]) == c.checkDigit
}
