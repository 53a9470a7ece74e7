// Package febraban parses, verifies and re-encodes FEBRABAN bank payment
// codes. Every code has two equivalent textual forms: the 44-digit "bar"
// string printed under the barcode and the 47-digit "line" string typed by
// a person. Parse accepts either form; the resulting Code can render both.
package febraban

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SrRenks/febraban-code/internal/model"
)

// Code is a payment code decoded into its fields. A Code is immutable
// after Parse and safe for concurrent use.
type Code struct {
	kind         model.Kind
	bank         string
	currency     string
	checkDigit   int
	expiryFactor string
	expiry       time.Time
	valueFactor  string
	amount       decimal.Decimal
	field1       model.Field
	field2       model.Field
	field3       model.Field
}

// Kind reports which encoding the code was parsed from.
func (c *Code) Kind() model.Kind { return c.kind }

// Bank returns the 3-digit settlement code of the issuing bank.
func (c *Code) Bank() string { return c.bank }

// Currency returns the single currency digit (9 = BRL).
func (c *Code) Currency() string { return c.currency }

// Expiry returns the due date encoded by the expiry factor.
func (c *Code) Expiry() time.Time { return c.expiry }

// Amount returns the amount encoded by the value factor.
func (c *Code) Amount() decimal.Decimal { return c.amount }

// Info returns the fully decoded record of the code.
func (c *Code) Info() model.Info {
	return model.Info{
		Kind:         c.kind,
		Bank:         c.bank,
		Currency:     c.currency,
		CheckDigit:   c.checkDigit,
		ExpiryFactor: c.expiryFactor,
		Expiry:       c.expiry,
		ValueFactor:  c.valueFactor,
		Amount:       c.amount,
		Field1:       c.field1,
		Field2:       c.field2,
		Field3:       c.field3,
	}
}
