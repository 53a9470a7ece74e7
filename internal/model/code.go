package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the textual encoding a payment code was read from.
type Kind string

const (
	KindBar  Kind = "bar"  // 44-digit barcode form
	KindLine Kind = "line" // 47-digit typeable form
)

// Field is one free segment of a payment code: a digit payload and its
// modulo-10 check digit.
type Field struct {
	Info  string
	Check int
}

// Info is the fully decoded record of a payment code.
type Info struct {
	Kind         Kind
	Bank         string // 3-digit settlement code
	Currency     string // single digit, 9 = BRL
	CheckDigit   int    // general modulo-11 check digit
	ExpiryFactor string
	Expiry       time.Time
	ValueFactor  string
	Amount       decimal.Decimal
	Field1       Field
	Field2       Field
	Field3       Field
}
