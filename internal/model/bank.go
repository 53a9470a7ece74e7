package model

// Bank represents a row in the bank registry: a 3-digit settlement code
// and the institution it identifies.
type Bank struct {
	Code string
	Name string
}
