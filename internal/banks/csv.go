package banks

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SrRenks/febraban-code/internal/model"
)

const (
	numFields = 2
	colCode   = 0
	colName   = 1
)

// ReadBanks reads a bank registry CSV (code,name) with a header row.
func ReadBanks(r io.Reader) ([]model.Bank, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading banks CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var banks []model.Bank
	for i, rec := range records[1:] {
		b, err := UnmarshalBank(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		banks = append(banks, b)
	}
	return banks, nil
}

// WriteBanks writes a bank registry CSV with a header row.
func WriteBanks(w io.Writer, banks []model.Bank) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "name"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range banks {
		if err := cw.Write(MarshalBank(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBank converts a Bank to a CSV row.
func MarshalBank(b model.Bank) []string {
	row := make([]string, numFields)
	row[colCode] = b.Code
	row[colName] = b.Name
	return row
}

// UnmarshalBank converts a CSV row to a Bank.
func UnmarshalBank(record []string) (model.Bank, error) {
	if len(record) != numFields {
		return model.Bank{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	code := record[colCode]
	if len(code) != 3 {
		return model.Bank{}, fmt.Errorf("bank code %q is not 3 digits", code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return model.Bank{}, fmt.Errorf("bank code %q is not 3 digits", code)
		}
	}

	return model.Bank{Code: code, Name: record[colName]}, nil
}
