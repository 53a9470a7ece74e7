package banks

import (
	"fmt"
	"os"

	"github.com/SrRenks/febraban-code/internal/model"
)

// Service provides in-memory lookup over the bank registry. The registry
// is informational only; parsing and verification never depend on it.
type Service struct {
	banks  []model.Bank
	byCode map[string]model.Bank
}

// NewService creates a Service from a slice of banks.
func NewService(banks []model.Bank) *Service {
	byCode := make(map[string]model.Bank, len(banks))
	for _, b := range banks {
		byCode[b.Code] = b
	}
	return &Service{banks: banks, byCode: byCode}
}

// Load reads a registry CSV and merges it over the built-in table.
// Entries from the file win on code collisions.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bank registry: %w", err)
	}
	defer f.Close()

	extra, err := ReadBanks(f)
	if err != nil {
		return nil, fmt.Errorf("reading bank registry: %w", err)
	}
	return NewService(merge(DefaultRegistry(), extra)), nil
}

// merge overlays extra onto base, replacing collisions in place and
// appending new codes in their file order.
func merge(base, extra []model.Bank) []model.Bank {
	index := make(map[string]int, len(base))
	for i, b := range base {
		index[b.Code] = i
	}

	merged := base
	for _, b := range extra {
		if i, ok := index[b.Code]; ok {
			merged[i] = b
			continue
		}
		index[b.Code] = len(merged)
		merged = append(merged, b)
	}
	return merged
}

// All returns all registered banks.
func (s *Service) All() []model.Bank {
	return s.banks
}

// Get returns a bank by its 3-digit settlement code.
func (s *Service) Get(code string) (model.Bank, bool) {
	b, ok := s.byCode[code]
	return b, ok
}

// Exists reports whether a settlement code is registered.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}
