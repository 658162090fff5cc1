package catalog

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateEntry(ctx context.Context, e *Entry) error {
	if e.Code == "" {
		return fmt.Errorf("code is required")
	}
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	if existing, err := s.repo.GetByCode(ctx, e.Code); err == nil && existing != nil {
		return fmt.Errorf("test code %s already exists", e.Code)
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) GetEntry(ctx context.Context, code string) (*Entry, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) ListEntries(ctx context.Context, limit, offset int) ([]*Entry, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListAll(ctx context.Context) ([]*Entry, error) {
	return s.repo.ListAll(ctx)
}

// MergeSeed inserts every seed entry whose code is not yet present.
// Existing entries are never modified. Returns the number inserted.
func (s *Service) MergeSeed(ctx context.Context, seed []*Entry) (int, error) {
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[e.Code] = true
	}
	inserted := 0
	for _, e := range seed {
		if known[e.Code] {
			continue
		}
		if err := s.repo.Create(ctx, e); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", e.Code, err)
		}
		inserted++
	}
	return inserted, nil
}

// Lookup resolves the unit and reference range for one component of a test.
// Misses yield empty strings: the caller treats them as "unspecified" and
// renders blank cells.
func (s *Service) Lookup(ctx context.Context, testCode, componentName string) (unit, referenceRange string) {
	e, err := s.repo.GetByCode(ctx, testCode)
	if err != nil || e == nil {
		return "", ""
	}
	return LookupIn(e, componentName)
}

// LookupIn is the pure lookup over an already-fetched entry.
func LookupIn(e *Entry, componentName string) (unit, referenceRange string) {
	if len(e.ReferenceRange) == 1 {
		for _, r := range e.ReferenceRange {
			return e.Unit, r
		}
	}

	stripped := stripPanelPrefix(componentName)
	if r, ok := e.ReferenceRange[componentName]; ok {
		referenceRange = r
	} else if r, ok := e.ReferenceRange[stripped]; ok {
		referenceRange = r
	}

	if u, ok := e.UnitPerTest[componentName]; ok {
		unit = u
	} else if u, ok := e.UnitPerTest[stripped]; ok {
		unit = u
	} else if referenceRange != "" {
		unit = e.Unit
	}
	return unit, referenceRange
}

// stripPanelPrefix removes a leading "<Panel Name> - " from a composite
// component name, e.g. "Liver Profile - SGPT" -> "SGPT".
func stripPanelPrefix(name string) string {
	if i := strings.Index(name, " - "); i >= 0 {
		return name[i+3:]
	}
	return name
}
