package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/domain/invoice"
)

// Overview is the full dashboard payload for one filter window.
type Overview struct {
	Filter     string           `json:"filter"`
	Summary    Summary          `json:"summary"`
	ByDay      []DayBucket      `json:"byDay"`
	ByCategory []CategoryBucket `json:"byCategory"`
}

type Service struct {
	invoices invoice.Repository
	catalog  *catalog.Service
}

func NewService(invoices invoice.Repository, cat *catalog.Service) *Service {
	return &Service{invoices: invoices, catalog: cat}
}

// Overview aggregates the invoices inside the filter window against the
// current catalog.
func (s *Service) Overview(ctx context.Context, filter string) (*Overview, error) {
	if filter == "" {
		filter = FilterToday
	}
	from, to := Range(filter, time.Now())

	invoices, err := s.invoices.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	entries, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	cat := make(Catalog, len(entries))
	for _, e := range entries {
		cat[e.Code] = CostInfo{EstimatedCost: e.EstimatedCost, Category: e.Category}
	}

	return &Overview{
		Filter:     filter,
		Summary:    Summarize(invoices, cat),
		ByDay:      ByDay(invoices),
		ByCategory: ByCategory(invoices, cat),
	}, nil
}
