package invoice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/labcore/lims/pkg/displayid"
)

// Service handles invoice creation and retrieval. Totals are always
// recomputed server-side from line items; caller-supplied totals are
// ignored.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LineItemInput is one requested billing line. Total is computed, not
// accepted from the caller.
type LineItemInput struct {
	TestCode  string  `json:"testCode"`
	TestName  string  `json:"testName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type CreateInput struct {
	PatientID       string          `json:"patientId"`
	PatientName     string          `json:"patientName"`
	LineItems       []LineItemInput `json:"lineItems"`
	DiscountPercent float64         `json:"discountPercent"`
	Status          string          `json:"status"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) CreateInvoice(ctx context.Context, in CreateInput) (*Record, error) {
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, fmt.Errorf("patient is required")
	}
	if len(in.LineItems) == 0 {
		return nil, fmt.Errorf("invoice needs at least one line item")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 1 {
		return nil, fmt.Errorf("discount percent must be a fraction between 0 and 1")
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if status != StatusPaid && status != StatusPending {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	rec := &Record{
		PatientID:       strings.TrimSpace(in.PatientID),
		PatientName:     strings.TrimSpace(in.PatientName),
		DiscountPercent: in.DiscountPercent,
		Status:          status,
	}

	for _, li := range in.LineItems {
		if strings.TrimSpace(li.TestCode) == "" {
			return nil, fmt.Errorf("line item test code is required")
		}
		if li.Quantity < 1 {
			return nil, fmt.Errorf("line item quantity must be at least 1")
		}
		if li.UnitPrice < 0 {
			return nil, fmt.Errorf("line item unit price must not be negative")
		}
		total := round2(li.UnitPrice * float64(li.Quantity))
		rec.LineItems = append(rec.LineItems, LineItem{
			TestCode:  strings.TrimSpace(li.TestCode),
			TestName:  strings.TrimSpace(li.TestName),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     total,
		})
		rec.Subtotal = round2(rec.Subtotal + total)
	}

	rec.DiscountAmount = round2(rec.Subtotal * rec.DiscountPercent)
	rec.GrandTotal = round2(rec.Subtotal - rec.DiscountAmount)

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}
	rec.DisplayID = displayid.New("INV", time.Now(), n)

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	log.Info().
		Str("invoice_id", rec.DisplayID).
		Str("patient_id", rec.PatientID).
		Float64("grand_total", rec.GrandTotal).
		Msg("invoice created")
	return rec, nil
}

func (s *Service) GetInvoice(ctx context.Context, displayID string) (*Record, error) {
	return s.repo.GetByDisplayID(ctx, displayID)
}

func (s *Service) ListInvoices(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return s.repo.List(ctx, limit, offset)
}
