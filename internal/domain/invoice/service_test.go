package invoice

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"
)

type mockRepo struct {
	invoices []*Record
}

func (m *mockRepo) Create(_ context.Context, rec *Record) error {
	rec.CreatedAt = time.Now()
	m.invoices = append(m.invoices, rec)
	return nil
}

func (m *mockRepo) GetByDisplayID(_ context.Context, displayID string) (*Record, error) {
	for _, rec := range m.invoices {
		if rec.DisplayID == displayID {
			return rec, nil
		}
	}
	return nil, errNotFound
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Record, int, error) {
	return m.invoices, len(m.invoices), nil
}

func (m *mockRepo) ListBetween(_ context.Context, from, to time.Time) ([]*Record, error) {
	return m.invoices, nil
}

func (m *mockRepo) Count(_ context.Context) (int, error) {
	return len(m.invoices), nil
}

var errNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc := NewService(&mockRepo{})
	rec, err := svc.CreateInvoice(context.Background(), CreateInput{
		PatientID:   "PAT20260829-0001",
		PatientName: "Jane Perera",
		LineItems: []LineItemInput{
			{TestCode: "FBC", TestName: "Full Blood Count", Quantity: 1, UnitPrice: 1500},
			{TestCode: "LIPID", TestName: "Lipid Profile", Quantity: 2, UnitPrice: 2250.50},
		},
		DiscountPercent: 0.1,
		Status:          StatusPaid,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec.LineItems[0].Total != 1500 {
		t.Errorf("line 0 total: got %v, want 1500", rec.LineItems[0].Total)
	}
	if rec.LineItems[1].Total != 4501 {
		t.Errorf("line 1 total: got %v, want 4501", rec.LineItems[1].Total)
	}
	if rec.Subtotal != 6001 {
		t.Errorf("subtotal: got %v, want 6001", rec.Subtotal)
	}
	if rec.DiscountAmount != 600.10 {
		t.Errorf("discount amount: got %v, want 600.10", rec.DiscountAmount)
	}
	if rec.GrandTotal != 5400.90 {
		t.Errorf("grand total: got %v, want 5400.90", rec.GrandTotal)
	}
}

func TestCreateInvoiceGrandTotalIdentity(t *testing.T) {
	svc := NewService(&mockRepo{})
	cases := []struct {
		price    float64
		qty      int
		discount float64
	}{
		{999.99, 3, 0.15},
		{0.01, 7, 0.33},
		{1234.56, 1, 0},
		{10, 100, 1},
	}
	for _, tc := range cases {
		rec, err := svc.CreateInvoice(context.Background(), CreateInput{
			PatientID:       "PAT20260829-0001",
			LineItems:       []LineItemInput{{TestCode: "FBS", Quantity: tc.qty, UnitPrice: tc.price}},
			DiscountPercent: tc.discount,
		})
		if err != nil {
			t.Fatalf("create (%+v): %v", tc, err)
		}
		diff := math.Abs(rec.GrandTotal - (rec.Subtotal - rec.DiscountAmount))
		if diff > 1e-9 {
			t.Errorf("grandTotal drift %v for %+v", diff, tc)
		}
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()
	item := LineItemInput{TestCode: "FBC", Quantity: 1, UnitPrice: 100}

	if _, err := svc.CreateInvoice(ctx, CreateInput{LineItems: []LineItemInput{item}}); err == nil {
		t.Error("expected error for missing patient")
	}
	if _, err := svc.CreateInvoice(ctx, CreateInput{PatientID: "PAT1"}); err == nil {
		t.Error("expected error for no line items")
	}
	if _, err := svc.CreateInvoice(ctx, CreateInput{
		PatientID: "PAT1", LineItems: []LineItemInput{item}, DiscountPercent: 25,
	}); err == nil {
		t.Error("expected error for discount outside 0..1")
	}
	if _, err := svc.CreateInvoice(ctx, CreateInput{
		PatientID: "PAT1", LineItems: []LineItemInput{{TestCode: "FBC", Quantity: 0, UnitPrice: 100}},
	}); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := svc.CreateInvoice(ctx, CreateInput{
		PatientID: "PAT1", LineItems: []LineItemInput{item}, Status: "void",
	}); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestCreateInvoiceDefaultsStatusAndSequence(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()
	item := LineItemInput{TestCode: "FBC", Quantity: 1, UnitPrice: 100}

	first, err := svc.CreateInvoice(ctx, CreateInput{PatientID: "PAT1", LineItems: []LineItemInput{item}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != StatusPending {
		t.Errorf("default status: got %q, want %q", first.Status, StatusPending)
	}
	second, err := svc.CreateInvoice(ctx, CreateInput{PatientID: "PAT1", LineItems: []LineItemInput{item}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasSuffix(first.DisplayID, "-0001") || !strings.HasSuffix(second.DisplayID, "-0002") {
		t.Errorf("sequence: got %s then %s", first.DisplayID, second.DisplayID)
	}
}
