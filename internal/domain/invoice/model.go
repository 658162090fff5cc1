package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Status values an invoice moves through.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// LineItem is one billed test on an invoice.
type LineItem struct {
	TestCode  string  `json:"testCode"`
	TestName  string  `json:"testName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Record is a stored invoice. DisplayID is the human-facing identifier
// ("INV20260829-0001"); ID is the storage key.
type Record struct {
	ID              uuid.UUID  `json:"-"`
	DisplayID       string     `json:"id"`
	PatientID       string     `json:"patientId"`
	PatientName     string     `json:"patientName"`
	LineItems       []LineItem `json:"lineItems"`
	Subtotal        float64    `json:"subtotal"`
	DiscountPercent float64    `json:"discountPercent"`
	DiscountAmount  float64    `json:"discountAmount"`
	GrandTotal      float64    `json:"grandTotal"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}
