package report

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is one measured or observed value on a report. Values are
// kept as the operator entered them; qualitative outcomes ride in
// Comments.
type TestResult struct {
	TestCode       string `json:"testCode"`
	TestName       string `json:"testName"`
	Value          string `json:"value"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"referenceRange"`
	Comments       string `json:"comments"`
}

// Record is a stored report for one patient encounter. Results keep
// insertion order; grouping by test code happens at render time only.
type Record struct {
	ID            uuid.UUID    `json:"-"`
	DisplayID     string       `json:"id"`
	PatientID     string       `json:"patientId"`
	PatientName   string       `json:"patientName"`
	InvoiceID     string       `json:"invoiceId,omitempty"`
	Results       []TestResult `json:"results"`
	DoctorRemarks string       `json:"doctorRemarks"`
	ReviewedBy    string       `json:"reviewedBy"`
	CreatedAt     time.Time    `json:"createdAt"`
}
