package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/labcore/lims/internal/domain/catalog"
	"github.com/labcore/lims/internal/labcalc"
	"github.com/labcore/lims/pkg/displayid"
)

// Service assembles submitted panel state into stored reports and builds
// render-ready sections for viewing.
type Service struct {
	repo    Repository
	catalog *catalog.Service
}

func NewService(repo Repository, cat *catalog.Service) *Service {
	return &Service{repo: repo, catalog: cat}
}

// GenericPanel is one non-specialized test submission: raw values keyed
// by component name.
type GenericPanel struct {
	TestCode string            `json:"testCode"`
	Values   map[string]string `json:"values"`
}

// CreateInput is the full report form state. A nil panel means the panel
// was not selected.
type CreateInput struct {
	PatientID     string              `json:"patientId"`
	PatientName   string              `json:"patientName"`
	InvoiceID     string              `json:"invoiceId,omitempty"`
	DoctorRemarks string              `json:"doctorRemarks"`
	ReviewedBy    string              `json:"reviewedBy"`
	FBC           *FBCPanel           `json:"fbc,omitempty"`
	Lipid         *labcalc.LipidInputs `json:"lipid,omitempty"`
	UFR           *UFRPanel           `json:"ufr,omitempty"`
	OGTT          *OGTTPanel          `json:"ogtt,omitempty"`
	PPBS          *GlucoseEntry       `json:"ppbs,omitempty"`
	BSS           []GlucoseEntry      `json:"bss,omitempty"`
	Generic       []GenericPanel      `json:"generic,omitempty"`
}

// Assemble flattens every selected panel into the ordered result list
// that would be persisted, dropping blank values.
func (s *Service) Assemble(ctx context.Context, in CreateInput) ([]TestResult, error) {
	var results []TestResult
	if in.FBC != nil {
		results = append(results, AssembleFBC(*in.FBC)...)
	}
	if in.Lipid != nil {
		results = append(results, AssembleLipid(*in.Lipid)...)
	}
	if in.UFR != nil {
		results = append(results, AssembleUFR(*in.UFR)...)
	}
	if in.OGTT != nil {
		results = append(results, AssembleOGTT(*in.OGTT)...)
	}
	if in.PPBS != nil {
		results = append(results, AssemblePPBS(*in.PPBS)...)
	}
	if len(in.BSS) > 0 {
		results = append(results, AssembleBSS(in.BSS)...)
	}
	for _, g := range in.Generic {
		entry, err := s.catalog.GetEntry(ctx, g.TestCode)
		if err != nil {
			return nil, fmt.Errorf("unknown test code %q", g.TestCode)
		}
		results = append(results, AssembleGeneric(entry, g.Values)...)
	}
	return results, nil
}

func (s *Service) CreateReport(ctx context.Context, in CreateInput) (*Record, error) {
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, fmt.Errorf("patient is required")
	}
	if strings.TrimSpace(in.ReviewedBy) == "" {
		return nil, fmt.Errorf("reviewed by is required")
	}

	results, err := s.Assemble(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("report needs at least one non-empty result")
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	rec := &Record{
		DisplayID:     displayid.New("REP", time.Now(), n),
		PatientID:     strings.TrimSpace(in.PatientID),
		PatientName:   strings.TrimSpace(in.PatientName),
		InvoiceID:     strings.TrimSpace(in.InvoiceID),
		Results:       results,
		DoctorRemarks: strings.TrimSpace(in.DoctorRemarks),
		ReviewedBy:    strings.TrimSpace(in.ReviewedBy),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	log.Info().
		Str("report_id", rec.DisplayID).
		Str("patient_id", rec.PatientID).
		Int("results", len(rec.Results)).
		Msg("report created")
	return rec, nil
}

func (s *Service) GetReport(ctx context.Context, displayID string) (*Record, error) {
	return s.repo.GetByDisplayID(ctx, displayID)
}

func (s *Service) ListReports(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error) {
	if strings.TrimSpace(patientID) != "" {
		return s.repo.ListByPatient(ctx, strings.TrimSpace(patientID), limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}

// Sections returns the grouped, render-ready view of a stored report.
func (s *Service) Sections(ctx context.Context, displayID string) (*Record, []Section, error) {
	rec, err := s.repo.GetByDisplayID(ctx, displayID)
	if err != nil {
		return nil, nil, err
	}
	return rec, BuildSections(rec.Results), nil
}
