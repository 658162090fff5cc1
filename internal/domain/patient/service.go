package patient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/labcore/lims/pkg/displayid"
)

// Service implements patient registration and lookup.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the caller-supplied patient fields.
type CreateInput struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *Service) CreatePatient(ctx context.Context, in CreateInput) (*Patient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("patient name is required")
	}

	age := 0
	if raw := strings.TrimSpace(in.Age); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("patient age must be a non-negative whole number")
		}
		age = v
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	p := &Patient{
		ID:        uuid.New(),
		DisplayID: displayid.New("PAT", time.Now(), n),
		Name:      strings.TrimSpace(in.Name),
		Age:       age,
		Gender:    in.Gender,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	log.Info().Str("patient_id", p.DisplayID).Msg("patient registered")
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, displayID string) (*Patient, error) {
	return s.repo.GetByDisplayID(ctx, displayID)
}

// ListPatients returns a page of patients, newest first. When query is
// non-blank it matches against name (case-insensitive substring) and
// phone (prefix).
func (s *Service) ListPatients(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		return s.repo.Search(ctx, query, limit, offset)
	}
	return s.repo.List(ctx, limit, offset)
}
