package report

import "context"

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByDisplayID(ctx context.Context, displayID string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error)
	Count(ctx context.Context) (int, error)
}
