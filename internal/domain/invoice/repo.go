package invoice

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByDisplayID(ctx context.Context, displayID string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
	// ListBetween returns every invoice with createdAt in [from, to),
	// line items included, without pagination. A zero "to" means no
	// upper bound.
	ListBetween(ctx context.Context, from, to time.Time) ([]*Record, error)
	Count(ctx context.Context) (int, error)
}
