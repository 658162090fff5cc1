package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByDisplayID(ctx context.Context, displayID string) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error)
	Count(ctx context.Context) (int, error)
}
