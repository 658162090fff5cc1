package catalog

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const entryCols = `id, code, name, default_price, estimated_cost, unit,
	reference_range, category, unit_per_test, is_qualitative, created_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var rangeJSON, unitJSON []byte
	err := row.Scan(&e.ID, &e.Code, &e.Name, &e.DefaultPrice, &e.EstimatedCost, &e.Unit,
		&rangeJSON, &e.Category, &unitJSON, &e.IsQualitative, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(rangeJSON) > 0 {
		if err := json.Unmarshal(rangeJSON, &e.ReferenceRange); err != nil {
			return nil, err
		}
	}
	if len(unitJSON) > 0 {
		if err := json.Unmarshal(unitJSON, &e.UnitPerTest); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	e.ID = uuid.New()
	rangeJSON, err := json.Marshal(e.ReferenceRange)
	if err != nil {
		return err
	}
	unitJSON, err := json.Marshal(e.UnitPerTest)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO test_catalog (id, code, name, default_price, estimated_cost, unit,
			reference_range, category, unit_per_test, is_qualitative)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		e.ID, e.Code, e.Name, e.DefaultPrice, e.EstimatedCost, e.Unit,
		rangeJSON, e.Category, unitJSON, e.IsQualitative)
	return err
}

func (r *repoPG) GetByCode(ctx context.Context, code string) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx, `SELECT `+entryCols+` FROM test_catalog WHERE code = $1`, code))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM test_catalog`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+entryCols+` FROM test_catalog ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+entryCols+` FROM test_catalog ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}
