package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const invoiceCols = `id, display_id, patient_id, patient_name, subtotal, discount_percent, discount_amount, grand_total, status, created_at`

func scanInvoice(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.DisplayID, &rec.PatientID, &rec.PatientName,
		&rec.Subtotal, &rec.DiscountPercent, &rec.DiscountAmount, &rec.GrandTotal,
		&rec.Status, &rec.CreatedAt)
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rec.ID = uuid.New()
	err = tx.QueryRow(ctx, `
		INSERT INTO invoice (id, display_id, patient_id, patient_name, subtotal, discount_percent, discount_amount, grand_total, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		rec.ID, rec.DisplayID, rec.PatientID, rec.PatientName,
		rec.Subtotal, rec.DiscountPercent, rec.DiscountAmount, rec.GrandTotal, rec.Status).
		Scan(&rec.CreatedAt)
	if err != nil {
		return err
	}

	for i, li := range rec.LineItems {
		_, err = tx.Exec(ctx, `
			INSERT INTO invoice_line_item (invoice_id, position, test_code, test_name, quantity, unit_price, total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			rec.ID, i, li.TestCode, li.TestName, li.Quantity, li.UnitPrice, li.Total)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetByDisplayID(ctx context.Context, displayID string) (*Record, error) {
	rec, err := scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoice WHERE display_id = $1`, displayID))
	if err != nil {
		return nil, err
	}
	if err := r.loadLineItems(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoice`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceCols+` FROM invoice ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := r.collect(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) ListBetween(ctx context.Context, from, to time.Time) ([]*Record, error) {
	q := `SELECT ` + invoiceCols + ` FROM invoice WHERE created_at >= $1`
	args := []any{from}
	if !to.IsZero() {
		q += ` AND created_at < $2`
		args = append(args, to)
	}
	q += ` ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoice`).Scan(&n)
	return n, err
}

func (r *repoPG) collect(ctx context.Context, rows pgx.Rows) ([]*Record, error) {
	var items []*Record
	for rows.Next() {
		rec, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range items {
		if err := r.loadLineItems(ctx, rec); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *repoPG) loadLineItems(ctx context.Context, rec *Record) error {
	rows, err := r.pool.Query(ctx, `
		SELECT test_code, test_name, quantity, unit_price, total
		FROM invoice_line_item WHERE invoice_id = $1 ORDER BY position`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.TestCode, &li.TestName, &li.Quantity, &li.UnitPrice, &li.Total); err != nil {
			return err
		}
		rec.LineItems = append(rec.LineItems, li)
	}
	return rows.Err()
}
