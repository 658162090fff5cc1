package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const reportCols = `id, display_id, patient_id, patient_name, invoice_id, doctor_remarks, reviewed_by, created_at`

func scanReport(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.DisplayID, &rec.PatientID, &rec.PatientName,
		&rec.InvoiceID, &rec.DoctorRemarks, &rec.ReviewedBy, &rec.CreatedAt)
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
		INSERT INTO report (id, display_id, patient_id, patient_name, invoice_id, doctor_remarks, reviewed_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		rec.ID, rec.DisplayID, rec.PatientID, rec.PatientName,
		rec.InvoiceID, rec.DoctorRemarks, rec.ReviewedBy).
		Scan(&rec.CreatedAt)
	if err != nil {
		return err
	}

	for i, res := range rec.Results {
		_, err = tx.Exec(ctx, `
			INSERT INTO test_result (report_id, position, test_code, test_name, value, unit, reference_range, comments)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			rec.ID, i, res.TestCode, res.TestName, res.Value, res.Unit, res.ReferenceRange, res.Comments)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetByDisplayID(ctx context.Context, displayID string) (*Record, error) {
	rec, err := scanReport(r.pool.QueryRow(ctx,
		`SELECT `+reportCols+` FROM report WHERE display_id = $1`, displayID))
	if err != nil {
		return nil, err
	}
	if err := r.loadResults(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return r.list(ctx, `SELECT COUNT(*) FROM report`, nil,
		`SELECT `+reportCols+` FROM report ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		[]any{limit, offset})
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error) {
	return r.list(ctx, `SELECT COUNT(*) FROM report WHERE patient_id = $1`, []any{patientID},
		`SELECT `+reportCols+` FROM report WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		[]any{patientID, limit, offset})
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM report`).Scan(&n)
	return n, err
}

func (r *repoPG) list(ctx context.Context, countQ string, countArgs []any, q string, args []any) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, rec := range items {
		if err := r.loadResults(ctx, rec); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *repoPG) loadResults(ctx context.Context, rec *Record) error {
	rows, err := r.pool.Query(ctx, `
		SELECT test_code, test_name, value, unit, reference_range, comments
		FROM test_result WHERE report_id = $1 ORDER BY position`, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var res TestResult
		if err := rows.Scan(&res.TestCode, &res.TestName, &res.Value, &res.Unit, &res.ReferenceRange, &res.Comments); err != nil {
			return err
		}
		rec.Results = append(rec.Results, res)
	}
	return rows.Err()
}
