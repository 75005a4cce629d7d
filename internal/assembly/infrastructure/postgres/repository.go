package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	assembly "arx-bim/internal/assembly/domain"
)

const defaultResultsTable = "assembly_results"

// ResultRepository persists assembly results. The full result document is
// stored as jsonb next to the columns queries filter on.
type ResultRepository struct {
	db    *sql.DB
	table string
}

// Option customizes the repository.
type Option func(*ResultRepository)

// WithTable overrides the results table name.
func WithTable(table string) Option {
	return func(r *ResultRepository) {
		if table != "" {
			r.table = table
		}
	}
}

// NewResultRepository constructs a repository.
func NewResultRepository(db *sql.DB, opts ...Option) *ResultRepository {
	r := &ResultRepository{db: db, table: defaultResultsTable}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save upserts a result.
func (r *ResultRepository) Save(ctx context.Context, result *assembly.Result) error {
	if r == nil || r.db == nil {
		return errors.New("result repo: nil db")
	}
	if result == nil {
		return assembly.ErrNilResult
	}
	if result.AssemblyID == "" {
		return assembly.ErrEmptyAssemblyID
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO `+r.table+` (assembly_id, success, assembly_time, element_count, conflict_count, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (assembly_id) DO UPDATE SET
	success = EXCLUDED.success,
	assembly_time = EXCLUDED.assembly_time,
	element_count = EXCLUDED.element_count,
	conflict_count = EXCLUDED.conflict_count,
	payload = EXCLUDED.payload`,
		result.AssemblyID, result.Success, result.AssemblyTime,
		len(result.Elements), len(result.Conflicts), payload, time.Now().UTC())
	return err
}

// FindByID loads one result.
func (r *ResultRepository) FindByID(ctx context.Context, assemblyID string) (*assembly.Result, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("result repo: nil db")
	}
	if assemblyID == "" {
		return nil, assembly.ErrEmptyAssemblyID
	}
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
SELECT payload FROM `+r.table+` WHERE assembly_id = $1 LIMIT 1`, assemblyID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, assembly.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var result assembly.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns up to limit results, newest first.
func (r *ResultRepository) List(ctx context.Context, limit int) ([]*assembly.Result, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("result repo: nil db")
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT payload FROM `+r.table+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*assembly.Result
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var result assembly.Result
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

// EnsureSchema creates the results table when it does not exist.
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	if r == nil || r.db == nil {
		return errors.New("result repo: nil db")
	}
	_, err := r.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS `+r.table+` (
	assembly_id    TEXT PRIMARY KEY,
	success        BOOLEAN NOT NULL,
	assembly_time  DOUBLE PRECISION NOT NULL,
	element_count  INTEGER NOT NULL,
	conflict_count INTEGER NOT NULL,
	payload        JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
)`)
	return err
}
