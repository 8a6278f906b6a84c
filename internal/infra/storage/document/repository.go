package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sparkleclean/booking-service/pkg/dbmetrics"
	"github.com/sparkleclean/booking-service/pkg/psqlbuilder"
)

// Repository stores the free-form singleton collections (settings,
// timeslots, content, design) as whole JSONB documents keyed by name.
// Each document is read and written as a unit.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get fetches a document body by name.
func (r *Repository) Get(ctx context.Context, name string) (json.RawMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("body").
		From("documents").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var body []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %w", ErrScanRow, err)
	}

	return json.RawMessage(body), nil
}

// Save upserts a document body.
func (r *Repository) Save(ctx context.Context, name string, body json.RawMessage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("documents").
		Columns("name", "body").
		Values(name, []byte(body)).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}
