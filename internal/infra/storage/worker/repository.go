package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/dbmetrics"
	"github.com/sparkleclean/booking-service/pkg/psqlbuilder"
)

// unique_violation
const pqUniqueViolation = "23505"

var workerColumns = []string{
	"id",
	"staff_id",
	"username",
	"password_hash",
	"name",
	"created_at",
	"updated_at",
}

// Repository is the worker credential storage.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a worker credential.
func (r *Repository) Create(ctx context.Context, w *domain.Worker) (*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("workers").
		Columns("staff_id", "username", "password_hash", "name").
		Values(w.StaffID, w.Username, w.PasswordHash, w.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return w, nil
}

// GetByUsername fetches a worker credential by login name.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Worker, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, "GetByUsername")
}

// GetByStaffID fetches the credential linked to a staff member.
func (r *Repository) GetByStaffID(ctx context.Context, staffID int64) (*domain.Worker, error) {
	return r.getOne(ctx, squirrel.Eq{"staff_id": staffID}, "GetByStaffID")
}

// GetByID fetches one worker credential.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// List fetches all worker credentials.
func (r *Repository) List(ctx context.Context) ([]*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workerColumns...).
		From("workers").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	workers := make([]*domain.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return workers, nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *Repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("workers").
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePassword - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWorkerNotFound
	}

	return nil
}

// DeleteByStaffID removes the credential linked to a staff member.
// Deleting a credential that does not exist is not an error: staff
// members without a login are common.
func (r *Repository) DeleteByStaffID(ctx context.Context, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("workers").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByStaffID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByStaffID - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workerColumns...).
		From("workers").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	w, err := scanWorker(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan worker: %w", ErrScanRow, method, err)
	}

	return w, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorker(row rowScanner) (*domain.Worker, error) {
	var w domain.Worker
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&w.ID,
		&w.StaffID,
		&w.Username,
		&w.PasswordHash,
		&w.Name,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
