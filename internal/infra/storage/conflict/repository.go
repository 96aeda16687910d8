package conflict

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/dbmetrics"
	"github.com/m04kA/arena-booking/pkg/psqlbuilder"
)

// StaleResolutionNote пометка для конфликтов, которые при повторном сканировании не нашлись
const StaleResolutionNote = "no longer detected"

var conflictColumns = []string{
	"id",
	"type",
	"booking_a_id",
	"booking_a_customer",
	"booking_a_time",
	"booking_a_venue",
	"booking_b_id",
	"booking_b_customer",
	"booking_b_time",
	"booking_b_venue",
	"conflict_date",
	"severity",
	"suggested_resolution",
	"status",
	"detected_at",
	"resolved_at",
	"resolution_note",
}

// Repository репозиторий найденных конфликтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфликтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// saveBatchSize строк в одном INSERT: 17 параметров на строку, лимит Postgres 65535
const saveBatchSize = 500

// SaveDetected сохраняет найденные конфликты. Уже известные (по детерминированному id)
// не перезаписываются, поэтому решённые и проигнорированные не возвращаются в pending.
// Исключение: конфликт, закрытый автоматически как устаревший, снова открывается.
// Возвращает количество новых и переоткрытых конфликтов
func (r *Repository) SaveDetected(ctx context.Context, conflicts []domain.Conflict) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	saved := 0
	for start := 0; start < len(conflicts); start += saveBatchSize {
		end := min(start+saveBatchSize, len(conflicts))

		query, args, err := buildSaveQuery(conflicts[start:end])
		if err != nil {
			return saved, fmt.Errorf("%w: SaveDetected - build insert query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return saved, fmt.Errorf("%w: SaveDetected - execute insert: %w", ErrExecQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return saved, fmt.Errorf("%w: SaveDetected - get rows affected: %w", ErrExecQuery, err)
		}
		saved += int(affected)
	}

	return saved, nil
}

func buildSaveQuery(batch []domain.Conflict) (string, []interface{}, error) {
	insert := psqlbuilder.Insert("conflicts").Columns(conflictColumns...)
	for _, c := range batch {
		insert = insert.Values(
			c.ID,
			c.Type,
			c.BookingA.ID,
			c.BookingA.CustomerName,
			c.BookingA.Time,
			c.BookingA.Venue,
			c.BookingB.ID,
			c.BookingB.CustomerName,
			c.BookingB.Time,
			c.BookingB.Venue,
			c.Date,
			c.Severity,
			c.SuggestedResolution,
			c.Status,
			c.DetectedAt,
			c.ResolvedAt,
			c.ResolutionNote,
		)
	}

	return insert.Suffix(`ON CONFLICT (id) DO UPDATE SET
		booking_a_customer = EXCLUDED.booking_a_customer,
		booking_a_time = EXCLUDED.booking_a_time,
		booking_a_venue = EXCLUDED.booking_a_venue,
		booking_b_customer = EXCLUDED.booking_b_customer,
		booking_b_time = EXCLUDED.booking_b_time,
		booking_b_venue = EXCLUDED.booking_b_venue,
		conflict_date = EXCLUDED.conflict_date,
		severity = EXCLUDED.severity,
		suggested_resolution = EXCLUDED.suggested_resolution,
		status = EXCLUDED.status,
		detected_at = EXCLUDED.detected_at,
		resolved_at = EXCLUDED.resolved_at,
		resolution_note = EXCLUDED.resolution_note
		WHERE conflicts.status = ? AND conflicts.resolution_note = ?`,
		domain.ConflictResolved, StaleResolutionNote,
	).ToSql()
}

// ResolveStale закрывает pending конфликты, которых нет среди detectedIDs
func (r *Repository) ResolveStale(ctx context.Context, detectedIDs []string, at time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	update := psqlbuilder.Update("conflicts").
		Set("status", domain.ConflictResolved).
		Set("resolved_at", at).
		Set("resolution_note", StaleResolutionNote).
		Where(squirrel.Eq{"status": domain.ConflictPending})

	if len(detectedIDs) > 0 {
		update = update.Where("NOT (id::text = ANY(?))", pq.Array(detectedIDs))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveStale - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveStale - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveStale - get rows affected: %w", ErrExecQuery, err)
	}

	return int(affected), nil
}

// GetByID получает конфликт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Conflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(conflictColumns...).
		From("conflicts").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanConflict(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConflictNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan conflict: %w", ErrScanRow, err)
	}

	return c, nil
}

// List получает конфликты, опционально по статусу, по дате и парам броней
func (r *Repository) List(ctx context.Context, status *domain.ConflictStatus) ([]*domain.Conflict, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(conflictColumns...).
		From("conflicts").
		OrderBy("conflict_date ASC", "booking_a_id ASC", "booking_b_id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	conflicts := make([]*domain.Conflict, 0)
	for rows.Next() {
		c, err := scanConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return conflicts, nil
}

// MarkResolved закрывает конфликт с указанным статусом и пометкой
func (r *Repository) MarkResolved(ctx context.Context, id string, status domain.ConflictStatus, note string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("conflicts").
		Set("status", status).
		Set("resolved_at", at).
		Set("resolution_note", note).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkResolved - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - get rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConflictNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConflict(row rowScanner) (*domain.Conflict, error) {
	var c domain.Conflict
	var resolvedAt sql.NullTime
	var note sql.NullString

	err := row.Scan(
		&c.ID,
		&c.Type,
		&c.BookingA.ID,
		&c.BookingA.CustomerName,
		&c.BookingA.Time,
		&c.BookingA.Venue,
		&c.BookingB.ID,
		&c.BookingB.CustomerName,
		&c.BookingB.Time,
		&c.BookingB.Venue,
		&c.Date,
		&c.Severity,
		&c.SuggestedResolution,
		&c.Status,
		&c.DetectedAt,
		&resolvedAt,
		&note,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		t := resolvedAt.Time
		c.ResolvedAt = &t
	}
	if note.Valid {
		n := note.String
		c.ResolutionNote = &n
	}

	return &c, nil
}
