package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/asm2526/schedule-manager-app/internal/logger"
	"github.com/asm2526/schedule-manager-app/internal/models"
)

// EventReadRepository reads event records.
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetByID returns the event with the given id, or (nil, nil) when it does
// not exist.
func (r *EventReadRepository) GetByID(ctx context.Context, id int64) (*models.EventDB, error) {
	const query = `
		SELECT id, username, title, event_date, start_minute, end_minute, created_at
		FROM events
		WHERE id = $1
	`

	var ev models.EventDB
	err := r.db.GetContext(ctx, &ev, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListForDay returns all events owned by username on the given day,
// ascending by start time with id as the stable tie-break.
func (r *EventReadRepository) ListForDay(ctx context.Context, username, date string) ([]models.EventDB, error) {
	const query = `
		SELECT id, username, title, event_date, start_minute, end_minute, created_at
		FROM events
		WHERE username = $1 AND event_date = $2
		ORDER BY start_minute ASC, id ASC
	`

	events := []models.EventDB{}
	err := r.db.SelectContext(ctx, &events, query, username, date)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, date},
		"result", len(events),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return events, nil
}

// EventWriteRepository writes event records. Each method is a single
// committed statement; when TxMiddleware put a transaction in the
// context, the statement runs on that transaction instead.
type EventWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEventWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EventWriteRepository {
	return &EventWriteRepository{db: db, txGetter: txGetter}
}

func (r *EventWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts an event and returns the assigned id.
func (r *EventWriteRepository) Save(ctx context.Context, username, title, date string, startMin, endMin int) (int64, error) {
	const query = `
		INSERT INTO events (username, title, event_date, start_minute, end_minute, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	args := []any{username, title, date, startMin, endMin}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the mutable fields of an event and returns the number
// of rows touched, so the caller can tell a missing id apart from
// success.
func (r *EventWriteRepository) Update(ctx context.Context, id int64, title, date string, startMin, endMin int) (int64, error) {
	const query = `
		UPDATE events
		SET title = $2, event_date = $3, start_minute = $4, end_minute = $5
		WHERE id = $1
	`
	args := []any{id, title, date, startMin, endMin}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an event and returns the number of rows removed.
func (r *EventWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM events WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
