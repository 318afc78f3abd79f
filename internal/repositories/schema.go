package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/asm2526/schedule-manager-app/internal/logger"
)

// InitSchema creates the users and events tables if they do not exist.
// Statements are idempotent so the service can run it on every start.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(50) PRIMARY KEY,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL REFERENCES users(username),
			title TEXT NOT NULL,
			event_date CHAR(10) NOT NULL,
			start_minute INT NOT NULL,
			end_minute INT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			CHECK (start_minute >= 0 AND start_minute < 1440),
			CHECK (end_minute > start_minute AND end_minute <= 1440)
		);

		CREATE INDEX IF NOT EXISTS events_owner_day_idx
			ON events (username, event_date, start_minute, id);
	`

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to initialize schema", "error", err)
		return err
	}
	logger.Log.Info("database schema initialized")
	return nil
}
