package models

import "time"

// EventDB represents an event record in the database.
//
// Times of day are stored as minutes since midnight. This is the single
// canonical representation: callers that supply a duration instead of an
// end time have it normalized to end = start + duration before the record
// reaches the store.
type EventDB struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Title     string    `json:"title" db:"title"`
	Date      string    `json:"date" db:"event_date"`
	StartMin  int       `json:"start_minute" db:"start_minute"`
	EndMin    int       `json:"end_minute" db:"end_minute"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EventChange is the message published to the change feed after a
// successful mutation of the events table.
type EventChange struct {
	ChangeID  string `json:"change_id"`
	Timestamp int64  `json:"timestamp"`
	Operation string `json:"operation"`
	EventID   int64  `json:"event_id"`
	Username  string `json:"username"`
	Date      string `json:"date"`
}
