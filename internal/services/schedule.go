package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/asm2526/schedule-manager-app/internal/logger"
	"github.com/asm2526/schedule-manager-app/internal/models"
	"github.com/asm2526/schedule-manager-app/internal/timeline"
)

// Error variables
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEmptyTitle       = errors.New("event title must not be empty")
	ErrInvalidDate      = errors.New("event date must be YYYY-MM-DD")
	ErrInvalidTime      = errors.New("event time must be HH:MM")
	ErrInvalidTimeRange = errors.New("event end must be after its start")
)

// EventReader defines read-only operations for events.
type EventReader interface {
	GetByID(ctx context.Context, id int64) (*models.EventDB, error)
	ListForDay(ctx context.Context, username, date string) ([]models.EventDB, error)
}

// EventWriter defines write operations for events. Update and Delete
// report the number of rows touched so a missing id is detectable.
type EventWriter interface {
	Save(ctx context.Context, username, title, date string, startMin, endMin int) (int64, error)
	Update(ctx context.Context, id int64, title, date string, startMin, endMin int) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// EventCache caches per-day event lists.
type EventCache interface {
	GetDay(ctx context.Context, username, date string) ([]models.EventDB, error)
	SetDay(ctx context.Context, username, date string, events []models.EventDB) error
	InvalidateDay(ctx context.Context, username, date string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ScheduleService validates and persists events and keeps the day cache
// and change feed consistent with the store.
type ScheduleService struct {
	readRepo    EventReader
	writeRepo   EventWriter
	cacheRepo   EventCache
	kafkaWriter KafkaWriter
}

// NewScheduleService creates a new ScheduleService. cacheRepo and
// kafkaWriter may be nil; both are optional layers.
func NewScheduleService(
	readRepo EventReader,
	writeRepo EventWriter,
	cacheRepo EventCache,
	kafkaWriter KafkaWriter,
) *ScheduleService {
	return &ScheduleService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// validateEvent normalizes an incoming event to the canonical (title,
// date, start minute, end minute) form. The end time may be given either
// as an "HH:MM" string or as a positive duration in minutes; an end past
// midnight is clamped to day end.
func validateEvent(title, date, start, end string, durationMinutes int) (string, int, int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", 0, 0, ErrEmptyTitle
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", 0, 0, ErrInvalidDate
	}

	startMin, err := timeline.ParseClock(start)
	if err != nil {
		return "", 0, 0, ErrInvalidTime
	}

	var endMin int
	switch {
	case end != "":
		endMin, err = timeline.ParseClock(end)
		if err != nil {
			return "", 0, 0, ErrInvalidTime
		}
	case durationMinutes > 0:
		endMin = startMin + durationMinutes
		if endMin > 24*60 {
			endMin = 24 * 60
		}
	default:
		return "", 0, 0, ErrInvalidTimeRange
	}

	if endMin <= startMin {
		return "", 0, 0, ErrInvalidTimeRange
	}
	return title, startMin, endMin, nil
}

// publishChange publishes a mutation to the change feed. Publishing is
// best effort and never fails the operation that triggered it.
func (svc *ScheduleService) publishChange(ctx context.Context, change models.EventChange) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(change)
	if err != nil {
		logger.Log.Errorw("failed to marshal event change", "change_id", change.ChangeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(change.ChangeID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event change", "change_id", change.ChangeID, "error", err)
	} else {
		logger.Log.Infow("event change published", "change_id", change.ChangeID, "operation", change.Operation)
	}
}

func (svc *ScheduleService) invalidate(ctx context.Context, username, date string) {
	if svc.cacheRepo == nil {
		return
	}
	if err := svc.cacheRepo.InvalidateDay(ctx, username, date); err != nil {
		logger.Log.Errorw("failed to invalidate day cache", "username", username, "date", date, "error", err)
	}
}

// AddEvent validates and inserts a new event, returning its id.
func (svc *ScheduleService) AddEvent(ctx context.Context, username, title, date, start, end string, durationMinutes int) (int64, error) {
	title, startMin, endMin, err := validateEvent(title, date, start, end, durationMinutes)
	if err != nil {
		return 0, err
	}

	id, err := svc.writeRepo.Save(ctx, username, title, date, startMin, endMin)
	if err != nil {
		logger.Log.Errorw("failed to save event", "username", username, "error", err)
		return 0, err
	}

	svc.invalidate(ctx, username, date)
	svc.publishChange(ctx, models.EventChange{
		ChangeID:  uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "created",
		EventID:   id,
		Username:  username,
		Date:      date,
	})
	return id, nil
}

// GetEvent returns one event owned by username. A missing id and an event
// owned by someone else both report ErrEventNotFound.
func (svc *ScheduleService) GetEvent(ctx context.Context, username string, id int64) (*models.EventDB, error) {
	ev, err := svc.readRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get event", "id", id, "error", err)
		return nil, err
	}
	if ev == nil || ev.Username != username {
		return nil, ErrEventNotFound
	}
	return ev, nil
}

// EventsForDay returns the ordered events for one day, serving from the
// day cache when possible and falling back to the store on a miss.
func (svc *ScheduleService) EventsForDay(ctx context.Context, username, date string) ([]models.EventDB, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	if svc.cacheRepo != nil {
		if events, err := svc.cacheRepo.GetDay(ctx, username, date); err == nil && events != nil {
			return events, nil
		}
	}

	events, err := svc.readRepo.ListForDay(ctx, username, date)
	if err != nil {
		logger.Log.Errorw("failed to list events", "username", username, "date", date, "error", err)
		return nil, err
	}

	if svc.cacheRepo != nil {
		if err := svc.cacheRepo.SetDay(ctx, username, date, events); err != nil {
			logger.Log.Errorw("failed to cache day", "username", username, "date", date, "error", err)
		}
	}
	return events, nil
}

// UpdateEvent replaces the mutable fields of an event owned by username.
// A missing id reports ErrEventNotFound rather than silently succeeding.
func (svc *ScheduleService) UpdateEvent(ctx context.Context, username string, id int64, title, date, start, end string, durationMinutes int) error {
	title, startMin, endMin, err := validateEvent(title, date, start, end, durationMinutes)
	if err != nil {
		return err
	}

	existing, err := svc.readRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get event before update", "id", id, "error", err)
		return err
	}
	if existing == nil || existing.Username != username {
		return ErrEventNotFound
	}

	rows, err := svc.writeRepo.Update(ctx, id, title, date, startMin, endMin)
	if err != nil {
		logger.Log.Errorw("failed to update event", "id", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}

	// The event may have moved to a different day.
	svc.invalidate(ctx, username, existing.Date)
	if date != existing.Date {
		svc.invalidate(ctx, username, date)
	}
	svc.publishChange(ctx, models.EventChange{
		ChangeID:  uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "updated",
		EventID:   id,
		Username:  username,
		Date:      date,
	})
	return nil
}

// DeleteEvent removes an event owned by username. A missing id reports
// ErrEventNotFound.
func (svc *ScheduleService) DeleteEvent(ctx context.Context, username string, id int64) error {
	existing, err := svc.readRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get event before delete", "id", id, "error", err)
		return err
	}
	if existing == nil || existing.Username != username {
		return ErrEventNotFound
	}

	rows, err := svc.writeRepo.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete event", "id", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}

	svc.invalidate(ctx, username, existing.Date)
	svc.publishChange(ctx, models.EventChange{
		ChangeID:  uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: "deleted",
		EventID:   id,
		Username:  username,
		Date:      existing.Date,
	})
	return nil
}

// ParseEventID parses an event id from its route parameter form.
func ParseEventID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrEventNotFound
	}
	return id, nil
}
