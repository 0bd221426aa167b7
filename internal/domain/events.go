package domain

import (
	"context"
	"time"
)

// Event types published after successful writes
const (
	EventQuestionCreated = "trivia.question.created"
	EventQuestionUpdated = "trivia.question.updated"
	EventQuestionDeleted = "trivia.question.deleted"
	EventVenueDeleted    = "booking.venue.deleted"
	EventArtistDeleted   = "booking.artist.deleted"
	EventShowCreated     = "booking.show.created"
	EventDrinkCreated    = "coffee.drink.created"
	EventDrinkUpdated    = "coffee.drink.updated"
	EventDrinkDeleted    = "coffee.drink.deleted"
)

// Event is a notification about a completed write
type Event struct {
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewEvent stamps an event with the current time
func NewEvent(eventType string, payload interface{}) Event {
	return Event{Type: eventType, Payload: payload, OccurredAt: time.Now().UTC()}
}

// EventPublisher delivers events to interested consumers. Publishing is best effort:
// callers log failures and never roll back the write that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
