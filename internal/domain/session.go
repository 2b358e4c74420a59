package domain

import (
	"context"
	"time"
)

// Session represents a conversation thread owned by a single user.
// Messages are plain strings in insertion order; entries are never edited or
// removed individually, only appended or dropped with the whole session.
type Session struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	User      string    `json:"user" bson:"user"`
	Title     string    `json:"title" bson:"title"`
	Messages  []string  `json:"messages,omitempty" bson:"messages"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// Projection names the fields a list query should return. An empty projection
// returns full documents.
type Projection []string

// SummaryProjection is what listing views request so message histories stay
// out of the payload.
var SummaryProjection = Projection{"user", "title", "createdAt"}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	// List returns every session restricted to the projected fields, in
	// store-native order.
	List(ctx context.Context, projection Projection) ([]Session, error)

	// ListByUser filters List to one owner. An unknown user yields an empty
	// slice, never an error.
	ListByUser(ctx context.Context, userID string, projection Projection) ([]Session, error)

	// Get returns the session for id. ErrNotFound when id is well formed but
	// unmatched, ErrInvalidID when it is not a valid identifier.
	Get(ctx context.Context, id string) (*Session, error)

	// Create persists a new session and assigns its ID.
	Create(ctx context.Context, session *Session) error

	// UpdateTitle replaces the title, leaving every other field untouched,
	// and returns the updated session.
	UpdateTitle(ctx context.Context, id, title string) (*Session, error)

	// AppendMessages appends texts in argument order as a single durable
	// update and returns the updated session.
	AppendMessages(ctx context.Context, id string, texts ...string) (*Session, error)

	// Delete removes the session. ErrNotFound when id does not resolve.
	Delete(ctx context.Context, id string) error
}
