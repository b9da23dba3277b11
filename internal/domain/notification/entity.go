package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCandidacyReceived      Type = "candidacy_received"
	TypeCandidacyStatusChanged Type = "candidacy_status_changed"
	TypeQuizSubmitted          Type = "quiz_submitted"
)

type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Message     string
	Link        string
	Type        Type
	Read        bool
	CreatedAt   time.Time
}

// Event is the payload pushed to a live connection.
type Event struct {
	Message string    `json:"message"`
	Link    string    `json:"link"`
	Type    Type      `json:"type"`
	Date    time.Time `json:"date"`
}

// Connection is a live realtime session that can take an event.
// Push must not block the caller.
type Connection interface {
	Push(evt Event) error
}

// Presence resolves a user to the connection they are currently reachable on.
type Presence interface {
	Lookup(userID uuid.UUID) (Connection, bool)
}
