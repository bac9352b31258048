package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicContactMessageCreated is the bus topic fired when a visitor submits
// the contact form.
const TopicContactMessageCreated = "contact.message.created"

// ContactMessageCreated is the payload carried on that topic.
type ContactMessageCreated struct {
	MessageId  uuid.UUID `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}
