package siteql

import (
	"time"

	"github.com/google/uuid"
)

// Exchange is one question/answer pair in a chat session.
type Exchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"askedAt"`
}

// ChatSession holds the transcript of an interactive question session.
// The transcript is append-only and transient; it lives only as long as the
// session and is discarded on Clear.
type ChatSession struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Exchanges []Exchange `json:"exchanges"`
}

// NewChatSession creates an empty session with a generated ID.
func NewChatSession() *ChatSession {
	return &ChatSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}

// Append records a completed exchange in the transcript.
func (s *ChatSession) Append(question, answer string) {
	s.Exchanges = append(s.Exchanges, Exchange{
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	})
}

// Clear discards the transcript while keeping the session identity.
func (s *ChatSession) Clear() {
	s.Exchanges = nil
}

// Len returns the number of exchanges in the transcript.
func (s *ChatSession) Len() int {
	return len(s.Exchanges)
}
