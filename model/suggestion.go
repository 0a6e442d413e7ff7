package model

import "time"

// Status is the lifecycle state of a suggestion.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
)

// Decided reports whether the status is terminal.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusDenied
}

// MessageRef identifies the rendered suggestion post on Discord. It is set
// once when the suggestion is created and either fully populated or absent.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// Suggestion represents a suggestion record from the suggestions table.
type Suggestion struct {
	ID        int64
	AuthorID  string
	AuthorTag string
	Content   string
	Status    Status
	CreatedAt time.Time
	Message   MessageRef
}

// VoteCounts holds the reaction tally fetched from the posted message.
type VoteCounts struct {
	Up   int
	Down int
}

// Stats is the aggregate exposed to the web panel.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}
