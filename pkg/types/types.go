package types

import (
	"time"
)

// Decision is the outcome of a moderation check for a single message.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionBlock Decision = "block"
	DecisionFlag  Decision = "flag"
)

// ModerationStatus tracks the lifecycle of a message through the pipeline.
type ModerationStatus string

const (
	StatusPending ModerationStatus = "pending"
	StatusAllowed ModerationStatus = "allowed"
	StatusBlocked ModerationStatus = "blocked"
	StatusFlagged ModerationStatus = "flagged"
)

// AuthorType identifies who produced a message.
type AuthorType string

const (
	AuthorUser      AuthorType = "user"
	AuthorAgent     AuthorType = "agent"
	AuthorSystem    AuthorType = "system"
	AuthorCompanion AuthorType = "companion"
)

// Moderation is stamped onto a message exactly once by the orchestrator
// before the message is considered visible.
type Moderation struct {
	Status ModerationStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

type Message struct {
	ID                string         `json:"id"`
	ClinicID          string         `json:"clinic_id"`
	SessionID         string         `json:"session_id"`
	AuthorType        AuthorType     `json:"author_type"`
	Text              string         `json:"text"`
	CreatedAt         time.Time      `json:"created_at"`
	Moderation        Moderation     `json:"moderation"`
	CompanionIdentity string         `json:"companion_identity,omitempty"`
	ReplyTo           string         `json:"reply_to,omitempty"`
	Reactions         map[string]int `json:"reactions,omitempty"`
}

// ModerationContext carries the per-call snapshot handed to every stage.
// It is constructed fresh for each check and never persisted.
type ModerationContext struct {
	SessionID            string
	ClinicID             string
	MessageHistory       []string // most-recent-last, bounded window
	LastMessageTimestamp time.Time
}

// ModerationVerdict is the aggregate result of the pipeline for one message.
type ModerationVerdict struct {
	Decision    Decision `json:"decision"`
	Reason      string   `json:"reason,omitempty"`
	Category    string   `json:"category,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Status maps a verdict decision to the message moderation status.
func (v ModerationVerdict) Status() ModerationStatus {
	switch v.Decision {
	case DecisionBlock:
		return StatusBlocked
	case DecisionFlag:
		return StatusFlagged
	default:
		return StatusAllowed
	}
}
