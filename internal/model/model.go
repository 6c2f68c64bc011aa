package model

import "time"

// Environment names used by server setup.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies who a unit of work runs on behalf of.
type Scope struct {
	ConversationID string // WhatsApp chat JID, e.g. "1234567890@c.us"
	SenderID       string
}

// Group is a conversation known to the vault. Created lazily on the
// first message from a previously unseen conversation; never deleted
// by the assistant.
type Group struct {
	ID       string // conversation JID
	Platform string
	AdminID  string
	IsActive bool
}

// Item is one unit of a vault entry. Quantity is represented as one row
// per unit: three apples are three rows, not a count column.
type Item struct {
	ID             int64
	Name           string // always lower-case singular
	Store          string // always capitalized
	ConversationID string
	CreatedAt      time.Time
}
