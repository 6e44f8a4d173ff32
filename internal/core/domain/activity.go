package domain

import "time"

// ActivityLogEntry is an immutable audit record describing the outcome of a
// ledger-affecting operation. Entries are created once and never mutated.
type ActivityLogEntry struct {
	EntryID     string    `json:"entryID"` // Primary Key (UUID)
	ActorID     string    `json:"actorID"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Details     *string   `json:"details,omitempty"` // JSON blob
	CreatedAt   time.Time `json:"createdAt"`
}
