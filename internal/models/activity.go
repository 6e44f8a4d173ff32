package models

import "time"

// ActivityLogEntry represents a row in the activity_log table.
// The table is append-only; there is no update path for it anywhere.
type ActivityLogEntry struct {
	EntryID     string    `db:"entry_id"`
	ActorID     string    `db:"actor_id"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	Details     *string   `db:"details"`
	CreatedAt   time.Time `db:"created_at"`
}
