package entities

import "time"

// ActivityNote is a free-text trace appended after a committed change.
// It is not an audit log: no before/after snapshot is kept.
type ActivityNote struct {
	ID         string     `json:"id"`
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	Note       string     `json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
}
