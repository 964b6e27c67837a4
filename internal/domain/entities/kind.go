package entities

import "time"

// EntityKind names an entity kind touched by the lifecycle engine.
type EntityKind string

const (
	EntityKindClient    EntityKind = "client"
	EntityKindCase      EntityKind = "case"
	EntityKindProcedure EntityKind = "procedure"
	EntityKindQuote     EntityKind = "quote"

	EntityKindProcedureDocument EntityKind = "procedure_document"
	EntityKindClientDocument    EntityKind = "client_document"
)

// EntityKinds lists every soft-deletable kind shown in the recycle bin.
var EntityKinds = []EntityKind{EntityKindClient, EntityKindCase, EntityKindProcedure, EntityKindQuote}

// Recyclable reports whether k is one of EntityKinds.
func (k EntityKind) Recyclable() bool {
	for _, v := range EntityKinds {
		if v == k {
			return true
		}
	}
	return false
}

// DeletedRecord is the kind-agnostic shape of a soft-deleted row.
//
// Quotes arrive in this shape from the quote subsystem; the other kinds are
// projected into it by the store.
type DeletedRecord struct {
	Kind      EntityKind `json:"kind"`
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Detail    string     `json:"detail"`
	DeletedAt time.Time  `json:"deleted_at"`
}
