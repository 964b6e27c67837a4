package lifecycle

import (
	"sort"

	"gestion_tramites/internal/domain/entities"
)

// Edge is one ownership relation: rows of Child whose ForeignKey equals the
// parent id are owned by the parent.
type Edge struct {
	Child      entities.EntityKind
	ForeignKey string
}

const (
	ForeignKeyClientID = "client_id"
	ForeignKeyCaseID   = "case_id"
)

// Ownership is the static graph walked by cascading soft-delete and restore.
// A client reaches its procedures both directly and through its cases; the
// cascade visits each row once.
var Ownership = map[entities.EntityKind][]Edge{
	entities.EntityKindClient: {
		{Child: entities.EntityKindCase, ForeignKey: ForeignKeyClientID},
		{Child: entities.EntityKindProcedure, ForeignKey: ForeignKeyClientID},
	},
	entities.EntityKindCase: {
		{Child: entities.EntityKindProcedure, ForeignKey: ForeignKeyCaseID},
	},
}

// Children returns the ownership edges leaving kind.
func Children(kind entities.EntityKind) []Edge {
	return Ownership[kind]
}

// OwnerEdge points from a row's foreign key to the kind it references.
type OwnerEdge struct {
	Owner      entities.EntityKind
	ForeignKey string
}

// OwnersOf returns the ownership edges entering kind, ordered by foreign key.
func OwnersOf(kind entities.EntityKind) []OwnerEdge {
	var out []OwnerEdge
	for owner, edges := range Ownership {
		for _, e := range edges {
			if e.Child == kind {
				out = append(out, OwnerEdge{Owner: owner, ForeignKey: e.ForeignKey})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ForeignKey < out[j].ForeignKey })
	return out
}

// IsLocalKind reports whether the soft-delete lifecycle of kind is handled by
// this engine. Quotes are managed by their own subsystem.
func IsLocalKind(kind entities.EntityKind) bool {
	switch kind {
	case entities.EntityKindClient, entities.EntityKindCase, entities.EntityKindProcedure:
		return true
	}
	return false
}
