// Package lifecycle holds the pure rules of the case/procedure lifecycle:
// transition tables, document micro-states, derived attention signals,
// the ownership graph used by cascading soft-deletes and retention math.
//
// Nothing in this package performs I/O.
package lifecycle

import "gestion_tramites/internal/domain/entities"

// Table maps a current status to the set of statuses it may move to.
//
// Same-state requests are never in the table; callers treat them as no-ops
// before consulting the guard.
type Table[S ~string] struct {
	kind entities.EntityKind
	next map[S][]S
}

// CaseTransitions is the fixed case table.
var CaseTransitions = Table[entities.CaseStatus]{
	kind: entities.EntityKindCase,
	next: map[entities.CaseStatus][]entities.CaseStatus{
		entities.CaseStatusRelevamiento: {entities.CaseStatusEnCurso, entities.CaseStatusArchivado},
		entities.CaseStatusEnCurso:      {entities.CaseStatusEnEspera, entities.CaseStatusFinalizado, entities.CaseStatusArchivado},
		entities.CaseStatusEnEspera:     {entities.CaseStatusEnCurso, entities.CaseStatusArchivado},
		entities.CaseStatusFinalizado:   {entities.CaseStatusArchivado},
		entities.CaseStatusArchivado:    {entities.CaseStatusRelevamiento},
	},
}

// ProcedureTransitions is the fixed procedure table.
var ProcedureTransitions = Table[entities.ProcedureStatus]{
	kind: entities.EntityKindProcedure,
	next: map[entities.ProcedureStatus][]entities.ProcedureStatus{
		entities.ProcedureStatusConsulta: {
			entities.ProcedureStatusPresupuestado,
			entities.ProcedureStatusEnCurso,
		},
		entities.ProcedureStatusPresupuestado: {
			entities.ProcedureStatusEnCurso,
			entities.ProcedureStatusConsulta,
		},
		entities.ProcedureStatusEnCurso: {
			entities.ProcedureStatusEsperandoCliente,
			entities.ProcedureStatusEsperandoOrganismo,
			entities.ProcedureStatusObservado,
			entities.ProcedureStatusAprobado,
			entities.ProcedureStatusRechazado,
		},
		entities.ProcedureStatusEsperandoCliente: {
			entities.ProcedureStatusEnCurso,
			entities.ProcedureStatusObservado,
		},
		entities.ProcedureStatusEsperandoOrganismo: {
			entities.ProcedureStatusEnCurso,
			entities.ProcedureStatusObservado,
			entities.ProcedureStatusAprobado,
			entities.ProcedureStatusRechazado,
		},
		entities.ProcedureStatusObservado: {
			entities.ProcedureStatusEnCurso,
			entities.ProcedureStatusEsperandoCliente,
			entities.ProcedureStatusRechazado,
		},
		entities.ProcedureStatusAprobado:  {entities.ProcedureStatusVencido},
		entities.ProcedureStatusRechazado: {entities.ProcedureStatusConsulta},
		entities.ProcedureStatusVencido:   {entities.ProcedureStatusConsulta},
	},
}

// Kind returns the entity kind the table governs.
func (t Table[S]) Kind() entities.EntityKind { return t.kind }

// IsAllowed reports whether to is a legal successor of from.
func (t Table[S]) IsAllowed(from, to S) bool {
	for _, s := range t.next[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the legal successors of from in table order.
// The returned slice is a copy.
func (t Table[S]) AllowedNext(from S) []S {
	next := t.next[from]
	out := make([]S, len(next))
	copy(out, next)
	return out
}

// Validate returns a *TransitionRejectedError when to is not a legal successor
// of from. It never mutates anything.
func (t Table[S]) Validate(from, to S) error {
	if t.IsAllowed(from, to) {
		return nil
	}
	return &TransitionRejectedError{Kind: t.kind, From: string(from), To: string(to)}
}

// Sources returns every status that has an entry in the table.
func (t Table[S]) Sources() []S {
	out := make([]S, 0, len(t.next))
	for s := range t.next {
		out = append(out, s)
	}
	return out
}

// ValidateTransition validates a raw status change for the given kind.
// Only cases and procedures carry a transition table.
func ValidateTransition(kind entities.EntityKind, from, to string) error {
	switch kind {
	case entities.EntityKindCase:
		return CaseTransitions.Validate(entities.CaseStatus(from), entities.CaseStatus(to))
	case entities.EntityKindProcedure:
		return ProcedureTransitions.Validate(entities.ProcedureStatus(from), entities.ProcedureStatus(to))
	}
	return &TransitionRejectedError{Kind: kind, From: from, To: to}
}
