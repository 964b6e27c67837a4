package lifecycle

import (
	"math"
	"time"

	"gestion_tramites/internal/domain/entities"
)

// ProcedureSignals are the derived indicators of one procedure. They are
// recomputed on every read and never stored.
type ProcedureSignals struct {
	ProcedureID          string              `json:"procedure_id"`
	Status               string              `json:"status"`
	Bucket               StatusBucket        `json:"bucket"`
	NeedsClientInput     bool                `json:"needs_client_input"`
	IsObserved           bool                `json:"is_observed"`
	IsOverdue            bool                `json:"is_overdue"`
	PendingMandatoryDocs int                 `json:"pending_mandatory_docs"`
	DocsApprovedRatio    *float64            `json:"docs_approved_ratio,omitempty"`
	AttentionScore       int                 `json:"attention_score"`
	Progress             int                 `json:"progress"`
	Semaphore            *entities.Semaphore `json:"semaphore,omitempty"`
}

// ComputeProcedureSignals derives the signals of p from its documents at now.
func ComputeProcedureSignals(p entities.Procedure, docs []entities.ProcedureDocument, now time.Time) ProcedureSignals {
	s := ProcedureSignals{
		ProcedureID:      p.ID,
		Status:           string(p.Status),
		Bucket:           BucketFor(string(p.Status)),
		NeedsClientInput: p.Status == entities.ProcedureStatusEsperandoCliente,
		IsObserved:       p.Status == entities.ProcedureStatusObservado,
		IsOverdue:        p.DueDate != nil && p.DueDate.Before(now) && p.Status != entities.ProcedureStatusAprobado,
		Progress:         p.Progress,
		Semaphore:        p.Semaphore,
	}

	approved := 0
	for _, d := range docs {
		if d.Status == entities.ProcedureDocumentPendiente && d.Mandatory {
			s.PendingMandatoryDocs++
		}
		if d.Status == entities.ProcedureDocumentAprobado {
			approved++
		}
	}
	if len(docs) > 0 {
		ratio := float64(approved) / float64(len(docs))
		s.DocsApprovedRatio = &ratio
	}

	if s.NeedsClientInput {
		s.AttentionScore++
	}
	if s.IsObserved {
		s.AttentionScore++
	}
	if s.IsOverdue {
		s.AttentionScore++
	}
	return s
}

// ProcedureWithDocuments pairs a procedure with its documents for aggregation.
type ProcedureWithDocuments struct {
	Procedure entities.Procedure
	Documents []entities.ProcedureDocument
}

// Aggregate is the roll-up over a set of procedures. Dashboards, case detail
// and the client portal all read this same shape.
type Aggregate struct {
	ProcedureCount       int                  `json:"procedure_count"`
	AttentionCount       int                  `json:"attention_count"`
	PendingMandatoryDocs int                  `json:"pending_mandatory_docs"`
	OverdueCount         int                  `json:"overdue_count"`
	ProgressPercent      *int                 `json:"progress_percent,omitempty"`
	Buckets              map[StatusBucket]int `json:"buckets"`
	Procedures           []ProcedureSignals   `json:"procedures"`
}

// CaseAggregate is the aggregate of a case's active procedures.
type CaseAggregate struct {
	CaseID string              `json:"case_id"`
	Status entities.CaseStatus `json:"status"`
	Bucket StatusBucket        `json:"bucket"`
	Aggregate
}

// ClientOverview is the portal view of a client.
type ClientOverview struct {
	ClientID    string `json:"client_id"`
	DocsExpired int    `json:"docs_expired"`
	Aggregate
}

// AggregateProcedures sums attention scores and averages progress. Pending
// mandatory documents are counted on their own and never folded into the
// attention count.
func AggregateProcedures(items []ProcedureWithDocuments, now time.Time) Aggregate {
	agg := Aggregate{
		ProcedureCount: len(items),
		Buckets:        map[StatusBucket]int{},
		Procedures:     make([]ProcedureSignals, 0, len(items)),
	}
	progressSum := 0
	for _, it := range items {
		s := ComputeProcedureSignals(it.Procedure, it.Documents, now)
		agg.Procedures = append(agg.Procedures, s)
		agg.AttentionCount += s.AttentionScore
		agg.PendingMandatoryDocs += s.PendingMandatoryDocs
		if s.IsOverdue {
			agg.OverdueCount++
		}
		agg.Buckets[s.Bucket]++
		progressSum += it.Procedure.Progress
	}
	if len(items) > 0 {
		mean := int(math.Round(float64(progressSum) / float64(len(items))))
		agg.ProgressPercent = &mean
	}
	return agg
}

// ComputeCaseAggregate aggregates the child procedures of c.
func ComputeCaseAggregate(c entities.Case, items []ProcedureWithDocuments, now time.Time) CaseAggregate {
	return CaseAggregate{
		CaseID:    c.ID,
		Status:    c.Status,
		Bucket:    BucketFor(string(c.Status)),
		Aggregate: AggregateProcedures(items, now),
	}
}

// ComputeClientOverview aggregates every procedure of a client, owned directly
// or through a case, and counts expired client documents.
func ComputeClientOverview(clientID string, items []ProcedureWithDocuments, docs []entities.ClientDocument, now time.Time) ClientOverview {
	return ClientOverview{
		ClientID:    clientID,
		DocsExpired: CountExpiredClientDocuments(docs, now),
		Aggregate:   AggregateProcedures(items, now),
	}
}

func CountExpiredClientDocuments(docs []entities.ClientDocument, now time.Time) int {
	n := 0
	for _, d := range docs {
		if d.Status == entities.ClientDocumentVencido || (d.ExpiresAt != nil && d.ExpiresAt.Before(now)) {
			n++
		}
	}
	return n
}
