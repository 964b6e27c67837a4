package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/domain/entities"
)

var aggregatorNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dayOffset(days int) *time.Time {
	t := aggregatorNow.AddDate(0, 0, days)
	return &t
}

func TestComputeProcedureSignals_Overdue(t *testing.T) {
	p := entities.Procedure{ID: "p-1", Status: entities.ProcedureStatusEnCurso, DueDate: dayOffset(-1)}
	s := ComputeProcedureSignals(p, nil, aggregatorNow)
	assert.True(t, s.IsOverdue)
	assert.Equal(t, 1, s.AttentionScore)

	p.Status = entities.ProcedureStatusAprobado
	s = ComputeProcedureSignals(p, nil, aggregatorNow)
	assert.False(t, s.IsOverdue)
	assert.Equal(t, 0, s.AttentionScore)

	p.Status = entities.ProcedureStatusEnCurso
	p.DueDate = dayOffset(1)
	assert.False(t, ComputeProcedureSignals(p, nil, aggregatorNow).IsOverdue)

	p.DueDate = nil
	assert.False(t, ComputeProcedureSignals(p, nil, aggregatorNow).IsOverdue)
}

func TestComputeProcedureSignals_Documents(t *testing.T) {
	p := entities.Procedure{ID: "p-1", Status: entities.ProcedureStatusEnCurso}
	docs := []entities.ProcedureDocument{
		{ID: "d-1", Status: entities.ProcedureDocumentAprobado, Mandatory: true},
		{ID: "d-2", Status: entities.ProcedureDocumentPendiente, Mandatory: true},
		{ID: "d-3", Status: entities.ProcedureDocumentPresentado, Mandatory: true},
		{ID: "d-4", Status: entities.ProcedureDocumentPresentado, Mandatory: true},
	}

	s := ComputeProcedureSignals(p, docs, aggregatorNow)
	assert.Equal(t, 1, s.PendingMandatoryDocs)
	require.NotNil(t, s.DocsApprovedRatio)
	assert.InDelta(t, 0.25, *s.DocsApprovedRatio, 1e-9)
}

func TestComputeProcedureSignals_OptionalPendingIsNotCounted(t *testing.T) {
	p := entities.Procedure{ID: "p-1", Status: entities.ProcedureStatusEnCurso}
	docs := []entities.ProcedureDocument{
		{ID: "d-1", Status: entities.ProcedureDocumentPendiente, Mandatory: false},
		{ID: "d-2", Status: entities.ProcedureDocumentPendiente, Mandatory: true},
	}
	assert.Equal(t, 1, ComputeProcedureSignals(p, docs, aggregatorNow).PendingMandatoryDocs)
}

func TestComputeProcedureSignals_NoDocumentsOmitsRatio(t *testing.T) {
	s := ComputeProcedureSignals(entities.Procedure{Status: entities.ProcedureStatusConsulta}, nil, aggregatorNow)
	assert.Nil(t, s.DocsApprovedRatio)
	assert.Equal(t, BucketOther, s.Bucket)
}

func TestComputeProcedureSignals_AttentionScore(t *testing.T) {
	tests := []struct {
		name   string
		status entities.ProcedureStatus
		due    *time.Time
		want   int
	}{
		{name: "waiting on client", status: entities.ProcedureStatusEsperandoCliente, want: 1},
		{name: "observed and overdue", status: entities.ProcedureStatusObservado, due: dayOffset(-3), want: 2},
		{name: "waiting on client and overdue", status: entities.ProcedureStatusEsperandoCliente, due: dayOffset(-3), want: 2},
		{name: "in progress on time", status: entities.ProcedureStatusEnCurso, due: dayOffset(3), want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := entities.Procedure{Status: tc.status, DueDate: tc.due}
			s := ComputeProcedureSignals(p, nil, aggregatorNow)
			assert.Equal(t, tc.want, s.AttentionScore)
		})
	}
}

func TestComputeCaseAggregate(t *testing.T) {
	c := entities.Case{ID: "c-1", Status: entities.CaseStatusEnCurso}
	items := []ProcedureWithDocuments{
		{
			Procedure: entities.Procedure{ID: "p-1", Status: entities.ProcedureStatusEsperandoCliente, Progress: 40},
			Documents: []entities.ProcedureDocument{
				{Status: entities.ProcedureDocumentPendiente, Mandatory: true},
				{Status: entities.ProcedureDocumentPendiente, Mandatory: true},
			},
		},
		{
			Procedure: entities.Procedure{ID: "p-2", Status: entities.ProcedureStatusObservado, Progress: 55, DueDate: dayOffset(-1)},
		},
		{
			Procedure: entities.Procedure{ID: "p-3", Status: entities.ProcedureStatusAprobado, Progress: 100, DueDate: dayOffset(-10)},
		},
	}

	agg := ComputeCaseAggregate(c, items, aggregatorNow)
	assert.Equal(t, "c-1", agg.CaseID)
	assert.Equal(t, BucketActive, agg.Bucket)
	assert.Equal(t, 3, agg.ProcedureCount)
	assert.Equal(t, 3, agg.AttentionCount, "pending documents must not leak into the attention count")
	assert.Equal(t, 2, agg.PendingMandatoryDocs)
	assert.Equal(t, 1, agg.OverdueCount)
	require.NotNil(t, agg.ProgressPercent)
	assert.Equal(t, 65, *agg.ProgressPercent)
	assert.Equal(t, 1, agg.Buckets[BucketWaiting])
	assert.Equal(t, 1, agg.Buckets[BucketBlocked])
	assert.Equal(t, 1, agg.Buckets[BucketDone])
	assert.Len(t, agg.Procedures, 3)
}

func TestComputeCaseAggregate_NoProcedures(t *testing.T) {
	agg := ComputeCaseAggregate(entities.Case{ID: "c-1", Status: entities.CaseStatusRelevamiento}, nil, aggregatorNow)
	assert.Nil(t, agg.ProgressPercent)
	assert.Zero(t, agg.AttentionCount)
	assert.Empty(t, agg.Procedures)
}

func TestComputeClientOverview(t *testing.T) {
	docs := []entities.ClientDocument{
		{ID: "cd-1", Status: entities.ClientDocumentVencido},
		{ID: "cd-2", Status: entities.ClientDocumentVigente, ExpiresAt: dayOffset(-1)},
		{ID: "cd-3", Status: entities.ClientDocumentVigente, ExpiresAt: dayOffset(30)},
		{ID: "cd-4", Status: entities.ClientDocumentPendiente},
	}
	items := []ProcedureWithDocuments{
		{Procedure: entities.Procedure{ID: "p-1", Status: entities.ProcedureStatusObservado, Progress: 10}},
	}

	ov := ComputeClientOverview("cl-1", items, docs, aggregatorNow)
	assert.Equal(t, "cl-1", ov.ClientID)
	assert.Equal(t, 2, ov.DocsExpired)
	assert.Equal(t, 1, ov.AttentionCount)
	require.NotNil(t, ov.ProgressPercent)
	assert.Equal(t, 10, *ov.ProgressPercent)
}
