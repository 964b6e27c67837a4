package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestion_tramites/internal/domain/entities"
)

func TestCycleProcedureDocument(t *testing.T) {
	tests := []struct {
		from entities.ProcedureDocumentStatus
		want entities.ProcedureDocumentStatus
	}{
		{entities.ProcedureDocumentPendiente, entities.ProcedureDocumentPresentado},
		{entities.ProcedureDocumentPresentado, entities.ProcedureDocumentAprobado},
		{entities.ProcedureDocumentAprobado, entities.ProcedureDocumentPendiente},
		{entities.ProcedureDocumentRechazado, entities.ProcedureDocumentPendiente},
		{entities.ProcedureDocumentVencido, entities.ProcedureDocumentPendiente},
	}
	for _, tc := range tests {
		t.Run(string(tc.from), func(t *testing.T) {
			got, err := CycleProcedureDocument(tc.from)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCycleProcedureDocument_ThreeStepsReturnToPendiente(t *testing.T) {
	s := entities.ProcedureDocumentPendiente
	for i := 0; i < 3; i++ {
		next, err := CycleProcedureDocument(s)
		require.NoError(t, err)
		s = next
	}
	assert.Equal(t, entities.ProcedureDocumentPendiente, s)
}

func TestCycleProcedureDocument_UnknownStatus(t *testing.T) {
	_, err := CycleProcedureDocument("archivado")
	assert.ErrorIs(t, err, ErrUnknownDocumentStatus)
}

func TestRejectProcedureDocument(t *testing.T) {
	got, err := RejectProcedureDocument(entities.ProcedureDocumentPresentado)
	require.NoError(t, err)
	assert.Equal(t, entities.ProcedureDocumentRechazado, got)

	for _, s := range entities.ProcedureDocumentStatuses {
		if s == entities.ProcedureDocumentPresentado {
			assert.True(t, CanRejectProcedureDocument(s))
			continue
		}
		assert.False(t, CanRejectProcedureDocument(s))
		_, err := RejectProcedureDocument(s)
		assert.ErrorIsf(t, err, ErrDocumentRejectNotAllowed, "reject from %s", s)
	}
}

func TestCycleClientDocument(t *testing.T) {
	s := entities.ClientDocumentVigente
	var seen []entities.ClientDocumentStatus
	for i := 0; i < 3; i++ {
		next, err := CycleClientDocument(s)
		require.NoError(t, err)
		seen = append(seen, next)
		s = next
	}
	assert.Equal(t, []entities.ClientDocumentStatus{
		entities.ClientDocumentVencido,
		entities.ClientDocumentPendiente,
		entities.ClientDocumentVigente,
	}, seen)

	_, err := CycleClientDocument("presentado")
	assert.ErrorIs(t, err, ErrUnknownDocumentStatus)
}
