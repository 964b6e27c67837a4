package usecase

import (
	"testing"
	"time"

	"github.com/juju/clock/testclock"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestClock() *testclock.Clock {
	return testclock.NewClock(testNow)
}

func timePtr(t time.Time) *time.Time { return &t }

// seedScenarioC builds a client with two cases, one already deleted, owning
// three procedures between them, plus one independent procedure.
func seedScenarioC(t *testing.T) *memory.Store {
	t.Helper()
	earlier := testNow.Add(-72 * time.Hour)
	s := memory.NewStore()
	s.PutClient(entities.Client{ID: "cli-1", Name: "Acme SA"})
	s.PutCase(entities.Case{ID: "case-a", ClientID: "cli-1", Title: "Habilitación", Status: entities.CaseStatusEnCurso})
	s.PutCase(entities.Case{ID: "case-b", ClientID: "cli-1", Title: "Marcas", Status: entities.CaseStatusEnEspera, DeletedAt: &earlier})
	s.PutProcedure(entities.Procedure{ID: "proc-1", ClientID: "cli-1", CaseID: "case-a", Status: entities.ProcedureStatusEnCurso})
	s.PutProcedure(entities.Procedure{ID: "proc-2", ClientID: "cli-1", CaseID: "case-a", Status: entities.ProcedureStatusConsulta})
	s.PutProcedure(entities.Procedure{ID: "proc-3", ClientID: "cli-1", CaseID: "case-b", Status: entities.ProcedureStatusObservado, DeletedAt: &earlier})
	s.PutProcedure(entities.Procedure{ID: "proc-4", ClientID: "cli-1", Status: entities.ProcedureStatusConsulta})
	return s
}
