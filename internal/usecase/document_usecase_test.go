package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
)

func newDocumentFixture(status entities.ProcedureDocumentStatus) (*memory.Store, *DocumentUseCase) {
	s := memory.NewStore()
	s.PutProcedureDocument(entities.ProcedureDocument{ID: "doc-1", ProcedureID: "proc-1", Name: "Estatuto", Status: status, Mandatory: true})
	s.PutClientDocument(entities.ClientDocument{ID: "cdoc-1", ClientID: "cli-1", Name: "DNI", Status: entities.ClientDocumentVigente})
	return s, NewDocumentUseCase(s.ProcedureDocuments(), s.ClientDocuments(), s.Activity(), newTestClock())
}

func TestDocumentUseCase_CycleProcedureDocument(t *testing.T) {
	s, uc := newDocumentFixture(entities.ProcedureDocumentPendiente)
	want := []entities.ProcedureDocumentStatus{
		entities.ProcedureDocumentPresentado,
		entities.ProcedureDocumentAprobado,
		entities.ProcedureDocumentPendiente,
	}
	for _, w := range want {
		d, err := uc.CycleProcedureDocument(context.Background(), "doc-1")
		if err != nil || d.Status != w {
			t.Fatalf("expected %s, got %s, %v", w, d.Status, err)
		}
	}
	notes := s.Notes()
	if len(notes) != 3 || notes[0].EntityKind != entities.EntityKindProcedure || notes[0].EntityID != "proc-1" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestDocumentUseCase_RejectProcedureDocument(t *testing.T) {
	t.Run("from presentado", func(t *testing.T) {
		_, uc := newDocumentFixture(entities.ProcedureDocumentPresentado)
		d, err := uc.RejectProcedureDocument(context.Background(), "doc-1")
		if err != nil || d.Status != entities.ProcedureDocumentRechazado {
			t.Fatalf("expected rechazado, got %s, %v", d.Status, err)
		}
	})

	t.Run("from pendiente", func(t *testing.T) {
		s, uc := newDocumentFixture(entities.ProcedureDocumentPendiente)
		_, err := uc.RejectProcedureDocument(context.Background(), "doc-1")
		if !errors.Is(err, lifecycle.ErrDocumentRejectNotAllowed) {
			t.Fatalf("expected ErrDocumentRejectNotAllowed, got %v", err)
		}
		d, _ := s.ProcedureDocuments().GetByID(context.Background(), "doc-1")
		if d.Status != entities.ProcedureDocumentPendiente {
			t.Fatalf("status must be untouched, got %s", d.Status)
		}
	})

	t.Run("missing document", func(t *testing.T) {
		_, uc := newDocumentFixture(entities.ProcedureDocumentPresentado)
		if _, err := uc.RejectProcedureDocument(context.Background(), "doc-x"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_DeleteProcedureDocument(t *testing.T) {
	s, uc := newDocumentFixture(entities.ProcedureDocumentPendiente)
	if err := uc.DeleteProcedureDocument(context.Background(), "doc-1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d, _ := s.ProcedureDocuments().GetByID(context.Background(), "doc-1"); d.ID != "" {
		t.Fatalf("document should be gone")
	}
	if err := uc.DeleteProcedureDocument(context.Background(), "doc-1"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentUseCase_CycleClientDocument(t *testing.T) {
	_, uc := newDocumentFixture(entities.ProcedureDocumentPendiente)
	want := []entities.ClientDocumentStatus{
		entities.ClientDocumentVencido,
		entities.ClientDocumentPendiente,
		entities.ClientDocumentVigente,
	}
	for _, w := range want {
		d, err := uc.CycleClientDocument(context.Background(), "cdoc-1")
		if err != nil || d.Status != w {
			t.Fatalf("expected %s, got %s, %v", w, d.Status, err)
		}
	}
}
