package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	mock_interfaces "gestion_tramites/internal/usecase/interfaces/mocks"
)

func TestAttentionUseCase_ProcedureSignals(t *testing.T) {
	s := seedScenarioC(t)
	s.PutProcedure(entities.Procedure{
		ID: "proc-9", ClientID: "cli-1", Status: entities.ProcedureStatusEnCurso,
		DueDate: timePtr(testNow.Add(-24 * time.Hour)),
	})
	s.PutProcedureDocument(entities.ProcedureDocument{ID: "d-1", ProcedureID: "proc-9", Status: entities.ProcedureDocumentAprobado, Mandatory: true})
	s.PutProcedureDocument(entities.ProcedureDocument{ID: "d-2", ProcedureID: "proc-9", Status: entities.ProcedureDocumentPendiente, Mandatory: true})
	s.PutProcedureDocument(entities.ProcedureDocument{ID: "d-3", ProcedureID: "proc-9", Status: entities.ProcedureDocumentPresentado, Mandatory: true})
	s.PutProcedureDocument(entities.ProcedureDocument{ID: "d-4", ProcedureID: "proc-9", Status: entities.ProcedureDocumentPresentado, Mandatory: true})
	uc := NewAttentionUseCase(s.Clients(), s.Cases(), s.Procedures(), s.ProcedureDocuments(), s.ClientDocuments(), newTestClock())

	sig, err := uc.ProcedureSignals(context.Background(), "proc-9")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !sig.IsOverdue || sig.AttentionScore != 1 {
		t.Fatalf("expected overdue procedure, got %+v", sig)
	}
	if sig.PendingMandatoryDocs != 1 || sig.DocsApprovedRatio == nil || *sig.DocsApprovedRatio != 0.25 {
		t.Fatalf("unexpected document signals: %+v", sig)
	}

	if _, err := uc.ProcedureSignals(context.Background(), "proc-3"); !errors.Is(err, ErrProcedureNotFound) {
		t.Fatalf("deleted procedure should be not found, got %v", err)
	}
}

func TestAttentionUseCase_CaseAggregate(t *testing.T) {
	s := seedScenarioC(t)
	uc := NewAttentionUseCase(s.Clients(), s.Cases(), s.Procedures(), s.ProcedureDocuments(), s.ClientDocuments(), newTestClock())

	agg, err := uc.CaseAggregate(context.Background(), "case-a")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if agg.CaseID != "case-a" || agg.ProcedureCount != 2 {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}
	if agg.Bucket != lifecycle.BucketActive {
		t.Fatalf("expected active bucket, got %s", agg.Bucket)
	}

	if _, err := uc.CaseAggregate(context.Background(), "case-b"); !errors.Is(err, ErrCaseNotFound) {
		t.Fatalf("deleted case should be not found, got %v", err)
	}
}

func TestAttentionUseCase_ClientOverview(t *testing.T) {
	s := seedScenarioC(t)
	s.PutProcedure(entities.Procedure{ID: "proc-5", ClientID: "cli-1", CaseID: "case-a", Status: entities.ProcedureStatusEsperandoCliente, Progress: 50})
	s.PutClientDocument(entities.ClientDocument{ID: "cd-1", ClientID: "cli-1", Status: entities.ClientDocumentVencido})
	s.PutClientDocument(entities.ClientDocument{ID: "cd-2", ClientID: "cli-1", Status: entities.ClientDocumentVigente, ExpiresAt: timePtr(testNow.Add(-time.Hour))})
	s.PutClientDocument(entities.ClientDocument{ID: "cd-3", ClientID: "cli-1", Status: entities.ClientDocumentVigente})
	uc := NewAttentionUseCase(s.Clients(), s.Cases(), s.Procedures(), s.ProcedureDocuments(), s.ClientDocuments(), newTestClock())

	ov, err := uc.ClientOverview(context.Background(), "cli-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// proc-1, proc-2, proc-4 and proc-5; procedures reached twice count once.
	if ov.ProcedureCount != 4 {
		t.Fatalf("expected 4 procedures, got %d", ov.ProcedureCount)
	}
	if ov.AttentionCount != 1 {
		t.Fatalf("expected attention 1, got %d", ov.AttentionCount)
	}
	if ov.DocsExpired != 2 {
		t.Fatalf("expected 2 expired docs, got %d", ov.DocsExpired)
	}
}

func TestAttentionUseCase_ClientOverviewStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	procedures := mock_interfaces.NewMockIProcedureRepository(ctrl)
	uc := NewAttentionUseCase(clients, nil, procedures, nil, nil, newTestClock())

	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
	procedures.EXPECT().ListActiveByClientID(gomock.Any(), "cli-1").Return(nil, errors.New("throttled"))

	if _, err := uc.ClientOverview(context.Background(), "cli-1"); !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
}
