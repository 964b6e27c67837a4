package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"gestion_tramites/internal/adapter/persistence/memory"
	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	mock_interfaces "gestion_tramites/internal/usecase/interfaces/mocks"
)

func TestCaseUseCase_CreateCase(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, newTestClock())
		_, err := uc.CreateCase(context.Background(), CreateCaseInput{ClientID: "  ", Title: "x"})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, newTestClock())
		_, err := uc.CreateCase(context.Background(), CreateCaseInput{ClientID: "cli-1", Title: "x", Priority: "maxima"})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("deleted client", func(t *testing.T) {
		s := memory.NewStore()
		s.PutClient(entities.Client{ID: "cli-1", DeletedAt: timePtr(testNow)})
		uc := NewCaseUseCase(s.Cases(), s.Clients(), s.Activity(), newTestClock())
		_, err := uc.CreateCase(context.Background(), CreateCaseInput{ClientID: "cli-1", Title: "x"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		s := memory.NewStore()
		s.PutClient(entities.Client{ID: "cli-1"})
		uc := NewCaseUseCase(s.Cases(), s.Clients(), s.Activity(), newTestClock())

		c, err := uc.CreateCase(context.Background(), CreateCaseInput{ClientID: " cli-1 ", Title: " Habilitación "})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.ID == "" || c.ClientID != "cli-1" || c.Title != "Habilitación" {
			t.Fatalf("unexpected case: %+v", c)
		}
		if c.Status != entities.CaseStatusRelevamiento || c.Priority != entities.CasePriorityNormal {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if !c.CreatedAt.Equal(testNow) {
			t.Fatalf("expected clock time, got %v", c.CreatedAt)
		}
		if len(s.Notes()) != 1 {
			t.Fatalf("expected one activity note, got %d", len(s.Notes()))
		}
	})
}

func TestCaseUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid target", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil, nil, newTestClock())
		_, err := uc.ChangeStatus(context.Background(), "case-1", "borrado")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("relevamiento cannot jump to finalizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusRelevamiento}, nil)

		_, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusFinalizado)
		if !errors.Is(err, lifecycle.ErrTransitionRejected) {
			t.Fatalf("expected ErrTransitionRejected, got %v", err)
		}
		var rejected *lifecycle.TransitionRejectedError
		if !errors.As(err, &rejected) || rejected.From != "relevamiento" || rejected.To != "finalizado" {
			t.Fatalf("unexpected rejection detail: %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusEnCurso}, nil)

		c, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusEnCurso)
		if err != nil || c.Status != entities.CaseStatusEnCurso {
			t.Fatalf("expected unchanged case, got %+v, %v", c, err)
		}
	})

	t.Run("deleted case is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", DeletedAt: timePtr(testNow)}, nil)

		_, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusEnCurso)
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("write failure records no note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, activity, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusRelevamiento}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusEnCurso).Return(entities.Case{}, errors.New("dynamo down"))

		_, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusEnCurso)
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("row vanished before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, nil, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusRelevamiento}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusEnCurso).Return(entities.Case{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusEnCurso)
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("applied even when the note fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityRepository(ctrl)
		uc := NewCaseUseCase(repo, nil, activity, newTestClock())

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1", Status: entities.CaseStatusRelevamiento}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusEnCurso).
			Return(entities.Case{ID: "case-1", Status: entities.CaseStatusEnCurso}, nil)
		activity.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityNote{})).DoAndReturn(
			func(_ context.Context, n entities.ActivityNote) error {
				if n.EntityKind != entities.EntityKindCase || n.EntityID != "case-1" || n.Note == "" {
					t.Fatalf("unexpected note: %+v", n)
				}
				return errors.New("notes table missing")
			},
		)

		c, err := uc.ChangeStatus(context.Background(), "case-1", entities.CaseStatusEnCurso)
		if err != nil || c.Status != entities.CaseStatusEnCurso {
			t.Fatalf("expected applied transition, got %+v, %v", c, err)
		}
	})
}

func TestCaseUseCase_AllowedTransitionsAndPriority(t *testing.T) {
	s := memory.NewStore()
	s.PutCase(entities.Case{ID: "case-1", ClientID: "cli-1", Status: entities.CaseStatusRelevamiento, Priority: entities.CasePriorityNormal})
	uc := NewCaseUseCase(s.Cases(), s.Clients(), s.Activity(), newTestClock())

	next, err := uc.AllowedTransitions(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(next) != 2 || next[0] != entities.CaseStatusEnCurso || next[1] != entities.CaseStatusArchivado {
		t.Fatalf("unexpected allowed set: %v", next)
	}

	c, err := uc.UpdatePriority(context.Background(), "case-1", entities.CasePriorityUrgente)
	if err != nil || c.Priority != entities.CasePriorityUrgente {
		t.Fatalf("expected urgent priority, got %+v, %v", c, err)
	}
	if _, err := uc.UpdatePriority(context.Background(), "case-1", "maxima"); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}
