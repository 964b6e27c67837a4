package request

import (
	"errors"
	"strings"
	"time"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

var (
	ErrProgressModeAmbiguous = errors.New("exactly one of delta or progress is required")
)

type CreateProcedureRequest struct {
	ClientID string     `json:"client_id" binding:"required"`
	CaseID   string     `json:"case_id"`
	Title    string     `json:"title" binding:"required"`
	Type     string     `json:"type"`
	DueDate  *time.Time `json:"due_date"`
}

func (r CreateProcedureRequest) ToInput() usecase.CreateProcedureInput {
	return usecase.CreateProcedureInput{
		ClientID: strings.TrimSpace(r.ClientID),
		CaseID:   strings.TrimSpace(r.CaseID),
		Title:    r.Title,
		Type:     strings.TrimSpace(r.Type),
		DueDate:  r.DueDate,
	}
}

// ProgressRequest carries either a coarse adjustment (Delta) or an exact
// value (Progress), never both.
type ProgressRequest struct {
	Delta    *int `json:"delta"`
	Progress *int `json:"progress"`
}

func (r ProgressRequest) Validate() error {
	if (r.Delta == nil) == (r.Progress == nil) {
		return ErrProgressModeAmbiguous
	}
	return nil
}

// SemaphoreRequest clears the flag when Semaphore is null or absent.
type SemaphoreRequest struct {
	Semaphore *string `json:"semaphore"`
}

func (r SemaphoreRequest) ResolveSemaphore() *entities.Semaphore {
	if r.Semaphore == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*r.Semaphore))
	if v == "" {
		return nil
	}
	s := entities.Semaphore(v)
	return &s
}
