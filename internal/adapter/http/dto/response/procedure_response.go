package response

import (
	"time"

	"gestion_tramites/internal/domain/entities"
)

type ProcedureResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	CaseID    string     `json:"case_id,omitempty"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	Semaphore *string    `json:"semaphore"`
	Progress  int        `json:"progress"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func FromProcedure(p entities.Procedure) ProcedureResponse {
	out := ProcedureResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		CaseID:    p.CaseID,
		Title:     p.Title,
		Type:      p.Type,
		Status:    string(p.Status),
		Progress:  p.Progress,
		DueDate:   p.DueDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: p.DeletedAt,
	}
	if p.Semaphore != nil {
		s := string(*p.Semaphore)
		out.Semaphore = &s
	}
	return out
}
