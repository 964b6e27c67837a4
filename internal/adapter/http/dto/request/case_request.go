package request

import (
	"strings"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase"
)

type CreateCaseRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Priority string `json:"priority"`
}

func (r CreateCaseRequest) ToInput() usecase.CreateCaseInput {
	return usecase.CreateCaseInput{
		ClientID: strings.TrimSpace(r.ClientID),
		Title:    r.Title,
		Priority: entities.CasePriority(strings.ToLower(strings.TrimSpace(r.Priority))),
	}
}

// StatusRequest is shared by the case and procedure status endpoints.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

type PriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

func (r PriorityRequest) ResolvePriority() entities.CasePriority {
	return entities.CasePriority(strings.ToLower(strings.TrimSpace(r.Priority)))
}
