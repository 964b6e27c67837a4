package response

import (
	"time"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
)

type ProcedureDocumentResponse struct {
	ID               string    `json:"id"`
	ProcedureID      string    `json:"procedure_id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	Mandatory        bool      `json:"mandatory"`
	CanReject        bool      `json:"can_reject"`
	ClientDocumentID string    `json:"client_document_id,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromProcedureDocument(d entities.ProcedureDocument) ProcedureDocumentResponse {
	return ProcedureDocumentResponse{
		ID:               d.ID,
		ProcedureID:      d.ProcedureID,
		Name:             d.Name,
		Status:           string(d.Status),
		Mandatory:        d.Mandatory,
		CanReject:        lifecycle.CanRejectProcedureDocument(d.Status),
		ClientDocumentID: d.ClientDocumentID,
		UpdatedAt:        d.UpdatedAt,
	}
}

type ClientDocumentResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromClientDocument(d entities.ClientDocument) ClientDocumentResponse {
	return ClientDocumentResponse{
		ID:        d.ID,
		ClientID:  d.ClientID,
		Name:      d.Name,
		Status:    string(d.Status),
		ExpiresAt: d.ExpiresAt,
		UpdatedAt: d.UpdatedAt,
	}
}
