package entities

import "time"

// ProcedureDocumentStatus is the approval state of a document required by a
// procedure. It cycles independently of the procedure status.
type ProcedureDocumentStatus string

const (
	ProcedureDocumentPendiente  ProcedureDocumentStatus = "pendiente"
	ProcedureDocumentPresentado ProcedureDocumentStatus = "presentado"
	ProcedureDocumentAprobado   ProcedureDocumentStatus = "aprobado"
	ProcedureDocumentRechazado  ProcedureDocumentStatus = "rechazado"
	ProcedureDocumentVencido    ProcedureDocumentStatus = "vencido"
)

var ProcedureDocumentStatuses = []ProcedureDocumentStatus{
	ProcedureDocumentPendiente,
	ProcedureDocumentPresentado,
	ProcedureDocumentAprobado,
	ProcedureDocumentRechazado,
	ProcedureDocumentVencido,
}

func (s ProcedureDocumentStatus) Valid() bool {
	for _, v := range ProcedureDocumentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ProcedureDocument is hard-deleted; it has no soft-delete marker.
//
// ClientDocumentID references a reusable client document, if any.
type ProcedureDocument struct {
	ID               string                  `json:"id"`
	ProcedureID      string                  `json:"procedure_id"`
	Name             string                  `json:"name"`
	Status           ProcedureDocumentStatus `json:"status"`
	Mandatory        bool                    `json:"mandatory"`
	ClientDocumentID string                  `json:"client_document_id,omitempty"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

type ClientDocumentStatus string

const (
	ClientDocumentVigente   ClientDocumentStatus = "vigente"
	ClientDocumentVencido   ClientDocumentStatus = "vencido"
	ClientDocumentPendiente ClientDocumentStatus = "pendiente"
)

var ClientDocumentStatuses = []ClientDocumentStatus{ClientDocumentVigente, ClientDocumentVencido, ClientDocumentPendiente}

func (s ClientDocumentStatus) Valid() bool {
	for _, v := range ClientDocumentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type ClientDocument struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"client_id"`
	Name      string               `json:"name"`
	Status    ClientDocumentStatus `json:"status"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty"`
	UpdatedAt time.Time            `json:"updated_at"`
}
