package entities

import "time"

// ProcedureStatus represents the lifecycle of a procedure (trámite).
type ProcedureStatus string

const (
	ProcedureStatusConsulta           ProcedureStatus = "consulta"
	ProcedureStatusPresupuestado      ProcedureStatus = "presupuestado"
	ProcedureStatusEnCurso            ProcedureStatus = "en_curso"
	ProcedureStatusEsperandoCliente   ProcedureStatus = "esperando_cliente"
	ProcedureStatusEsperandoOrganismo ProcedureStatus = "esperando_organismo"
	ProcedureStatusObservado          ProcedureStatus = "observado"
	ProcedureStatusAprobado           ProcedureStatus = "aprobado"
	ProcedureStatusRechazado          ProcedureStatus = "rechazado"
	ProcedureStatusVencido            ProcedureStatus = "vencido"
)

var ProcedureStatuses = []ProcedureStatus{
	ProcedureStatusConsulta,
	ProcedureStatusPresupuestado,
	ProcedureStatusEnCurso,
	ProcedureStatusEsperandoCliente,
	ProcedureStatusEsperandoOrganismo,
	ProcedureStatusObservado,
	ProcedureStatusAprobado,
	ProcedureStatusRechazado,
	ProcedureStatusVencido,
}

func (s ProcedureStatus) Valid() bool {
	for _, v := range ProcedureStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Semaphore is a manual traffic-light flag, independent of the status.
type Semaphore string

const (
	SemaphoreVerde    Semaphore = "verde"
	SemaphoreAmarillo Semaphore = "amarillo"
	SemaphoreRojo     Semaphore = "rojo"
)

func (s Semaphore) Valid() bool {
	switch s {
	case SemaphoreVerde, SemaphoreAmarillo, SemaphoreRojo:
		return true
	}
	return false
}

// Procedure is a single regulatory filing.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
//   - GSI (case_id-index): case_id (absent for independent procedures)
//
// CaseID is empty for procedures that do not belong to a case. Semaphore is
// nil when no flag was set.
type Procedure struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	CaseID    string          `json:"case_id,omitempty"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Status    ProcedureStatus `json:"status"`
	Semaphore *Semaphore      `json:"semaphore,omitempty"`
	Progress  int             `json:"progress"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

func (p Procedure) IsActive() bool { return p.DeletedAt == nil }

func (p Procedure) IsIndependent() bool { return p.CaseID == "" }
