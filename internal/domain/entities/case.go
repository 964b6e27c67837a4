package entities

import "time"

// CaseStatus represents the lifecycle of a case (gestión).
type CaseStatus string

const (
	CaseStatusRelevamiento CaseStatus = "relevamiento"
	CaseStatusEnCurso      CaseStatus = "en_curso"
	CaseStatusEnEspera     CaseStatus = "en_espera"
	CaseStatusFinalizado   CaseStatus = "finalizado"
	CaseStatusArchivado    CaseStatus = "archivado"
)

// CaseStatuses lists every case status in lifecycle order.
var CaseStatuses = []CaseStatus{
	CaseStatusRelevamiento,
	CaseStatusEnCurso,
	CaseStatusEnEspera,
	CaseStatusFinalizado,
	CaseStatusArchivado,
}

func (s CaseStatus) Valid() bool {
	for _, v := range CaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type CasePriority string

const (
	CasePriorityBaja    CasePriority = "baja"
	CasePriorityNormal  CasePriority = "normal"
	CasePriorityAlta    CasePriority = "alta"
	CasePriorityUrgente CasePriority = "urgente"
)

var CasePriorities = []CasePriority{CasePriorityBaja, CasePriorityNormal, CasePriorityAlta, CasePriorityUrgente}

func (p CasePriority) Valid() bool {
	for _, v := range CasePriorities {
		if v == p {
			return true
		}
	}
	return false
}

// Case groups procedures of a single client engagement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
type Case struct {
	ID        string       `json:"id"`
	ClientID  string       `json:"client_id"`
	Title     string       `json:"title"`
	Status    CaseStatus   `json:"status"`
	Priority  CasePriority `json:"priority"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
}

func (c Case) IsActive() bool { return c.DeletedAt == nil }
