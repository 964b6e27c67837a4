package response

import (
	"time"

	"gestion_tramites/internal/domain/entities"
)

type CaseResponse struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"client_id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func FromCase(c entities.Case) CaseResponse {
	return CaseResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Title:     c.Title,
		Status:    string(c.Status),
		Priority:  string(c.Priority),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}

// TransitionsResponse lists the statuses reachable from the current one.
type TransitionsResponse struct {
	ID      string   `json:"id"`
	Allowed []string `json:"allowed"`
}

func FromTransitions[S ~string](id string, allowed []S) TransitionsResponse {
	out := TransitionsResponse{ID: id, Allowed: make([]string, 0, len(allowed))}
	for _, s := range allowed {
		out.Allowed = append(out.Allowed, string(s))
	}
	return out
}
