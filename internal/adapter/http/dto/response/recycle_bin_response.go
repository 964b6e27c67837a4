package response

import (
	"time"

	"gestion_tramites/internal/usecase"
	"gestion_tramites/pkg"
)

// CascadeResponse is the body of soft-delete and restore calls. Error is set
// when some dependents were left behind; repeating the call retries them.
type CascadeResponse struct {
	Kind     string         `json:"kind"`
	ID       string         `json:"id"`
	Changed  bool           `json:"changed"`
	Affected int            `json:"affected"`
	Error    *pkg.HTTPError `json:"error,omitempty"`
}

func FromCascade(res usecase.CascadeResult, appErr *pkg.AppError) CascadeResponse {
	out := CascadeResponse{
		Kind:     string(res.Kind),
		ID:       res.ID,
		Changed:  res.Changed,
		Affected: res.Affected,
	}
	if appErr != nil {
		body := appErr.ToHTTPError()
		out.Error = &body
	}
	return out
}

type RecycleBinEntryResponse struct {
	Kind          string    `json:"kind"`
	ID            string    `json:"id"`
	Label         string    `json:"label"`
	Detail        string    `json:"detail"`
	DeletedAt     time.Time `json:"deleted_at"`
	RemainingDays int       `json:"remaining_days"`
	Urgent        bool      `json:"urgent"`
	PurgeEligible bool      `json:"purge_eligible"`
}

type RecycleBinResponse struct {
	RetentionDays   int                       `json:"retention_days"`
	QuotesAvailable bool                      `json:"quotes_available"`
	Entries         []RecycleBinEntryResponse `json:"entries"`
}

func FromRecycleBin(bin usecase.RecycleBin) RecycleBinResponse {
	out := RecycleBinResponse{
		RetentionDays:   bin.RetentionDays,
		QuotesAvailable: bin.QuotesAvailable,
		Entries:         make([]RecycleBinEntryResponse, 0, len(bin.Entries)),
	}
	for _, e := range bin.Entries {
		out.Entries = append(out.Entries, RecycleBinEntryResponse{
			Kind:          string(e.Kind),
			ID:            e.ID,
			Label:         e.Label,
			Detail:        e.Detail,
			DeletedAt:     e.DeletedAt,
			RemainingDays: e.RemainingDays,
			Urgent:        e.Urgent,
			PurgeEligible: e.PurgeEligible,
		})
	}
	return out
}
