package entities

import "time"

// Client owns cases, standalone procedures and client documents.
//
// Storage model (DynamoDB):
//   - PK: id
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	TaxID     string     `json:"tax_id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (c Client) IsActive() bool { return c.DeletedAt == nil }
