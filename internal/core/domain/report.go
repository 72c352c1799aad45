package domain

import "time"

// Report is the persisted report definition. Only the name takes part in any
// logic here (uniqueness check); the SQL content is stored for the designer
// tooling and never executed by this service.
type Report struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SQLContent  string    `json:"sql_content"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
