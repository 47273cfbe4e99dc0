package dto

import "time"

// SessionRecord is a saved selection blob with bookkeeping fields.
type SessionRecord struct {
	ID        string        `json:"id"`
	Blob      SelectionBlob `json:"blob"`
	SavedAt   time.Time     `json:"saved_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
