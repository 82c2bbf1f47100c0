package domain

import "time"

// Ticket is one printable unit belonging to exactly one Sheet. Tickets
// are materialized lazily the first time a family's pack is opened for
// validation and live until the family is deleted.
type Ticket struct {
	Code        string     `json:"code"`
	SheetID     uint       `json:"sheet_id"`
	FamilyID    uint       `json:"family_id"`
	IsUsed      bool       `json:"is_used"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}
