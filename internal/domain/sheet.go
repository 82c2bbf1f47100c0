package domain

import (
	"fmt"
	"time"
)

type Sheet struct {
	ID             uint      `json:"id"`
	Level          Level     `json:"level"`
	PackSize       PackSize  `json:"pack_size"`
	StartNumber    int       `json:"start_number"`
	EndNumber      int       `json:"end_number"`
	Year           int       `json:"year"`
	IsAssigned     bool      `json:"is_assigned"`
	FamilyID       *uint     `json:"family_id,omitempty"`
	Downloads      int       `json:"downloads"`
	GenerationDate time.Time `json:"generation_date"`
}

// TicketCode composes the human-readable code printed on each ticket,
// e.g. "P-250001" for level P, year 25, serial 1.
func TicketCode(level Level, year, serial int) string {
	return fmt.Sprintf("%s-%02d%04d", level, year, serial)
}

// YearOf reduces a timestamp to the 2-digit year that partitions the
// serial space. Ticket codes always use the year of the sheet's
// generation date, never the current clock, so codes keep matching the
// printed sheets no matter when tickets are materialized.
func YearOf(t time.Time) int {
	return t.Year() % 100
}

// ExportFilename names the SVG artifact offered for download.
func (s Sheet) ExportFilename() string {
	return fmt.Sprintf("sheet-%s-%d.svg", s.Level, s.StartNumber)
}
