package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicketCode(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		year   int
		serial int
		want   string
	}{
		{"serial is zero padded to 4 digits", LevelPrimary, 25, 1, "P-250001"},
		{"year is zero padded to 2 digits", LevelKindergarten, 7, 42, "K-070042"},
		{"max serial", LevelAdult, 25, 9999, "A-259999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TicketCode(tt.level, tt.year, tt.serial))
		})
	}
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 25, YearOf(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, 7, YearOf(time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSheetExportFilename(t *testing.T) {
	sheet := Sheet{Level: LevelPrimary, StartNumber: 25}

	assert.Equal(t, "sheet-P-25.svg", sheet.ExportFilename())
}

func TestLevelAndPackSizeValidity(t *testing.T) {
	for _, level := range Levels {
		assert.True(t, level.IsValid())
	}
	assert.False(t, Level("X").IsValid())
	assert.False(t, Level("p").IsValid())

	for _, size := range PackSizes {
		assert.True(t, size.IsValid())
	}
	assert.False(t, PackSize(36).IsValid())
}
