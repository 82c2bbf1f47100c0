package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketwise/api/internal/domain"
)

func testSheet(packSize domain.PackSize) domain.Sheet {
	return domain.Sheet{
		ID:             1,
		Level:          domain.LevelPrimary,
		PackSize:       packSize,
		StartNumber:    25,
		EndNumber:      25 + int(packSize) - 1,
		Year:           25,
		GenerationDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestSheet_OneCellPerTicket(t *testing.T) {
	var buf bytes.Buffer
	Sheet(&buf, testSheet(domain.PackSizeMedium), DefaultLogoDataURI, Options{})

	out := buf.String()
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "</svg>")

	// One logo image per cell.
	assert.Equal(t, 24, strings.Count(out, "<image"))

	// Every ticket code appears exactly once, in order of serial.
	for serial := 25; serial <= 48; serial++ {
		code := domain.TicketCode(domain.LevelPrimary, 25, serial)
		assert.Equal(t, 1, strings.Count(out, ">"+code+"<"), "code %s must appear exactly once", code)
	}
}

func TestSheet_GridDimensions(t *testing.T) {
	tests := []struct {
		name     string
		packSize domain.PackSize
		rows     int
	}{
		{"12 tickets on 4 rows", domain.PackSizeSmall, 4},
		{"24 tickets on 8 rows", domain.PackSizeMedium, 8},
		{"48 tickets on 16 rows", domain.PackSizeLarge, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Sheet(&buf, testSheet(tt.packSize), DefaultLogoDataURI, Options{})

			out := buf.String()
			assert.Contains(t, out, `width="540"`)
			assert.Contains(t, out, `height="`+strconv.Itoa(tt.rows*cellHeight)+`"`)
		})
	}
}

func TestSheet_LogoFallback(t *testing.T) {
	tests := []struct {
		name string
		logo string
	}{
		{"empty logo", ""},
		{"non-image data URI", "data:text/plain;base64,aGk="},
		{"arbitrary URL", "https://example.com/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Sheet(&buf, testSheet(domain.PackSizeSmall), tt.logo, Options{})

			assert.Contains(t, buf.String(), DefaultLogoDataURI, "renderer must fall back to the embedded placeholder")
		})
	}
}

func TestSheet_CustomLogoKept(t *testing.T) {
	logo := "data:image/png;base64,iVBORw0KGgo="

	var buf bytes.Buffer
	Sheet(&buf, testSheet(domain.PackSizeSmall), logo, Options{})

	assert.Contains(t, buf.String(), logo)
	assert.NotContains(t, buf.String(), DefaultLogoDataURI)
}

func TestSheet_BarcodeOption(t *testing.T) {
	var plain, coded bytes.Buffer
	Sheet(&plain, testSheet(domain.PackSizeSmall), DefaultLogoDataURI, Options{})
	Sheet(&coded, testSheet(domain.PackSizeSmall), DefaultLogoDataURI, Options{Barcode: true})

	assert.NotContains(t, plain.String(), "scale(")
	assert.Contains(t, coded.String(), "scale(")
	assert.Greater(t, strings.Count(coded.String(), "<rect"), strings.Count(plain.String(), "<rect"),
		"barcode bars must add rects beyond the cut guides")
}
