// Package render produces the printable artifacts of a ticket sheet:
// an SVG page laying out every ticket cell, and the Code 39 strips
// embedded in them.
package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ticketwise/api/internal/domain"
)

const (
	cellWidth  = 180
	cellHeight = 120
	columns    = 3

	cellPadding    = 10
	logoWidth      = 104
	sidebarTextX   = 134
	sidebarStripX  = 170
	stripThickness = 24
)

// DefaultLogoDataURI is embedded as a fallback whenever no logo has
// been uploaded or the stored asset is not an image data URI.
const DefaultLogoDataURI = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHdpZHRoPSIxMjAiIGhlaWdodD0iODAiPjxyZWN0IHdpZHRoPSIxMjAiIGhlaWdodD0iODAiIGZpbGw9IiNlZGVkZWQiLz48dGV4dCB4PSI2MCIgeT0iNDUiIGZvbnQtZmFtaWx5PSJzYW5zLXNlcmlmIiBmb250LXNpemU9IjE0IiB0ZXh0LWFuY2hvcj0ibWlkZGxlIiBmaWxsPSIjODg4Ij5UaWNrZXRXaXNlPC90ZXh0Pjwvc3ZnPg=="

type Options struct {
	// Barcode additionally renders a Code 39 strip in each cell's
	// side bar, as shown in the interactive preview.
	Barcode bool
}

// Sheet writes a self-contained SVG document with one cell per ticket
// of the sheet. Rendering never fails: a missing or non-image logo
// falls back to the embedded placeholder.
func Sheet(w io.Writer, sheet domain.Sheet, logoDataURI string, opts Options) {
	if !strings.HasPrefix(logoDataURI, "data:image/") {
		logoDataURI = DefaultLogoDataURI
	}

	packSize := int(sheet.PackSize)
	rows := (packSize + columns - 1) / columns

	canvas := svg.New(w)
	canvas.Start(columns*cellWidth, rows*cellHeight)

	for i := 0; i < packSize; i++ {
		row, col := i/columns, i%columns
		x, y := col*cellWidth, row*cellHeight
		code := domain.TicketCode(sheet.Level, sheet.Year, sheet.StartNumber+i)

		drawCell(canvas, x, y, code, logoDataURI, opts)
	}

	canvas.End()
}

func drawCell(canvas *svg.SVG, x, y int, code, logoDataURI string, opts Options) {
	// Dashed cut guide around the whole cell.
	canvas.Rect(x, y, cellWidth, cellHeight,
		"fill:none;stroke:#9ca3af;stroke-width:1;stroke-dasharray:6,4")

	canvas.Image(x+cellPadding, y+cellPadding, logoWidth, cellHeight-2*cellPadding, logoDataURI)

	// Human-readable code, rotated along the side bar.
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(90)", x+sidebarTextX, y+cellPadding+2))
	canvas.Text(0, 0, code, "font-family:monospace;font-size:12px;fill:#111827")
	canvas.Gend()

	if opts.Barcode {
		drawBarcode(canvas, x+sidebarStripX, y+cellPadding+2, cellHeight-2*cellPadding-4, code)
	}
}

// drawBarcode lays a Code 39 strip down the side bar. The strip is
// drawn at its natural unit widths and scaled to the available length;
// the cross-axis carries no encoding, so non-uniform scale is fine.
func drawBarcode(canvas *svg.SVG, x, y, length int, code string) {
	encoded := EncodeCode39(code)
	scale := float64(length) / float64(encoded.Width)

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(90) scale(%.4f,1)", x, y, scale))
	for _, el := range encoded.Elements {
		if !el.Bar {
			continue
		}
		canvas.Rect(el.Offset, 0, el.Width, stripThickness, "fill:#111827")
	}
	canvas.Gend()
}
