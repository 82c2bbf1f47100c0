package render

import "strings"

// Code 39 linear barcode encoding. Every supported character maps to
// nine elements, five bars and four spaces alternating, each either
// narrow or wide. The table below spells each pattern as a string of
// 'n' and 'w' runes, bar first.
var code39Patterns = map[rune]string{
	'0': "nnnwwnwnn",
	'1': "wnnwnnnnw",
	'2': "nnwwnnnnw",
	'3': "wnwwnnnnn",
	'4': "nnnwwnnnw",
	'5': "wnnwwnnnn",
	'6': "nnwwwnnnn",
	'7': "nnnwnnwnw",
	'8': "wnnwnnwnn",
	'9': "nnwwnnwnn",
	'A': "wnnnnwnnw",
	'B': "nnwnnwnnw",
	'C': "wnwnnwnnn",
	'D': "nnnnwwnnw",
	'E': "wnnnwwnnn",
	'F': "nnwnwwnnn",
	'G': "nnnnnwwnw",
	'H': "wnnnnwwnn",
	'I': "nnwnnwwnn",
	'J': "nnnnwwwnn",
	'K': "wnnnnnnww",
	'L': "nnwnnnnww",
	'M': "wnwnnnnwn",
	'N': "nnnnwnnww",
	'O': "wnnnwnnwn",
	'P': "nnwnwnnwn",
	'Q': "nnnnnnwww",
	'R': "wnnnnnwwn",
	'S': "nnwnnnwwn",
	'T': "nnnnwnwwn",
	'U': "wwnnnnnnw",
	'V': "nwwnnnnnw",
	'W': "wwwnnnnnn",
	'X': "nwnnwnnnw",
	'Y': "wwnnwnnnn",
	'Z': "nwwnwnnnn",
	'-': "nwnnnnwnw",
	'.': "wwnnnnwnn",
	' ': "nwwnnnwnn",
	'$': "nwnwnwnnn",
	'/': "nwnwnnnwn",
	'+': "nwnnnwnwn",
	'%': "nnnwnwnwn",
	'*': "nwnnwnwnn", // start/stop sentinel, not encodable from input
}

const (
	code39NarrowWidth = 1
	code39WideWidth   = 3
	code39QuietZone   = 10

	// Code39Height is the nominal strip height. Bars carry no vertical
	// information, so renderers may stretch it freely.
	Code39Height = 40
)

// Code39Element is one bar or space of the encoded strip.
type Code39Element struct {
	Offset int
	Width  int
	Bar    bool
}

// Code39 is a fully laid-out barcode strip: an ordered element sequence
// plus the total width including both quiet zones.
type Code39 struct {
	Elements []Code39Element
	Width    int
}

// EncodeCode39 encodes text as a Code 39 strip. Input is uppercased and
// any character outside the supported alphabet is substituted with '-',
// so every input produces a valid barcode of the same character count.
func EncodeCode39(text string) Code39 {
	normalized := normalizeCode39(text)
	wrapped := "*" + normalized + "*"

	code := Code39{}
	offset := code39QuietZone
	for i, ch := range wrapped {
		if i > 0 {
			offset += code39NarrowWidth // inter-character gap
		}
		for j, unit := range code39Patterns[ch] {
			width := code39NarrowWidth
			if unit == 'w' {
				width = code39WideWidth
			}
			code.Elements = append(code.Elements, Code39Element{
				Offset: offset,
				Width:  width,
				Bar:    j%2 == 0,
			})
			offset += width
		}
	}

	code.Width = offset + code39QuietZone

	return code
}

func normalizeCode39(text string) string {
	var b strings.Builder
	for _, ch := range strings.ToUpper(text) {
		if _, ok := code39Patterns[ch]; !ok || ch == '*' {
			ch = '-'
		}
		b.WriteRune(ch)
	}

	return b.String()
}
