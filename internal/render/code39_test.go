package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCode39_Layout(t *testing.T) {
	code := EncodeCode39("P-250001")

	// 10 characters once wrapped in the start/stop sentinels, 9 elements
	// each.
	require.Len(t, code.Elements, 10*9)

	// Every character is 6 narrow + 3 wide elements, 15 units. With the
	// nine 1-unit inter-character gaps and both quiet zones the strip is
	// 10*15 + 9 + 2*10 = 179 units wide.
	assert.Equal(t, 179, code.Width)

	first := code.Elements[0]
	assert.Equal(t, code39QuietZone, first.Offset, "strip starts after the quiet zone")
	assert.True(t, first.Bar, "elements alternate starting with a bar")

	last := code.Elements[len(code.Elements)-1]
	assert.Equal(t, code.Width-code39QuietZone, last.Offset+last.Width, "strip ends before the trailing quiet zone")
}

func TestEncodeCode39_ElementsAlternateAndAbut(t *testing.T) {
	code := EncodeCode39("K-250042")

	for i, el := range code.Elements {
		within := i % 9
		if within > 0 {
			prev := code.Elements[i-1]
			assert.Equal(t, prev.Bar, !el.Bar, "element %d must alternate bar/space", i)
			assert.Equal(t, prev.Offset+prev.Width, el.Offset, "element %d must abut its predecessor", i)
		} else if i > 0 {
			prev := code.Elements[i-1]
			assert.Equal(t, prev.Offset+prev.Width+1, el.Offset, "character at element %d must sit after a 1-unit gap", i)
		}

		if el.Width != code39NarrowWidth {
			assert.Equal(t, code39WideWidth, el.Width, "element %d must be narrow or wide", i)
		}
	}
}

func TestEncodeCode39_EachCharacterHasThreeWideElements(t *testing.T) {
	code := EncodeCode39("A-990001")

	for char := 0; char < len(code.Elements)/9; char++ {
		wide := 0
		for _, el := range code.Elements[char*9 : char*9+9] {
			if el.Width == code39WideWidth {
				wide++
			}
		}
		assert.Equal(t, 3, wide, "character %d must have exactly 3 wide elements", char)
	}
}

func TestEncodeCode39_Normalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase is uppercased", "p-25", "P-25"},
		{"unsupported runes become dashes", "ab#€", "AB--"},
		{"sentinel in input becomes dash", "a*b", "A-B"},
		{"supported punctuation kept", "A. B/C", "A. B/C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCode39(tt.in))
		})
	}
}

func TestEncodeCode39_SameLengthInputsSameWidth(t *testing.T) {
	a := EncodeCode39("P-250001")
	b := EncodeCode39("M-999999")

	assert.Equal(t, a.Width, b.Width, "equal-length inputs must produce equal-width strips")
}

func TestEncodeCode39_EmptyInput(t *testing.T) {
	code := EncodeCode39("")

	// Just the two sentinels.
	require.Len(t, code.Elements, 2*9)
	assert.Equal(t, 2*15+1+2*code39QuietZone, code.Width)
}
