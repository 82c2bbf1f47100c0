package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		lastUsed int
		count    int
		want     Range
		wantErr  bool
	}{
		{
			name:     "first allocation starts at 1",
			lastUsed: 0,
			count:    24,
			want:     Range{Start: 1, End: 24},
		},
		{
			name:     "continues after last used",
			lastUsed: 24,
			count:    24,
			want:     Range{Start: 25, End: 48},
		},
		{
			name:     "fills the partition exactly",
			lastUsed: 9975,
			count:    24,
			want:     Range{Start: 9976, End: 9999},
		},
		{
			name:     "single serial",
			lastUsed: 41,
			count:    1,
			want:     Range{Start: 42, End: 42},
		},
		{
			name:     "zero count rejected",
			lastUsed: 0,
			count:    0,
			wantErr:  true,
		},
		{
			name:     "negative last used rejected",
			lastUsed: -1,
			count:    12,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.lastUsed, tt.count)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count, got.Count())
		})
	}
}

func TestAllocate_Overflow(t *testing.T) {
	tests := []struct {
		name     string
		lastUsed int
		count    int
	}{
		{"one past the limit", 9976, 24},
		{"far past the limit", 9999, 1},
		{"oversized batch", 0, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.lastUsed, tt.count)

			require.ErrorIs(t, err, ErrSpaceExhausted)
			assert.Zero(t, got, "no partial range on overflow")
		})
	}
}

func TestAllocate_BlocksAreContiguousAndDisjoint(t *testing.T) {
	lastUsed := 0
	var ranges []Range
	for i := 0; i < 10; i++ {
		r, err := Allocate(lastUsed, 48)
		require.NoError(t, err)

		ranges = append(ranges, r)
		lastUsed = r.End
	}

	for i := 1; i < len(ranges); i++ {
		assert.Equal(t, ranges[i-1].End+1, ranges[i].Start, "block %d must start right after block %d", i, i-1)
	}
	assert.Equal(t, 480, ranges[len(ranges)-1].End)
}

func TestSplit(t *testing.T) {
	ranges, err := Split(Range{Start: 25, End: 72}, 24)
	require.NoError(t, err)

	require.Len(t, ranges, 2)
	assert.Equal(t, Range{Start: 25, End: 48}, ranges[0])
	assert.Equal(t, Range{Start: 49, End: 72}, ranges[1])
}

func TestSplit_IndivisibleRange(t *testing.T) {
	_, err := Split(Range{Start: 1, End: 30}, 24)

	require.Error(t, err)
}

func TestSplit_WholeRangeAsOnePack(t *testing.T) {
	ranges, err := Split(Range{Start: 1, End: 12}, 12)
	require.NoError(t, err)

	require.Len(t, ranges, 1)
	assert.Equal(t, Range{Start: 1, End: 12}, ranges[0])
}
