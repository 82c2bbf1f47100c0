// Package serial hands out contiguous blocks of ticket serial numbers
// within a (level, year) partition. Serials are 4 digits, so a partition
// holds at most 9999 of them; an allocation that would cross that limit
// is refused in its entirety.
package serial

import (
	"errors"
	"fmt"
)

// Max is the highest serial number a partition can hold.
const Max = 9999

var ErrSpaceExhausted = errors.New("yearly ticket limit exceeded")

// Range is an inclusive block of serial numbers.
type Range struct {
	Start int
	End   int
}

func (r Range) Count() int {
	return r.End - r.Start + 1
}

// Allocate returns the next contiguous block of count serials after
// lastUsed. It never partially allocates: on overflow the partition
// state is untouched and the error names the shortfall.
func Allocate(lastUsed, count int) (Range, error) {
	if count <= 0 {
		return Range{}, fmt.Errorf("invalid serial count %d", count)
	}
	if lastUsed < 0 || lastUsed > Max {
		return Range{}, fmt.Errorf("invalid last used serial %d", lastUsed)
	}
	if lastUsed+count > Max {
		return Range{}, fmt.Errorf("%w: %d requested, %d available", ErrSpaceExhausted, count, Max-lastUsed)
	}

	return Range{Start: lastUsed + 1, End: lastUsed + count}, nil
}

// Split subdivides r into consecutive sub-ranges of size each, in
// order. r.Count() must be a multiple of size.
func Split(r Range, size int) ([]Range, error) {
	if size <= 0 || r.Count()%size != 0 {
		return nil, fmt.Errorf("range of %d serials does not divide into packs of %d", r.Count(), size)
	}

	ranges := make([]Range, 0, r.Count()/size)
	for start := r.Start; start <= r.End; start += size {
		ranges = append(ranges, Range{Start: start, End: start + size - 1})
	}

	return ranges, nil
}
