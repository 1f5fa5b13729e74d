package progrow

import (
	"math"
	"strings"
)

// RenderBar renders length cells filled left to right in proportion to the
// row's percent. Whole cells are consumed first and the remainder goes to the
// last partially filled cell, e.g. "███▌   ". A non-positive length renders
// nothing.
func (r Row) RenderBar(color bool, length int) (Segment, error) {
	if length <= 0 {
		return Segment{}, nil
	}

	percent, err := r.Percent()
	if err != nil {
		return Segment{}, err
	}

	perCell := 1.0 / float64(length)
	remaining := percent

	var b strings.Builder
	b.Grow(length * len(string(Full)))
	for i := 0; i < length; i++ {
		fill := math.Min(1.0, (1.0/perCell)*remaining)
		remaining -= math.Min(remaining, perCell)
		b.WriteRune(Glyph(fill))
	}

	return Segment{Text: paint(barColor, b.String(), color), Len: length}, nil
}
