package progrow

import "math"

// glyphStep is the fill covered by each partial block.
const glyphStep = 1.0 / 7

// Empty is the glyph for a cell with no fill.
const Empty = ' '

// Full is the glyph for a completely filled cell.
const Full = '█'

// partialBlocks runs from the lightest left-partial block up to the full block.
var partialBlocks = [...]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', Full}

// Glyph maps the fill of a single bar cell to a block character. Zero (or
// less) fills with a space, one (or more) with a full block, and anything in
// between with one of the seven partial blocks.
func Glyph(fill float64) rune {
	if !(fill > 0) {
		return Empty
	}
	if fill >= 1 {
		return Full
	}

	i := int(math.Floor(fill / glyphStep))
	if i >= len(partialBlocks) {
		i = len(partialBlocks) - 1
	}
	return partialBlocks[i]
}

// IsGlyph reports whether r is one of the symbols Glyph can return.
func IsGlyph(r rune) bool {
	if r == Empty {
		return true
	}
	for _, b := range partialBlocks {
		if r == b {
			return true
		}
	}
	return false
}
