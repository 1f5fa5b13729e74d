package progrow

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// ErrInvalidRange is returned when a row's percent cannot be computed because
// its maximum is zero.
var ErrInvalidRange = errors.New("invalid range")

//nolint:gochecknoglobals
var (
	nameColor     = newColor(color.FgYellow)
	barColor      = newColor(color.FgGreen)
	fractionColor = newColor(color.FgHiBlue)
	percentColor  = newColor(color.FgCyan)
)

// Segment is one rendered part of a row. Text may carry ANSI color codes; Len
// is always the length of the text without them.
type Segment struct {
	Text string
	Len  int
}

func (s Segment) String() string {
	return s.Text
}

// newColor returns a color that is always emitted. Whether to colorize at all
// is decided per render by the Style, not by fatih/color's global NoColor.
func newColor(attributes ...color.Attribute) *color.Color {
	c := color.New(attributes...)
	c.EnableColor()
	return c
}

func paint(c *color.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// padLeft right-justifies s within length runes. Longer strings are returned
// unchanged.
func padLeft(s string, length int) string {
	if n := runeLen(s); n < length {
		return strings.Repeat(" ", length-n) + s
	}
	return s
}

// lastRunes returns the trailing n runes of s.
func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// formatNumber renders v with comma thousands grouping and no trailing zeros,
// e.g. 1234 -> "1,234" and 1.5 -> "1.5".
func formatNumber(v float64) string {
	return humanize.Commaf(v)
}

// formatPercent floors ratio*100 and appends a percent sign. The value is
// never clamped, so 1.5 renders as "150%".
func formatPercent(ratio float64) string {
	p := math.Floor(ratio * 100)
	if p == 0 {
		p = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(p, 'f', 0, 64) + "%"
}
