package progrow

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// Row is a single named progress entity. To render several aligned rows, use
// Rows instead.
type Row struct {
	// Name labels the row.
	Name string
	// Current is the progress so far, e.g. 3 when 3 of 7 units are done.
	Current float64
	// Maximum is the total, e.g. 7 when 3 of 7 units are done.
	Maximum float64
}

// NewRow creates a new Row.
func NewRow(name string, current, maximum float64) Row {
	return Row{Name: name, Current: current, Maximum: maximum}
}

// Percent returns the progress as a ratio, e.g. 0.5 for 5 of 10. It is not
// clamped: a Current beyond Maximum yields more than 1.
func (r Row) Percent() (float64, error) {
	if r.Maximum == 0 {
		return 0, fmt.Errorf("row %q has a maximum of 0: %w", r.Name, ErrInvalidRange)
	}
	return (1.0 / r.Maximum) * r.Current, nil
}

// Render renders the row as a single line of style.Width() characters, less
// any trailing whitespace. A nil layout reserves nothing; a nil style is
// NewStyle().
func (r Row) Render(layout *Layout, style *Style) (string, error) {
	if layout == nil {
		layout = &Layout{}
	}
	if style == nil {
		style = NewStyle()
	}

	percent, err := r.Percent()
	if err != nil {
		return "", err
	}
	if percent < 0 || percent > 1 {
		style.Logger().WithFields(logrus.Fields{
			"row":     r.Name,
			"percent": percent,
		}).Warn("progress is outside of 0-100%, the bar is clamped")
	}

	name := r.RenderName(style.Color(), style.NameSuffix(), layout.NameLength)

	var fraction Segment
	if style.ShowFraction() {
		fraction = r.RenderFraction(
			style.Color(),
			style.FractionPrefix(),
			style.FractionSeparator(),
			layout.LeftFractionLength,
			layout.RightFractionLength,
		)
	}

	var pc Segment
	if style.ShowPercent() {
		if pc, err = r.RenderPercent(style.Color(), style.PercentPrefix(), layout.PercentLength); err != nil {
			return "", err
		}
	}

	width := style.Width()
	barLength := width - name.Len - fraction.Len - pc.Len
	if barLength <= 0 {
		style.Logger().WithFields(logrus.Fields{
			"row":   r.Name,
			"width": width,
		}).Debug("no room left for the bar")
	}

	bar, err := r.RenderBar(style.Color(), barLength)
	if err != nil {
		return "", err
	}

	line := name.Text + bar.Text + fraction.Text + pc.Text
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

// RenderName renders the name followed by suffix. With a positive length, the
// result is exactly length characters: the suffix is cut first, then the name,
// and any shortfall is padded with spaces. Only the name is colored.
func (r Row) RenderName(color bool, suffix string, length int) Segment {
	name := []rune(r.Name)
	suf := []rune(suffix)

	if length > 0 && len(name)+len(suf) > length {
		if len(name) < length {
			suf = suf[:length-len(name)]
		} else {
			name = name[:length]
			suf = nil
		}
	}

	text := paint(nameColor, string(name), color) + string(suf)
	n := len(name) + len(suf)

	if length > 0 {
		text += strings.Repeat(" ", length-n)
		n = length
	}

	return Segment{Text: text, Len: n}
}

// RenderLeftFraction renders Current with thousands separators, right-justified
// to length.
func (r Row) RenderLeftFraction(color bool, length int) Segment {
	return renderNumber(r.Current, color, length)
}

// RenderRightFraction renders Maximum with thousands separators,
// right-justified to length.
func (r Row) RenderRightFraction(color bool, length int) Segment {
	return renderNumber(r.Maximum, color, length)
}

func renderNumber(v float64, color bool, length int) Segment {
	s := padLeft(formatNumber(v), length)
	return Segment{Text: paint(fractionColor, s, color), Len: runeLen(s)}
}

// RenderFraction renders prefix, the current value, separator and the maximum
// value, with each value right-justified to its own length.
func (r Row) RenderFraction(color bool, prefix, separator string, leftLength, rightLength int) Segment {
	left := r.RenderLeftFraction(color, leftLength)
	right := r.RenderRightFraction(color, rightLength)

	return Segment{
		Text: prefix + left.Text + separator + right.Text,
		Len:  runeLen(prefix) + left.Len + runeLen(separator) + right.Len,
	}
}

// RenderPercent renders prefix and the floored percentage. A positive length
// covers the prefix too; the percentage is right-justified in what remains,
// keeping its last characters if it does not fit.
func (r Row) RenderPercent(color bool, prefix string, length int) (Segment, error) {
	percent, err := r.Percent()
	if err != nil {
		return Segment{}, err
	}

	s := formatPercent(percent)
	if length > 0 {
		pad := length - runeLen(prefix)
		s = padLeft(lastRunes(s, pad), pad)
	}

	return Segment{
		Text: prefix + paint(percentColor, s, color),
		Len:  runeLen(prefix) + runeLen(s),
	}, nil
}
