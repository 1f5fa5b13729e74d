package progrow

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Rows is an ordered collection of rows rendered with shared column widths.
type Rows struct {
	rows []Row
}

// NewRows creates a collection holding a copy of rows.
func NewRows(rows ...Row) *Rows {
	return &Rows{rows: append([]Row(nil), rows...)}
}

// Append adds a new row to the end of the collection.
func (rs *Rows) Append(name string, current, maximum float64) {
	rs.rows = append(rs.rows, NewRow(name, current, maximum))
}

// Add adds rows to the end of the collection.
func (rs *Rows) Add(rows ...Row) {
	rs.rows = append(rs.rows, rows...)
}

// Len returns the number of rows.
func (rs *Rows) Len() int {
	return len(rs.rows)
}

// All returns a copy of the rows in insertion order.
func (rs *Rows) All() []Row {
	return append([]Row(nil), rs.rows...)
}

// CalculateLayout measures every row without color and returns the layout
// that fits them all. It fails on the first row whose percent is undefined.
func (rs *Rows) CalculateLayout(style *Style) (Layout, error) {
	if style == nil {
		style = NewStyle()
	}

	var layout Layout
	for _, row := range rs.rows {
		if _, err := row.Percent(); err != nil {
			return Layout{}, err
		}

		layout.ConsiderName(row.RenderName(false, style.NameSuffix(), 0).Len)

		if style.ShowFraction() {
			layout.ConsiderLeftFraction(row.RenderLeftFraction(false, 0).Len)
			layout.ConsiderRightFraction(row.RenderRightFraction(false, 0).Len)
		}

		if style.ShowPercent() {
			pc, err := row.RenderPercent(false, style.PercentPrefix(), 0)
			if err != nil {
				return Layout{}, err
			}
			layout.ConsiderPercent(pc.Len)
		}
	}

	return layout, nil
}

// Render renders every row with a shared layout, one per line.
func (rs *Rows) Render(style *Style) (string, error) {
	if style == nil {
		style = NewStyle()
	}
	style = style.pinned()

	layout, err := rs.CalculateLayout(style)
	if err != nil {
		return "", err
	}

	style.Logger().WithFields(logrus.Fields{
		"rows":   len(rs.rows),
		"width":  style.Width(),
		"layout": fmt.Sprintf("%+v", layout),
	}).Debug("rendering rows")

	lines := make([]string, len(rs.rows))
	var g errgroup.Group
	for i, row := range rs.rows {
		i, row := i, row
		g.Go(func() error {
			line, err := row.Render(&layout, style)
			if err != nil {
				return err
			}
			lines[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace), nil
}

// Fprint renders the rows to w followed by a newline. Nothing is written for
// an empty collection.
func (rs *Rows) Fprint(w io.Writer, style *Style) error {
	out, err := rs.Render(style)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
