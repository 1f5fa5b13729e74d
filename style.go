package progrow

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultNameSuffix is appended to every row name unless overridden.
	DefaultNameSuffix = " "

	fractionPrefix    = " "
	fractionSeparator = " / "
	percentPrefix     = " "
	// percentAfterFraction separates the percent from a preceding fraction.
	percentAfterFraction = " • "
)

// Style holds the options for a render. A Style is not modified by rendering
// and may be shared between goroutines.
type Style struct {
	color        bool
	nameSuffix   string
	showFraction bool
	showPercent  bool
	width        int
	termWidth    func() int
	logger       logrus.FieldLogger
}

// StyleOption is used for helper functions that modify the style, in NewStyle.
type StyleOption func(*Style)

// WithColor enables or disables ANSI colors.
func WithColor(enabled bool) StyleOption {
	return func(s *Style) { s.color = enabled }
}

// WithNameSuffix sets the text appended after each row name.
func WithNameSuffix(suffix string) StyleOption {
	return func(s *Style) { s.nameSuffix = suffix }
}

// WithFraction toggles the "current / maximum" segment.
func WithFraction(show bool) StyleOption {
	return func(s *Style) { s.showFraction = show }
}

// WithPercent toggles the percentage segment.
func WithPercent(show bool) StyleOption {
	return func(s *Style) { s.showPercent = show }
}

// WithWidth forces the total line width. Zero or less means the terminal width
// is used instead.
func WithWidth(width int) StyleOption {
	return func(s *Style) { s.width = width }
}

// WithTermWidth replaces the terminal width lookup used when no width is
// forced.
func WithTermWidth(termWidth func() int) StyleOption {
	return func(s *Style) { s.termWidth = termWidth }
}

// WithLogger sets the logger that receives render diagnostics.
func WithLogger(logger logrus.FieldLogger) StyleOption {
	return func(s *Style) { s.logger = logger }
}

// NewStyle creates a style with colors on, a single-space name suffix, no
// fraction or percent, and the width of the terminal attached to stdout.
func NewStyle(options ...StyleOption) *Style {
	s := &Style{
		color:      true,
		nameSuffix: DefaultNameSuffix,
		termWidth:  StdoutWidth,
	}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	if s.termWidth == nil {
		s.termWidth = StdoutWidth
	}
	return s
}

// Color reports whether to render with ANSI colors.
func (s *Style) Color() bool { return s.color }

// NameSuffix is the text appended after each row name.
func (s *Style) NameSuffix() string { return s.nameSuffix }

// ShowFraction reports whether to include the fraction segment.
func (s *Style) ShowFraction() bool { return s.showFraction }

// ShowPercent reports whether to include the percent segment.
func (s *Style) ShowPercent() bool { return s.showPercent }

// FractionPrefix is rendered before the fraction.
func (s *Style) FractionPrefix() string { return fractionPrefix }

// FractionSeparator is rendered between the current and maximum values.
func (s *Style) FractionSeparator() string { return fractionSeparator }

// PercentPrefix is rendered before the percentage. It carries a bullet when
// the fraction is shown.
func (s *Style) PercentPrefix() string {
	if s.showFraction {
		return percentAfterFraction
	}
	return percentPrefix
}

// Width is the total width to render to: the forced width if one was set,
// otherwise the terminal width.
func (s *Style) Width() int {
	if s.width > 0 {
		return s.width
	}
	return s.termWidth()
}

// Logger returns the diagnostics logger. It is never nil.
func (s *Style) Logger() logrus.FieldLogger { return s.logger }

// pinned returns a copy of s with the width resolved, so that a multi-row
// render queries the terminal once.
func (s *Style) pinned() *Style {
	c := *s
	c.width = s.Width()
	return &c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
