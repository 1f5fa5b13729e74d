package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/pablasso/progrow"
)

// envPrefix is prepended to every environment variable read by loadConfig.
const envPrefix = "progrow"

// Config holds render settings read from PROGROW_* environment variables.
// Command-line flags override them.
type Config struct {
	Width      int       `envconfig:"WIDTH"`
	Color      ColorMode `envconfig:"COLOR" default:"auto"`
	NameSuffix string    `envconfig:"NAME_SUFFIX" default:" "`
	Fraction   bool      `envconfig:"FRACTION"`
	Percent    bool      `envconfig:"PERCENT"`
	Verbose    bool      `envconfig:"VERBOSE"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Width < 0 {
		return Config{}, fmt.Errorf("width must not be negative, got %d", cfg.Width)
	}
	return cfg, nil
}

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Decode implements envconfig.Decoder.
func (m *ColorMode) Decode(value string) error {
	parsed, err := ParseColorMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Enabled reports whether output written to w should be colored. In auto mode
// that means w is a terminal, NO_COLOR is unset and TERM is not "dumb".
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fdWriter)
	return ok && progrow.IsTerminal(f.Fd())
}

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// writerWidth is the terminal width behind w, or the default width when w is
// not a file.
func writerWidth(w io.Writer) int {
	if f, ok := w.(fdWriter); ok {
		return progrow.TermWidth(f.Fd())
	}
	return progrow.DefaultWidth
}
