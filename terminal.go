package progrow

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is the width used when the terminal size cannot be determined.
const DefaultWidth = 80

// TermWidth returns the width in characters of the terminal behind fd. A
// positive COLUMNS environment variable takes precedence. If fd is not a
// terminal or the lookup fails, DefaultWidth is returned.
func TermWidth(fd uintptr) int {
	if columns, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && columns > 0 {
		return columns
	}

	if !IsTerminal(fd) {
		return DefaultWidth
	}

	width, _, err := term.GetSize(int(fd))
	if !(width > 0) || err != nil {
		return DefaultWidth
	}

	return width
}

// StdoutWidth is TermWidth for os.Stdout.
func StdoutWidth() int {
	return TermWidth(os.Stdout.Fd())
}

// IsTerminal reports whether fd is an interactive terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
