// Package rowfile reads progress rows from files and command-line arguments.
//
// A row file is YAML or JSON holding either a list of rows or a mapping with a
// "rows" key:
//
//	rows:
//	  - name: apple harvest
//	    current: 23
//	    maximum: 100
package rowfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pablasso/progrow"
)

// Stdin is the path that makes Load read from the given reader.
const Stdin = "-"

// Entry is a single row as written in a row file.
type Entry struct {
	Name    string  `yaml:"name"`
	Current float64 `yaml:"current"`
	Maximum float64 `yaml:"maximum"`
}

type document struct {
	Rows []Entry `yaml:"rows"`
}

// Decode reads every row from r. An empty document holds no rows.
func Decode(r io.Reader) ([]progrow.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read rows")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decode rows")
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var entries []Entry
	switch node := root.Content[0]; node.Kind {
	case yaml.SequenceNode:
		err = node.Decode(&entries)
	case yaml.MappingNode:
		var doc document
		err = node.Decode(&doc)
		entries = doc.Rows
	default:
		return nil, errors.Errorf("decode rows: line %d: expected a list of rows or a mapping with a rows key", node.Line)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode rows")
	}

	rows := make([]progrow.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, progrow.NewRow(e.Name, e.Current, e.Maximum))
	}
	return rows, nil
}

// Load reads rows from the file at path, or from stdin when path is Stdin.
func Load(path string, stdin io.Reader) ([]progrow.Row, error) {
	if path == Stdin {
		rows, err := Decode(stdin)
		return rows, errors.Wrap(err, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open row file")
	}
	defer f.Close()

	rows, err := Decode(f)
	return rows, errors.Wrapf(err, "row file %s", path)
}

// ParseError describes a malformed NAME=CURRENT/MAX argument.
type ParseError struct {
	Arg    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid row %q: %s (expected NAME=CURRENT/MAX)", e.Arg, e.Reason)
}

// ParseArg parses a NAME=CURRENT/MAX argument such as "apple harvest=23/100".
// The name may itself contain "="; numbers may use comma thousands separators.
func ParseArg(arg string) (progrow.Row, error) {
	i := strings.LastIndex(arg, "=")
	if i < 0 {
		return progrow.Row{}, &ParseError{Arg: arg, Reason: "missing ="}
	}

	name, value := arg[:i], arg[i+1:]
	current, maximum, ok := strings.Cut(value, "/")
	if !ok {
		return progrow.Row{}, &ParseError{Arg: arg, Reason: "missing /"}
	}

	c, err := parseNumber(current)
	if err != nil {
		return progrow.Row{}, &ParseError{Arg: arg, Reason: fmt.Sprintf("current %q is not a number", current)}
	}
	m, err := parseNumber(maximum)
	if err != nil {
		return progrow.Row{}, &ParseError{Arg: arg, Reason: fmt.Sprintf("maximum %q is not a number", maximum)}
	}

	return progrow.NewRow(name, c, m), nil
}

// ParseArgs parses each argument with ParseArg, stopping at the first error.
func ParseArgs(args []string) ([]progrow.Row, error) {
	rows := make([]progrow.Row, 0, len(args))
	for _, arg := range args {
		row, err := ParseArg(arg)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}
