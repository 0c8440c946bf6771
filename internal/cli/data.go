package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/errors"
)

// loadTable reads a CSV file, or stdin for "-".
func loadTable(path string) (*column.Table, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
		}
		defer f.Close()
		r = f
	}
	t, err := column.ReadCSV(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return t, nil
}

// interactive reports whether columns may be picked with the TUI.
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// columnRequest names a column to resolve. An empty name is picked
// interactively, or rejected when no terminal is attached.
type columnRequest struct {
	flag   string // flag that names the column, for error messages
	name   string
	prompt string
}

// resolveColumns looks up the requested columns in t. On error, columns
// already resolved are released.
func resolveColumns(t *column.Table, reqs ...columnRequest) ([]*column.Column, error) {
	cols := make([]*column.Column, 0, len(reqs))
	for _, req := range reqs {
		c, err := resolveColumn(t, req)
		if err != nil {
			for _, c := range cols {
				c.Release()
			}
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func resolveColumn(t *column.Table, req columnRequest) (*column.Column, error) {
	name := req.name
	if name == "" {
		if !interactive() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--%s is required when not running in a terminal", req.flag)
		}
		picked, err := pickColumn(t, req.prompt)
		if err != nil {
			return nil, err
		}
		name = picked
	}
	c, ok := t.Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"no column %q (available: %v)", name, t.Names())
	}
	return c, nil
}

// describeColumn formats a column for display, e.g. "age (numeric, 120 rows)".
func describeColumn(c *column.Column) string {
	return fmt.Sprintf("%s (%s, %d rows)", c.Name(), c.Kind(), c.Len())
}
