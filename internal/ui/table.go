package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Table is a boxed table whose first row is the header. RightAlign pads every
// cell on the left.
type Table struct {
	Rows       [][]string
	RightAlign bool
}

// Render writes the table to w.
func (t Table) Render(w io.Writer) error {
	table := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithRightAlignment(t.RightAlign).
		WithData(t.Rows)

	str, err := table.Srender()
	if err != nil {
		return errRenderTable.Wrap(err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// PrintTable writes rows as a left-aligned table to w.
func PrintTable(w io.Writer, rows [][]string) error {
	return Table{Rows: rows}.Render(w)
}
