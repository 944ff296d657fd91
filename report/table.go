// Package report assembles the tabular and graphical sections of the clone
// validation report: per-sample read counts, variant and transition counts
// from bcftools stats output, sample status tidying, and assembly summaries.
// Charts are go-echarts values; tables are small in-memory column/row sets
// that can be written as TSV.
package report

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// A Table is one rectangular report section: named columns plus string-valued
// rows.  Tables are small (one row per sample or per assembled sequence) and
// live only for the duration of one report build.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Col returns the index of the named column, or -1.
func (t *Table) Col(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// DropColumn returns a copy of the table without the named column.  Dropping
// an absent column is a no-op.
func (t *Table) DropColumn(name string) *Table {
	i := t.Col(name)
	if i < 0 {
		return t
	}
	out := &Table{Columns: make([]string, 0, len(t.Columns)-1)}
	out.Columns = append(out.Columns, t.Columns[:i]...)
	out.Columns = append(out.Columns, t.Columns[i+1:]...)
	for _, row := range t.Rows {
		r := make([]string, 0, len(row)-1)
		r = append(r, row[:i]...)
		r = append(r, row[i+1:]...)
		out.Rows = append(out.Rows, r)
	}
	return out
}

// WriteTSV writes the table, header row first.
func (t *Table) WriteTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	for _, c := range t.Columns {
		out.WriteString(c)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			out.WriteString(cell)
		}
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
