package report

import (
	"bufio"
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// Stats holds the parsed sections of one or more `bcftools stats` outputs,
// keyed by the two-to-four letter section code ("SN", "TSTV", ...).  Each
// section table carries a leading "sample" column naming the originating
// file.
type Stats struct {
	sections map[string]*Table
}

var columnIndexRE = regexp.MustCompile(`^\[\d+\]`)

// LoadBCFStats parses bcftools stats text outputs, one per sample.  The
// sample label is the file's base name with its extension removed.
//
// The format interleaves section header comments of the form
// "# SN\t[2]id\t[3]key\t[4]value" with data rows prefixed by the section
// code; all other comment lines are ignored.
func LoadBCFStats(ctx context.Context, paths []string) (*Stats, error) {
	stats := &Stats{sections: map[string]*Table{}}
	for _, path := range paths {
		if err := stats.loadOne(ctx, path); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (s *Stats) loadOne(ctx context.Context, path string) (err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	sample := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sc := bufio.NewScanner(in.Reader(ctx))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			s.parseSectionHeader(line)
			continue
		}
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		sec, ok := s.sections[fields[0]]
		if !ok {
			// Data before any section header (e.g. the ID block of
			// some bcftools versions); skipped like ezcharts does.
			continue
		}
		if len(fields) != len(sec.Columns) {
			return errors.Errorf("%s: %s row has %d fields, want %d",
				path, fields[0], len(fields), len(sec.Columns))
		}
		row := append([]string{sample}, fields[1:]...)
		sec.Rows = append(sec.Rows, row)
	}
	return sc.Err()
}

// parseSectionHeader registers a section's column names from a comment like
// "# TSTV\t[2]id\t[3]ts\t[4]tv".  Repeated headers (one per input file) keep
// the first registration.
func (s *Stats) parseSectionHeader(line string) {
	cells := strings.Split(strings.TrimPrefix(line, "# "), "\t")
	if len(cells) < 2 || !strings.HasPrefix(cells[1], "[") {
		return
	}
	name := strings.TrimSuffix(cells[0], ",")
	if _, ok := s.sections[name]; ok {
		return
	}
	cols := []string{"sample"}
	for _, c := range cells[1:] {
		cols = append(cols, columnIndexRE.ReplaceAllString(c, ""))
	}
	// Columns here include the section-code cell position, so a data row
	// ("TSTV\t0\t...") lines up field for field.
	s.sections[name] = &Table{Columns: cols}
}

// Section returns the named section, or nil if no input contained it.
func (s *Stats) Section(name string) *Table {
	return s.sections[name]
}

// VariantCounts pivots the SN summary-numbers section into one row per
// sample, one column per counter ("records", "SNPs", "indels", ...).  The
// "samples" counter is dropped, matching the report's variant counts table.
func (s *Stats) VariantCounts() (*Table, error) {
	sn := s.Section("SN")
	if sn == nil {
		return nil, errors.New("bcftools stats output has no SN section")
	}
	keyCol, valCol := sn.Col("key"), sn.Col("value")
	if keyCol < 0 || valCol < 0 {
		return nil, errors.New("SN section lacks key/value columns")
	}
	out := &Table{Columns: []string{"sample"}}
	colIndex := map[string]int{}
	rowIndex := map[string]int{}
	for _, row := range sn.Rows {
		sample := row[0]
		counter := strings.TrimSuffix(strings.TrimPrefix(row[keyCol], "number of "), ":")
		ri, ok := rowIndex[sample]
		if !ok {
			ri = len(out.Rows)
			rowIndex[sample] = ri
			out.Rows = append(out.Rows, []string{sample})
		}
		ci, ok := colIndex[counter]
		if !ok {
			ci = len(out.Columns)
			colIndex[counter] = ci
			out.Columns = append(out.Columns, counter)
		}
		for len(out.Rows[ri]) <= ci {
			out.Rows[ri] = append(out.Rows[ri], "")
		}
		out.Rows[ri][ci] = row[valCol]
	}
	for i := range out.Rows {
		for len(out.Rows[i]) < len(out.Columns) {
			out.Rows[i] = append(out.Rows[i], "")
		}
	}
	return out.DropColumn("samples"), nil
}

// Transitions returns the TSTV transitions/transversions section.
func (s *Stats) Transitions() (*Table, error) {
	tstv := s.Section("TSTV")
	if tstv == nil {
		return nil, errors.New("bcftools stats output has no TSTV section")
	}
	return tstv, nil
}
