package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/egar360/wf-clone-validation/encoding/fasta"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// AssemblySummary reads a final assembly FASTA and returns one row per
// assembled sequence: name, length, and GC fraction.
func AssemblySummary(ctx context.Context, path string) (tbl *Table, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	fa, err := fasta.New(in.Reader(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "read assembly %s", path)
	}
	tbl = &Table{Columns: []string{"Sequence", "Length", "GC"}}
	for _, name := range fa.SeqNames() {
		n, err := fa.Len(name)
		if err != nil {
			return nil, err
		}
		var gc string
		if n > 0 {
			seq, err := fa.Get(name, 0, n)
			if err != nil {
				return nil, err
			}
			gc = fmt.Sprintf("%.3f", gcFraction(seq))
		}
		tbl.Rows = append(tbl.Rows, []string{name, strconv.FormatUint(n, 10), gc})
	}
	return tbl, nil
}

func gcFraction(seq string) float64 {
	var gc int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'g', 'G', 'c', 'C':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
