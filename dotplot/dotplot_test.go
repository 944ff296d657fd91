package dotplot

import (
	"strings"
	"testing"

	"github.com/egar360/wf-clone-validation/encoding/maf"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) ([]maf.Record, int, bool) {
	t.Helper()
	s := maf.NewScanner(strings.NewReader(text))
	var (
		recs []maf.Record
		rec  maf.Record
	)
	for s.Scan(&rec) {
		recs = append(recs, rec)
	}
	require.NoError(t, s.Err())
	n, ok := s.ReadLength()
	return recs, n, ok
}

func TestBuildExample(t *testing.T) {
	recs, n, ok := parse(t, `# letters=1000
a score=1
s assembly 10 5 + 9102 CTTAG
s read1 20 5 + 1000 CTTAG

a score=1
s assembly 30 4 + 9102 GGAT
s read2 50 4 - 1000 ATCC

`)
	segs, err := Build(recs, n, ok)
	require.NoError(t, err)
	require.Equal(t, 2, len(segs))
	expect.EQ(t, segs[0], Segment{X0: 10, Y0: 20, X1: 15, Y1: 25, Strand: Forward})
	expect.EQ(t, segs[1], Segment{X0: 30, Y0: 950, X1: 34, Y1: 946, Strand: Reverse})
}

func TestForwardIntervals(t *testing.T) {
	rec := maf.Record{RefStart: 100, RefLen: 40, QueryStart: 7, QueryLen: 40}
	segs, err := Build([]maf.Record{rec}, 1000, true)
	require.NoError(t, err)
	seg := segs[0]
	expect.EQ(t, seg.X1-seg.X0, rec.RefLen)
	expect.EQ(t, seg.Y1-seg.Y0, rec.QueryLen)
	expect.True(t, seg.X0 >= rec.RefStart)
	expect.True(t, seg.X1 >= rec.RefStart)
}

// A reverse-oriented reference walks backward from its start: the original
// start becomes the interval's upper bound.
func TestReverseReferenceInterval(t *testing.T) {
	rec := maf.Record{
		RefStart: 100, RefLen: 40, RefOrient: maf.Reverse,
		QueryStart: 7, QueryLen: 40,
	}
	segs, err := Build([]maf.Record{rec}, 1000, true)
	require.NoError(t, err)
	expect.EQ(t, segs[0].X1, 100)
	expect.EQ(t, segs[0].X0, 60)
}

func TestReverseQueryMirror(t *testing.T) {
	rec := maf.Record{
		RefStart: 30, RefLen: 4,
		QueryStart: 50, QueryLen: 4, QueryOrient: maf.Reverse,
	}
	segs, err := Build([]maf.Record{rec}, 1000, true)
	require.NoError(t, err)
	expect.EQ(t, segs[0].Y0, 1000-50)
	expect.EQ(t, segs[0].Y1, 1000-50-4)
	expect.EQ(t, segs[0].Strand, Reverse)
}

// The reverse-query branch always takes the reference interval forward, even
// when the block's reference orientation is also reverse.
func TestReverseReverseKeepsForwardReference(t *testing.T) {
	rec := maf.Record{
		RefStart: 30, RefLen: 4, RefOrient: maf.Reverse,
		QueryStart: 50, QueryLen: 4, QueryOrient: maf.Reverse,
	}
	segs, err := Build([]maf.Record{rec}, 1000, true)
	require.NoError(t, err)
	expect.EQ(t, segs[0].X0, 30)
	expect.EQ(t, segs[0].X1, 34)
}

func TestForwardSegmentsFirst(t *testing.T) {
	recs := []maf.Record{
		{RefStart: 1, RefLen: 1, QueryStart: 1, QueryLen: 1, QueryOrient: maf.Reverse},
		{RefStart: 2, RefLen: 1, QueryStart: 2, QueryLen: 1},
		{RefStart: 3, RefLen: 1, QueryStart: 3, QueryLen: 1, QueryOrient: maf.Reverse},
	}
	segs, err := Build(recs, 10, true)
	require.NoError(t, err)
	require.Equal(t, 3, len(segs))
	expect.EQ(t, segs[0].Strand, Forward)
	expect.EQ(t, segs[1].Strand, Reverse)
	expect.EQ(t, segs[2].Strand, Reverse)
	expect.EQ(t, segs[1].X0, 1)
	expect.EQ(t, segs[2].X0, 3)
}

func TestMissingReadLength(t *testing.T) {
	recs := []maf.Record{
		{RefStart: 30, RefLen: 4, QueryStart: 50, QueryLen: 4, QueryOrient: maf.Reverse},
	}
	segs, err := Build(recs, 0, false)
	expect.EQ(t, err, ErrNoReadLength)
	expect.EQ(t, len(segs), 0)
}

// The read length is a file-level precondition: a file without a letters=
// comment fails the build even when every query is on the forward strand.
func TestMissingReadLengthForwardOnly(t *testing.T) {
	recs, n, ok := parse(t, `a score=1
s assembly 10 5 + 9102 CTTAG
s read1 20 5 + 1000 CTTAG

`)
	require.False(t, ok)
	segs, err := Build(recs, n, ok)
	expect.EQ(t, err, ErrNoReadLength)
	expect.EQ(t, len(segs), 0)
}

func TestChart(t *testing.T) {
	segs := []Segment{
		{X0: 10, Y0: 20, X1: 15, Y1: 25, Strand: Forward},
		{X0: 30, Y0: 950, X1: 34, Y1: 946, Strand: Reverse},
	}
	line := Chart(segs, DefaultOpts)
	require.Equal(t, 2, len(line.MultiSeries))
	expect.EQ(t, line.MultiSeries[0].ItemStyle.Color, DefaultOpts.ForwardColor)
	expect.EQ(t, line.MultiSeries[1].ItemStyle.Color, DefaultOpts.ReverseColor)
}
