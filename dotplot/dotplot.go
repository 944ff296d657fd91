// Package dotplot turns parsed alignment blocks into 2-D line segments for an
// assembly dot plot.  Reference coordinates run along the X axis and query
// coordinates along the Y axis; reverse-strand query matches are mirrored
// against the total read length so that every segment can be drawn in a
// single forward-vs-forward coordinate space.
package dotplot

import (
	"errors"

	"github.com/egar360/wf-clone-validation/encoding/maf"
)

// ErrNoReadLength is returned when the alignment file carries no "letters="
// comment.  The total read length is a precondition of every build, not just
// of files with reverse-strand query blocks: the mirror transform needs it,
// and a file without the header is malformed upstream output.
var ErrNoReadLength = errors.New("alignment file carries no letters= read length")

// Strand tags a segment with the query orientation it came from.
type Strand int8

const (
	// Forward segments rise left to right.
	Forward Strand = iota
	// Reverse segments fall left to right.
	Reverse
)

// A Segment is one renderable dot-plot line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0 int
	X1, Y1 int
	Strand Strand
}

// Build converts alignment blocks into dot-plot segments.  All forward-query
// segments come first, then all reverse-query segments, each group in block
// order.  readLength is the total query sequence length from the file's
// "letters=" comment; hasReadLength reports whether one was present.  A
// missing read length fails the whole build regardless of strand mix: no
// partial segment list is returned.
func Build(recs []maf.Record, readLength int, hasReadLength bool) ([]Segment, error) {
	if !hasReadLength {
		return nil, ErrNoReadLength
	}
	segs := make([]Segment, 0, len(recs))
	for _, rec := range recs {
		if rec.QueryOrient != maf.Forward {
			continue
		}
		segs = append(segs, forwardSegment(rec))
	}
	for _, rec := range recs {
		if rec.QueryOrient != maf.Reverse {
			continue
		}
		segs = append(segs, reverseSegment(rec, readLength))
	}
	return segs, nil
}

// forwardSegment handles blocks whose query is on the forward strand.  The
// reference interval respects the block's reference orientation: a reverse
// reference walks backward from its start, so the stored start becomes the
// interval's lower bound.
func forwardSegment(rec maf.Record) Segment {
	refStart, refEnd := rec.RefStart, rec.RefStart+rec.RefLen
	if rec.RefOrient == maf.Reverse {
		refEnd = rec.RefStart
		refStart = rec.RefStart - rec.RefLen
	}
	return Segment{
		X0: refStart, Y0: rec.QueryStart,
		X1: refEnd, Y1: rec.QueryStart + rec.QueryLen,
		Strand: Forward,
	}
}

// reverseSegment handles blocks whose query is on the reverse strand.  A "-"
// query start counts from the far end of the read, so it is flipped against
// the total read length to land on the forward axis.  The reference interval
// is always taken forward here, regardless of the block's reference
// orientation.
func reverseSegment(rec maf.Record, readLength int) Segment {
	queryStart := readLength - rec.QueryStart
	return Segment{
		X0: rec.RefStart, Y0: queryStart,
		X1: rec.RefStart + rec.RefLen, Y1: queryStart - rec.QueryLen,
		Strand: Reverse,
	}
}
