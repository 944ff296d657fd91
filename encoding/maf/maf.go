// Package maf contains code for parsing pairwise alignment files in the
// MAF-like text format emitted by last/lastal when aligning reads back to an
// assembly.  Each alignment block consists of an "a" header line followed by
// exactly two "s" sequence lines (reference first, then query) and a
// separator line.  For example:
//
// # batch 0 letters=4641652
// a score=4222
// s assembly 4733 4444 + 9102 CTT...
// s read42   0    4444 - 4444 CTT...
//
// Comment lines carry the total query sequence length as a "letters=" token.
package maf

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// ErrFormat is returned when the file violates the expected line grammar.
var ErrFormat = errors.New("cannot read alignment file")

// Orient is the strand orientation of one aligned segment.
type Orient int8

const (
	// Forward is the "+" strand.
	Forward Orient = iota
	// Reverse is the "-" strand.
	Reverse
)

func (o Orient) String() string {
	if o == Reverse {
		return "-"
	}
	return "+"
}

// A Record is one parsed alignment block: one segment of the reference
// sequence paired with one segment of the query.  Starts are 0-based offsets
// into the strand named by the orientation (per the MAF convention, a "-"
// start counts from the end of the sequence).
type Record struct {
	RefName     string
	RefStart    int
	RefLen      int
	RefOrient   Orient
	QueryName   string
	QueryStart  int
	QueryLen    int
	QueryOrient Orient
}

// Scanner provides a convenient interface for reading alignment blocks.  The
// Scan method returns the next block, returning a boolean indicating whether
// the read succeeded.  Scanners are not threadsafe.
//
// Scanner is strict: any line that is not a comment, an "a" header, or part
// of a well-formed block is a fatal ErrFormat.  A malformed block never
// yields a partial Record.
type Scanner struct {
	b             *bufio.Scanner
	err           error
	readLength    int
	hasReadLength bool
}

// NewScanner constructs a new Scanner that reads raw alignment text from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next alignment block into the provided record.  Scan returns a
// boolean indicating whether the scan succeeded.  Once Scan returns false, it
// never returns true again.  Upon completion, the user should check the Err
// method to determine whether scanning stopped because of an error or because
// the end of the stream was reached.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	for s.b.Scan() {
		line := s.b.Text()
		switch {
		case strings.HasPrefix(line, "#"):
			if !s.parseComment(line) {
				return false
			}
		case strings.HasPrefix(line, "a"):
			return s.scanBlock(rec)
		default:
			s.err = errors.Wrapf(ErrFormat, "unexpected line %q", line)
			return false
		}
	}
	s.err = s.b.Err()
	return false
}

// parseComment extracts the query read length from a "letters=" token if one
// is present.  The last such value wins.
func (s *Scanner) parseComment(line string) bool {
	i := strings.Index(line, "letters=")
	if i < 0 {
		return true
	}
	tok := line[i+len("letters="):]
	if j := strings.IndexByte(tok, ' '); j >= 0 {
		tok = tok[:j]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		s.err = errors.Wrapf(ErrFormat, "bad letters= value in %q: %v", line, err)
		return false
	}
	s.readLength = n
	s.hasReadLength = true
	return true
}

// scanBlock reads the two "s" lines following an "a" header, then consumes
// the block separator line if one is present.
func (s *Scanner) scanBlock(rec *Record) bool {
	refName, refStart, refLen, refOrient, ok := s.scanSeqLine()
	if !ok {
		return false
	}
	queryName, queryStart, queryLen, queryOrient, ok := s.scanSeqLine()
	if !ok {
		return false
	}
	s.b.Scan() // separator, discarded even at EOF
	rec.RefName = refName
	rec.RefStart = refStart
	rec.RefLen = refLen
	rec.RefOrient = refOrient
	rec.QueryName = queryName
	rec.QueryStart = queryStart
	rec.QueryLen = queryLen
	rec.QueryOrient = queryOrient
	return true
}

func (s *Scanner) scanSeqLine() (name string, start, length int, orient Orient, ok bool) {
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errors.Wrap(ErrFormat, "truncated alignment block")
		}
		return
	}
	line := s.b.Text()
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[0] != "s" {
		s.err = errors.Wrapf(ErrFormat, "malformed sequence line %q", line)
		return
	}
	var err error
	if start, err = strconv.Atoi(fields[2]); err != nil {
		s.err = errors.Wrapf(ErrFormat, "bad start in %q: %v", line, err)
		return
	}
	if length, err = strconv.Atoi(fields[3]); err != nil {
		s.err = errors.Wrapf(ErrFormat, "bad length in %q: %v", line, err)
		return
	}
	switch fields[4] {
	case "+":
		orient = Forward
	case "-":
		orient = Reverse
	default:
		s.err = errors.Wrapf(ErrFormat, "bad strand %q in %q", fields[4], line)
		return
	}
	return fields[1], start, length, orient, true
}

// ReadLength returns the total query sequence length parsed from the most
// recent "letters=" comment, and whether any such comment has been seen.
func (s *Scanner) ReadLength() (int, bool) {
	return s.readLength, s.hasReadLength
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Read parses the alignment file at path in a single streaming pass and
// returns its blocks in file order, plus the query read length if a
// "letters=" comment was present.
func Read(ctx context.Context, path string) (recs []Record, readLength int, hasReadLength bool, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, 0, false, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	sc := NewScanner(in.Reader(ctx))
	var rec Record
	for sc.Scan(&rec) {
		recs = append(recs, rec)
	}
	if err = sc.Err(); err != nil {
		return nil, 0, false, err
	}
	readLength, hasReadLength = sc.ReadLength()
	return recs, readLength, hasReadLength, nil
}
