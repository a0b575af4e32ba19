package annot

import (
	"fmt"
	"strings"

	"github.com/inodb/seqloc/internal/strand"
)

// Loc is the operation set shared by Pos, Contig and Spliced: a defined
// region on a named reference sequence, which may also carry strand
// information.
//
// PosInto maps an absolute reference position into the location's own
// strand-corrected relative frame: the location's first position maps to
// offset 0, its next position to 1, and so forth. For reverse-strand
// locations the 3'-most reference position maps to 0 and the strand of
// the mapped position is reversed. PosOutof is its inverse. Both require
// the location's strand to resolve to a definite strand and fail with
// ErrNoStrand otherwise; positions outside the location (or inside an
// intron, for Spliced) fail with ErrOutOfRange.
//
// Intersections of a location with a contiguous region take the region's
// strand-free Span, so regions of any strand capability interoperate;
// each concrete type keeps its own structure in the result and therefore
// declares its own ContigIntersection method.
type Loc[R comparable, S strand.Stranded[S]] interface {
	// Refid names the reference sequence.
	Refid() R
	// Start is the left-most position on the reference (0-based).
	Start() int64
	// Length is the total span on the reference, introns included.
	Length() int64
	// Strand of the location.
	Strand() S
	// Span is the strand-free extent of the location.
	Span() Span[R]
	// ContigOf is the minimal contiguous region covering the location.
	ContigOf() Contig[R, S]
	// FirstPos is the 5'-most position of the location on its own
	// strand; for a zero-length location it is the starting position.
	FirstPos() (Pos[R, S], error)
	// LastPos is the 3'-most position of the location on its own
	// strand; for a zero-length location it is the starting position.
	LastPos() (Pos[R, S], error)
	// PosInto maps an absolute position into the location's frame.
	PosInto(Pos[R, S]) (RelPos[S], error)
	// PosOutof maps a relative position back onto the reference.
	PosOutof(RelPos[S]) (Pos[R, S], error)

	fmt.Stringer
}

// Span is the strand-free extent of a location on a named reference
// sequence: a half-open interval [Start, Start+Length).
type Span[R comparable] struct {
	Refid  R
	Start  int64
	Length int64
}

// End is the exclusive upper bound of the span.
func (s Span[R]) End() int64 { return s.Start + s.Length }

// Contains reports whether pos falls within the span.
func (s Span[R]) Contains(pos int64) bool {
	return pos >= s.Start && pos < s.End()
}

// RelPos is a position within a location's own relative frame: an offset
// counted from 0 at the location's first position, with the strand
// composed from the location's strand and the mapped position's strand.
type RelPos[S strand.Stranded[S]] struct {
	Off    int64
	Strand S
}

// Same reports whether two relative positions have the same offset and
// the same strand, with unknown strands matching unknown strands.
func (r RelPos[S]) Same(other RelPos[S]) bool {
	return r.Off == other.Off && r.Strand.Same(other.Strand)
}

func (r RelPos[S]) String() string {
	return fmt.Sprintf("%d%v", r.Off, r.Strand)
}

// firstPos implements FirstPos for any location.
func firstPos[R comparable, S strand.Stranded[S]](l Loc[R, S]) (Pos[R, S], error) {
	req, ok := l.Strand().ReqStrand()
	if !ok {
		return Pos[R, S]{}, ErrNoStrand
	}
	start := l.Start()
	if req == strand.ReqReverse && l.Length() > 0 {
		start += l.Length() - 1
	}
	return NewPos(l.Refid(), start, l.Strand()), nil
}

// lastPos implements LastPos for any location.
func lastPos[R comparable, S strand.Stranded[S]](l Loc[R, S]) (Pos[R, S], error) {
	req, ok := l.Strand().ReqStrand()
	if !ok {
		return Pos[R, S]{}, ErrNoStrand
	}
	start := l.Start()
	if req == strand.ReqForward && l.Length() > 0 {
		start += l.Length() - 1
	}
	return NewPos(l.Refid(), start, l.Strand()), nil
}

// ParseLoc parses any of the three location notations, dispatching on
// shape: exon lists ("chr:1-10;20-30") parse as Spliced, single ranges
// ("chr:1-10") as Contig and bare coordinates ("chr:5") as Pos.
func ParseLoc[R ~string, S strand.Stranded[S]](s string) (Loc[R, S], error) {
	body := s
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		body = s[i+1:]
	}
	switch {
	case strings.ContainsRune(body, ';'):
		l, err := ParseSpliced[R, S](s)
		if err != nil {
			return nil, err
		}
		return l, nil
	case strings.ContainsRune(body, '-'):
		l, err := ParseContig[R, S](s)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		l, err := ParsePos[R, S](s)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}
