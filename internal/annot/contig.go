package annot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/inodb/seqloc/internal/strand"
)

// Contig is a contiguous region on a particular, named sequence (e.g. a
// chromosome), spanning the half-open, 0-based interval
// [start, start+length).
//
// The display format is "chr:start-end(+/-/.)", with boundaries given
// like the BED format.
type Contig[R comparable, S strand.Stranded[S]] struct {
	refid  R
	start  int64
	length int64
	strand S
}

// NewContig constructs a contiguous region. It panics when length is
// negative; lengths are validated at construction and never after.
func NewContig[R comparable, S strand.Stranded[S]](refid R, start, length int64, st S) Contig[R, S] {
	if length < 0 {
		panic("annot: negative contig length")
	}
	return Contig[R, S]{refid: refid, start: start, length: length, strand: st}
}

// ContigWithFirstLength constructs a contiguous region from its first
// position and a length. Reverse-strand first positions extend toward
// lower coordinates. For lengths above 1 the position's strand must be
// known; otherwise the region's extent is ambiguous and the result is
// ErrNoStrand.
func ContigWithFirstLength[R comparable, S strand.Stranded[S]](pos Pos[R, S], length int64) (Contig[R, S], error) {
	if length < 2 {
		return NewContig(pos.Refid(), pos.Start(), length, pos.Strand()), nil
	}
	req, ok := pos.Strand().ReqStrand()
	if !ok {
		return Contig[R, S]{}, ErrNoStrand
	}
	start := pos.Start()
	if req == strand.ReqReverse {
		start = pos.Start() - length + 1
	}
	return NewContig(pos.Refid(), start, length, pos.Strand()), nil
}

// Refid names the reference sequence.
func (c Contig[R, S]) Refid() R { return c.refid }

// Start is the left-most position of the region (0-based, inclusive).
func (c Contig[R, S]) Start() int64 { return c.start }

// Length of the region.
func (c Contig[R, S]) Length() int64 { return c.length }

// End is the exclusive upper bound of the region.
func (c Contig[R, S]) End() int64 { return c.start + c.length }

// Strand of the region.
func (c Contig[R, S]) Strand() S { return c.strand }

// Span is the strand-free extent of the region.
func (c Contig[R, S]) Span() Span[R] {
	return Span[R]{Refid: c.refid, Start: c.start, Length: c.length}
}

// ContigOf returns the region itself; it is already contiguous.
func (c Contig[R, S]) ContigOf() Contig[R, S] { return c }

// FirstPos is the 5'-most position of the region on its own strand.
func (c Contig[R, S]) FirstPos() (Pos[R, S], error) { return firstPos[R, S](c) }

// LastPos is the 3'-most position of the region on its own strand.
func (c Contig[R, S]) LastPos() (Pos[R, S], error) { return lastPos[R, S](c) }

// ExtendUpstream grows the region by dist on its upstream (5') end:
// the left end for forward-strand regions, the right end for
// reverse-strand regions. Unknown strands extend on the right,
// leaving start untouched.
func (c *Contig[R, S]) ExtendUpstream(dist int64) {
	c.length += dist
	if req, ok := c.strand.ReqStrand(); ok && req == strand.ReqForward {
		c.start -= dist
	}
}

// ExtendDownstream grows the region by dist on its downstream (3') end:
// the right end for forward-strand regions, the left end for
// reverse-strand regions.
func (c *Contig[R, S]) ExtendDownstream(dist int64) {
	c.length += dist
	if req, ok := c.strand.ReqStrand(); ok && req == strand.ReqReverse {
		c.start -= dist
	}
}

// PosInto maps an absolute reference position into the region's frame.
func (c Contig[R, S]) PosInto(p Pos[R, S]) (RelPos[S], error) {
	req, ok := c.strand.ReqStrand()
	if !ok {
		return RelPos[S]{}, ErrNoStrand
	}
	if c.refid != p.refid {
		return RelPos[S]{}, ErrRefidMismatch
	}
	offset := p.pos - c.start
	if offset < 0 || offset >= c.length {
		return RelPos[S]{}, ErrOutOfRange
	}
	if req == strand.ReqReverse {
		offset = c.length - (offset + 1)
	}
	return RelPos[S]{Off: offset, Strand: strand.OnStrand(req, p.strand)}, nil
}

// PosOutof maps a relative position back onto the reference sequence.
func (c Contig[R, S]) PosOutof(rp RelPos[S]) (Pos[R, S], error) {
	req, ok := c.strand.ReqStrand()
	if !ok {
		return Pos[R, S]{}, ErrNoStrand
	}
	offset := rp.Off
	if req == strand.ReqReverse {
		offset = c.length - (rp.Off + 1)
	}
	if offset < 0 || offset >= c.length {
		return Pos[R, S]{}, ErrOutOfRange
	}
	return NewPos(c.refid, c.start+offset, strand.OnStrand(req, rp.Strand)), nil
}

// ContigIntersection clips the region to its overlap with other,
// keeping the region's own strand. The zero-length boundary case, where
// the two regions exactly abut, succeeds with an empty region.
func (c Contig[R, S]) ContigIntersection(other Span[R]) (Contig[R, S], error) {
	if c.refid != other.Refid {
		return Contig[R, S]{}, ErrRefidMismatch
	}
	start := max(c.start, other.Start)
	end := min(c.End(), other.End())
	if start > end {
		return Contig[R, S]{}, ErrNoOverlap
	}
	return NewContig(c.refid, start, end-start, c.strand), nil
}

// Same reports whether two regions have the same extent, with unknown
// strands matching unknown strands.
func (c Contig[R, S]) Same(other Contig[R, S]) bool {
	return c.refid == other.refid && c.start == other.start &&
		c.length == other.length && c.strand.Same(other.strand)
}

// Equal is the strict relation: as Same, except that unknown strands
// are not equal to each other.
func (c Contig[R, S]) Equal(other Contig[R, S]) bool {
	return c.refid == other.refid && c.start == other.start &&
		c.length == other.length && c.strand.Equal(other.strand)
}

func (c Contig[R, S]) String() string {
	return fmt.Sprintf("%v:%d-%d%v", c.refid, c.start, c.End(), c.strand)
}

// ContigWithStrand returns c with its strand replaced by st, which may
// be of a different strand capability type.
func ContigWithStrand[R comparable, S1 strand.Stranded[S1], S2 strand.Stranded[S2]](c Contig[R, S1], st S2) Contig[R, S2] {
	return NewContig(c.refid, c.start, c.length, st)
}

var contigRE = regexp.MustCompile(`^(.*):(\d+)-(\d+)(\([+-]\))?$`)

// ParseContig parses the display format "chr:start-end(+/-/.)".
func ParseContig[R ~string, S strand.Stranded[S]](s string) (Contig[R, S], error) {
	m := contigRE.FindStringSubmatch(s)
	if m == nil {
		return Contig[R, S]{}, fmt.Errorf("contig %q: %w", s, ErrBadAnnot)
	}
	start, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Contig[R, S]{}, fmt.Errorf("contig %q: %w", s, err)
	}
	end, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return Contig[R, S]{}, fmt.Errorf("contig %q: %w", s, err)
	}
	var zero S
	st, err := zero.FromSuffix(m[4])
	if err != nil {
		return Contig[R, S]{}, fmt.Errorf("contig %q: %w", s, err)
	}
	if end < start {
		return Contig[R, S]{}, fmt.Errorf("contig %q: %w", s, ErrEndBeforeStart)
	}
	return NewContig(R(m[1]), start, end-start, st), nil
}
