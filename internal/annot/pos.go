package annot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/inodb/seqloc/internal/strand"
)

// Pos is a position on a particular, named sequence (e.g. a
// chromosome), such as 683,946 on chromosome IV.
//
// The display format is "chr:pos(+/-)". A required-strand position
// always carries a "(+)" or "(-)" suffix; an unknown strand has none.
type Pos[R comparable, S strand.Stranded[S]] struct {
	refid  R
	pos    int64
	strand S
}

// NewPos constructs a sequence position.
func NewPos[R comparable, S strand.Stranded[S]](refid R, pos int64, st S) Pos[R, S] {
	return Pos[R, S]{refid: refid, pos: pos, strand: st}
}

// Refid names the reference sequence.
func (p Pos[R, S]) Refid() R { return p.refid }

// Pos is the position on the reference sequence (0-based).
func (p Pos[R, S]) Pos() int64 { return p.pos }

// Start equals Pos; a position is a length-1 location.
func (p Pos[R, S]) Start() int64 { return p.pos }

// Length is always 1.
func (p Pos[R, S]) Length() int64 { return 1 }

// Strand of the position.
func (p Pos[R, S]) Strand() S { return p.strand }

// Span is the strand-free extent of the position.
func (p Pos[R, S]) Span() Span[R] {
	return Span[R]{Refid: p.refid, Start: p.pos, Length: 1}
}

// ContigOf is the length-1 contiguous region covering the position.
func (p Pos[R, S]) ContigOf() Contig[R, S] {
	return NewContig(p.refid, p.pos, 1, p.strand)
}

// FirstPos returns the position itself on its own strand.
func (p Pos[R, S]) FirstPos() (Pos[R, S], error) { return firstPos[R, S](p) }

// LastPos returns the position itself on its own strand.
func (p Pos[R, S]) LastPos() (Pos[R, S], error) { return lastPos[R, S](p) }

// Shift slides the position by dist along the strand of the annotation:
// a positive dist numerically increases the position for forward-strand
// annotations and decreases it for reverse-strand ones. Fails with
// ErrNoStrand when the strand is unknown.
func (p *Pos[R, S]) Shift(dist int64) error {
	req, ok := p.strand.ReqStrand()
	if !ok {
		return ErrNoStrand
	}
	if req == strand.ReqReverse {
		dist = -dist
	}
	p.pos += dist
	return nil
}

// PosInto maps q into the frame of p. It succeeds only when refid and
// coordinate match exactly, yielding offset 0 with the strand of q
// composed onto the strand of p.
func (p Pos[R, S]) PosInto(q Pos[R, S]) (RelPos[S], error) {
	req, ok := p.strand.ReqStrand()
	if !ok {
		return RelPos[S]{}, ErrNoStrand
	}
	if p.refid != q.refid {
		return RelPos[S]{}, ErrRefidMismatch
	}
	if p.pos != q.pos {
		return RelPos[S]{}, ErrOutOfRange
	}
	return RelPos[S]{Off: 0, Strand: strand.OnStrand(req, q.strand)}, nil
}

// PosOutof maps a relative position back onto the reference. Only
// offset 0 is in range.
func (p Pos[R, S]) PosOutof(rp RelPos[S]) (Pos[R, S], error) {
	req, ok := p.strand.ReqStrand()
	if !ok {
		return Pos[R, S]{}, ErrNoStrand
	}
	if rp.Off != 0 {
		return Pos[R, S]{}, ErrOutOfRange
	}
	return NewPos(p.refid, p.pos, strand.OnStrand(req, rp.Strand)), nil
}

// ContigIntersection returns the position when it falls within other,
// and fails with ErrNoOverlap (or ErrRefidMismatch) otherwise.
func (p Pos[R, S]) ContigIntersection(other Span[R]) (Pos[R, S], error) {
	if p.refid != other.Refid {
		return Pos[R, S]{}, ErrRefidMismatch
	}
	if !other.Contains(p.pos) {
		return Pos[R, S]{}, ErrNoOverlap
	}
	return p, nil
}

// Same reports whether two positions are the "same": equal refid and
// coordinate, with unknown strands matching unknown strands.
func (p Pos[R, S]) Same(other Pos[R, S]) bool {
	return p.refid == other.refid && p.pos == other.pos && p.strand.Same(other.strand)
}

// Equal is the strict relation: as Same, except that unknown strands
// are not equal to each other.
func (p Pos[R, S]) Equal(other Pos[R, S]) bool {
	return p.refid == other.refid && p.pos == other.pos && p.strand.Equal(other.strand)
}

func (p Pos[R, S]) String() string {
	return fmt.Sprintf("%v:%d%v", p.refid, p.pos, p.strand)
}

// PosWithStrand returns p with its strand replaced by st, which may be
// of a different strand capability type. Combined with the strand
// conversions this moves positions between capability levels, e.g.
// PosWithStrand(p, p.Strand().Strand()) widens a required-strand
// position to an optional-strand one.
func PosWithStrand[R comparable, S1 strand.Stranded[S1], S2 strand.Stranded[S2]](p Pos[R, S1], st S2) Pos[R, S2] {
	return NewPos(p.refid, p.pos, st)
}

var posRE = regexp.MustCompile(`^(.*):(\d+)(\([+-]\))?$`)

// ParsePos parses the display format "chr:pos(+/-)". The strand suffix
// must be valid for the strand capability type S: required strands
// demand a suffix, unstranded positions forbid one.
func ParsePos[R ~string, S strand.Stranded[S]](s string) (Pos[R, S], error) {
	m := posRE.FindStringSubmatch(s)
	if m == nil {
		return Pos[R, S]{}, fmt.Errorf("position %q: %w", s, ErrBadAnnot)
	}
	pos, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Pos[R, S]{}, fmt.Errorf("position %q: %w", s, err)
	}
	var zero S
	st, err := zero.FromSuffix(m[3])
	if err != nil {
		return Pos[R, S]{}, fmt.Errorf("position %q: %w", s, err)
	}
	return NewPos(R(m[1]), pos, st), nil
}
