package annot

import "github.com/inodb/seqloc/internal/strand"

// The IntoStranded conversions narrow a location's strand to a required
// strand, failing with ErrNoStrand when the strand does not resolve.
// The WithStrand functions in pos.go, contig.go and spliced.go are the
// unconditional counterparts.

// PosIntoStranded narrows the strand of p to a required strand.
func PosIntoStranded[R comparable, S strand.Stranded[S]](p Pos[R, S]) (Pos[R, strand.ReqStrand], error) {
	req, ok := p.strand.ReqStrand()
	if !ok {
		return Pos[R, strand.ReqStrand]{}, ErrNoStrand
	}
	return NewPos(p.refid, p.pos, req), nil
}

// ContigIntoStranded narrows the strand of c to a required strand.
func ContigIntoStranded[R comparable, S strand.Stranded[S]](c Contig[R, S]) (Contig[R, strand.ReqStrand], error) {
	req, ok := c.strand.ReqStrand()
	if !ok {
		return Contig[R, strand.ReqStrand]{}, ErrNoStrand
	}
	return NewContig(c.refid, c.start, c.length, req), nil
}

// SplicedIntoStranded narrows the strand of l to a required strand.
func SplicedIntoStranded[R comparable, S strand.Stranded[S]](l Spliced[R, S]) (Spliced[R, strand.ReqStrand], error) {
	req, ok := l.strand.ReqStrand()
	if !ok {
		return Spliced[R, strand.ReqStrand]{}, ErrNoStrand
	}
	return SplicedWithStrand(l, req), nil
}
