package annot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/inodb/seqloc/internal/strand"
)

// inEx is an intron/exon pair following the first exon. Both lengths
// are strictly positive, which makes the (first-exon, pairs)
// representation of a splicing structure unique: only one set of
// positive-length exons with interleaved positive-length introns can
// describe it, and a zero first-exon length with no pairs is the one
// representation of a zero-length location.
type inEx struct {
	intronLength int64
	exonLength   int64
}

func newInEx(intronLength, exonLength int64) (inEx, error) {
	if intronLength < 1 {
		return inEx{}, ErrIntronLength
	}
	if exonLength < 1 {
		return inEx{}, ErrExonLength
	}
	return inEx{intronLength: intronLength, exonLength: exonLength}, nil
}

func (ie inEx) length() int64 { return ie.intronLength + ie.exonLength }

// exon is an exon's start relative to the start of the location, with
// its length. The exon sequence derived from the (first-exon, pairs)
// representation is the single source of truth for all exon-aware
// algorithms.
type exon struct {
	start  int64
	length int64
}

func (e exon) end() int64 { return e.start + e.length }

// Spliced is a spliced region on a particular, named sequence: an
// ordered series of exons separated by introns, e.g. a multi-exon
// transcript.
//
// The display format is "chr:start0-end0;start1-end1;...(+/-/.)" with
// each exon given as a half-open, 0-based interval. Exons are listed
// left to right on the reference sequence regardless of strand.
type Spliced[R comparable, S strand.Stranded[S]] struct {
	refid       R
	start       int64
	exon0Length int64
	inexes      []inEx
	strand      S
}

// NewSpliced constructs a single-exon "spliced" location. It panics
// when exon0Length is negative.
func NewSpliced[R comparable, S strand.Stranded[S]](refid R, start, exon0Length int64, st S) Spliced[R, S] {
	if exon0Length < 0 {
		panic("annot: negative exon length")
	}
	return Spliced[R, S]{refid: refid, start: start, exon0Length: exon0Length, strand: st}
}

// SplicedWithLengthsStarts constructs a multi-exon location from
// BED-style parallel arrays of exon lengths and exon starts, the starts
// relative to start. The first exon must start at 0, blocks must not
// overlap or abut, and every block after the first must have positive
// length; violations fail with the corresponding splicing error.
func SplicedWithLengthsStarts[R comparable, S strand.Stranded[S]](refid R, start int64, exonLengths, exonStarts []int64, st S) (Spliced[R, S], error) {
	if len(exonStarts) == 0 {
		return Spliced[R, S]{}, ErrNoExons
	}
	if exonStarts[0] != 0 {
		return Spliced[R, S]{}, ErrBlockStart
	}
	if len(exonStarts) != len(exonLengths) {
		return Spliced[R, S]{}, ErrBlockMismatch
	}

	exon0Length := exonLengths[0]
	if exon0Length < 0 {
		return Spliced[R, S]{}, ErrExonLength
	}
	intronStart := exon0Length
	var inexes []inEx
	for exno := 1; exno < len(exonStarts); exno++ {
		exonStart := exonStarts[exno]
		if intronStart >= exonStart {
			return Spliced[R, S]{}, ErrBlockOverlap
		}
		exonLength := exonLengths[exno]
		if exonLength == 0 {
			return Spliced[R, S]{}, ErrExonLength
		}
		ie, err := newInEx(exonStart-intronStart, exonLength)
		if err != nil {
			return Spliced[R, S]{}, err
		}
		inexes = append(inexes, ie)
		intronStart = exonStart + exonLength
	}

	return Spliced[R, S]{
		refid:       refid,
		start:       start,
		exon0Length: exon0Length,
		inexes:      inexes,
		strand:      st,
	}, nil
}

// exons walks the splicing structure and returns the exon descriptors
// from lowest to highest coordinate.
func (l Spliced[R, S]) exons() []exon {
	exes := make([]exon, 0, len(l.inexes)+1)
	exes = append(exes, exon{start: 0, length: l.exon0Length})
	currStart := l.exon0Length
	for _, ie := range l.inexes {
		exes = append(exes, exon{start: currStart + ie.intronLength, length: ie.exonLength})
		currStart += ie.length()
	}
	return exes
}

// Refid names the reference sequence.
func (l Spliced[R, S]) Refid() R { return l.refid }

// Start is the left-most position of the location (0-based).
func (l Spliced[R, S]) Start() int64 { return l.start }

// Length is the total span on the reference, introns included.
func (l Spliced[R, S]) Length() int64 {
	length := l.exon0Length
	for _, ie := range l.inexes {
		length += ie.length()
	}
	return length
}

// ExonTotalLength is the total length of the exons only. This, not
// Length, is the extent of the relative frame used by PosInto and
// PosOutof.
func (l Spliced[R, S]) ExonTotalLength() int64 {
	length := l.exon0Length
	for _, ie := range l.inexes {
		length += ie.exonLength
	}
	return length
}

// ExonCount is the number of exons.
func (l Spliced[R, S]) ExonCount() int { return len(l.inexes) + 1 }

// ExonStarts are the exon starting positions relative to the start of
// the location, from left to right on the reference sequence regardless
// of strand.
func (l Spliced[R, S]) ExonStarts() []int64 {
	exes := l.exons()
	starts := make([]int64, len(exes))
	for i, ex := range exes {
		starts[i] = ex.start
	}
	return starts
}

// ExonLengths are the exon lengths, from left to right on the reference
// sequence regardless of strand.
func (l Spliced[R, S]) ExonLengths() []int64 {
	exes := l.exons()
	lengths := make([]int64, len(exes))
	for i, ex := range exes {
		lengths[i] = ex.length
	}
	return lengths
}

// Strand of the location.
func (l Spliced[R, S]) Strand() S { return l.strand }

// Span is the strand-free extent of the location, introns included.
func (l Spliced[R, S]) Span() Span[R] {
	return Span[R]{Refid: l.refid, Start: l.start, Length: l.Length()}
}

// ContigOf is the minimal contiguous region covering the location,
// spanning its introns.
func (l Spliced[R, S]) ContigOf() Contig[R, S] {
	return NewContig(l.refid, l.start, l.Length(), l.strand)
}

// FirstPos is the 5'-most position of the location on its own strand.
func (l Spliced[R, S]) FirstPos() (Pos[R, S], error) { return firstPos[R, S](l) }

// LastPos is the 3'-most position of the location on its own strand.
func (l Spliced[R, S]) LastPos() (Pos[R, S], error) { return lastPos[R, S](l) }

// ExonContigs materializes each exon as a contiguous region, in
// transcription order: index 0 is the feature's first exon, so the list
// is reversed for reverse-strand locations. Fails with ErrNoStrand when
// the strand is unknown, since transcription order is then undefined.
func (l Spliced[R, S]) ExonContigs() ([]Contig[R, S], error) {
	req, ok := l.strand.ReqStrand()
	if !ok {
		return nil, ErrNoStrand
	}
	exes := l.exons()
	contigs := make([]Contig[R, S], len(exes))
	for i, ex := range exes {
		contigs[i] = NewContig(l.refid, l.start+ex.start, ex.length, l.strand)
	}
	if req == strand.ReqReverse {
		for i, j := 0, len(contigs)-1; i < j; i, j = i+1, j-1 {
			contigs[i], contigs[j] = contigs[j], contigs[i]
		}
	}
	return contigs, nil
}

// PosInto maps an absolute reference position into the location's
// exon-only relative frame. Positions inside an intron or outside the
// location fail with ErrOutOfRange.
func (l Spliced[R, S]) PosInto(p Pos[R, S]) (RelPos[S], error) {
	req, ok := l.strand.ReqStrand()
	if !ok {
		return RelPos[S]{}, ErrNoStrand
	}
	if l.refid != p.refid {
		return RelPos[S]{}, ErrRefidMismatch
	}
	if p.pos < l.start {
		return RelPos[S]{}, ErrOutOfRange
	}
	posOffset := p.pos - l.start

	var offsetBefore int64
	for _, ex := range l.exons() {
		if posOffset >= ex.start && posOffset < ex.end() {
			offset := offsetBefore + posOffset - ex.start
			if req == strand.ReqReverse {
				offset = l.ExonTotalLength() - (offset + 1)
			}
			return RelPos[S]{Off: offset, Strand: strand.OnStrand(req, p.strand)}, nil
		}
		offsetBefore += ex.length
	}
	return RelPos[S]{}, ErrOutOfRange
}

// PosOutof maps an exon-only relative position back onto the reference
// sequence. Offsets outside [0, ExonTotalLength) fail with
// ErrOutOfRange.
func (l Spliced[R, S]) PosOutof(rp RelPos[S]) (Pos[R, S], error) {
	req, ok := l.strand.ReqStrand()
	if !ok {
		return Pos[R, S]{}, ErrNoStrand
	}
	offset := rp.Off
	if req == strand.ReqReverse {
		offset = l.ExonTotalLength() - (rp.Off + 1)
	}
	if offset < 0 {
		return Pos[R, S]{}, ErrOutOfRange
	}
	for _, ex := range l.exons() {
		if offset < ex.length {
			return NewPos(l.refid, l.start+ex.start+offset, strand.OnStrand(req, rp.Strand)), nil
		}
		offset -= ex.length
	}
	return Pos[R, S]{}, ErrOutOfRange
}

// ContigIntersection clips every exon against the overlap window with
// other and rebuilds the surviving, possibly trimmed exons through the
// validating constructor, preserving the location's splicing structure.
// No surviving exon fails with ErrNoOverlap.
func (l Spliced[R, S]) ContigIntersection(other Span[R]) (Spliced[R, S], error) {
	if l.refid != other.Refid {
		return Spliced[R, S]{}, ErrRefidMismatch
	}

	var contigRelStart int64
	if other.Start > l.start {
		contigRelStart = other.Start - l.start
	}
	var contigRelEnd int64
	if other.End() > l.start {
		contigRelEnd = other.End() - l.start
	}

	var exonLengths, exonStarts []int64
	for _, ex := range l.exons() {
		start := max(contigRelStart, ex.start)
		end := min(contigRelEnd, ex.end())
		if start < end {
			exonStarts = append(exonStarts, start-contigRelStart)
			exonLengths = append(exonLengths, end-start)
		}
	}
	if len(exonStarts) == 0 {
		return Spliced[R, S]{}, ErrNoOverlap
	}

	firstStart := exonStarts[0]
	for i := range exonStarts {
		exonStarts[i] -= firstStart
	}
	ixn, err := SplicedWithLengthsStarts(l.refid, max(l.start, other.Start)+firstStart, exonLengths, exonStarts, l.strand)
	if err != nil {
		// Unreachable through the validating constructors: clipping
		// positive-length exons cannot produce an invalid structure.
		panic(fmt.Sprintf("annot: intersection splicing %v for lengths %v starts %v", err, exonLengths, exonStarts))
	}
	return ixn, nil
}

// Same reports whether two locations have the same splicing structure,
// with unknown strands matching unknown strands.
func (l Spliced[R, S]) Same(other Spliced[R, S]) bool {
	if l.refid != other.refid || l.start != other.start ||
		l.exon0Length != other.exon0Length || !l.strand.Same(other.strand) {
		return false
	}
	if len(l.inexes) != len(other.inexes) {
		return false
	}
	for i, ie := range l.inexes {
		if ie != other.inexes[i] {
			return false
		}
	}
	return true
}

// Equal is the strict relation: as Same, except that unknown strands
// are not equal to each other.
func (l Spliced[R, S]) Equal(other Spliced[R, S]) bool {
	return l.Same(other) && l.strand.Equal(other.strand)
}

func (l Spliced[R, S]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v:", l.refid)
	for i, ex := range l.exons() {
		if i > 0 {
			b.WriteByte(';')
		}
		exStart := l.start + ex.start
		fmt.Fprintf(&b, "%d-%d", exStart, exStart+ex.length)
	}
	fmt.Fprintf(&b, "%v", l.strand)
	return b.String()
}

// SplicedWithStrand returns l with its strand replaced by st, which may
// be of a different strand capability type.
func SplicedWithStrand[R comparable, S1 strand.Stranded[S1], S2 strand.Stranded[S2]](l Spliced[R, S1], st S2) Spliced[R, S2] {
	return Spliced[R, S2]{
		refid:       l.refid,
		start:       l.start,
		exon0Length: l.exon0Length,
		inexes:      l.inexes,
		strand:      st,
	}
}

var (
	splicedRE = regexp.MustCompile(`^(.*):(\d+)-(\d+)((?:;\d+-\d+)*)(\([+-]\))?$`)
	exonRE    = regexp.MustCompile(`;(\d+)-(\d+)`)
)

// ParseSpliced parses the display format
// "chr:start0-end0;start1-end1;...(+/-/.)". The parsed exon structure is
// rebuilt through the validating constructor, so structurally invalid
// exon lists fail with the corresponding splicing error.
func ParseSpliced[R ~string, S strand.Stranded[S]](s string) (Spliced[R, S], error) {
	m := splicedRE.FindStringSubmatch(s)
	if m == nil {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, ErrBadAnnot)
	}

	firstStart, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	firstEnd, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	var zero S
	st, err := zero.FromSuffix(m[5])
	if err != nil {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	if firstEnd < firstStart {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, ErrEndBeforeStart)
	}

	starts := []int64{0}
	lengths := []int64{firstEnd - firstStart}
	for _, em := range exonRE.FindAllStringSubmatch(m[4], -1) {
		nextStart, err := strconv.ParseInt(em[1], 10, 64)
		if err != nil {
			return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
		}
		nextEnd, err := strconv.ParseInt(em[2], 10, 64)
		if err != nil {
			return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
		}
		if nextEnd < nextStart {
			return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, ErrEndBeforeStart)
		}
		starts = append(starts, nextStart-firstStart)
		lengths = append(lengths, nextEnd-nextStart)
	}

	l, err := SplicedWithLengthsStarts(R(m[1]), firstStart, lengths, starts, st)
	if err != nil {
		return Spliced[R, S]{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	return l, nil
}
