// Package genome holds plain genomic coordinate records: a Locus is a
// single position on a named contig, an Interval a half-open range. They
// carry no strand; the annot package is the home of stranded locations.
package genome

// Position is a 0-based coordinate on a contig.
type Position = int64

// Length is a span of positions.
type Length = int64

// Locus is a single position on a contig.
type Locus struct {
	Contig string   // contig identifier, e.g. a chromosome
	Pos    Position // position on the contig
}

// NewLocus creates a locus at pos on contig.
func NewLocus(contig string, pos Position) Locus {
	return Locus{Contig: contig, Pos: pos}
}

// Compare orders loci by contig name, then position.
func (l Locus) Compare(other Locus) int {
	if l.Contig != other.Contig {
		if l.Contig < other.Contig {
			return -1
		}
		return 1
	}
	return cmpInt64(l.Pos, other.Pos)
}

// Interval is a half-open range [Start, End) on a contig.
type Interval struct {
	Contig string   // contig identifier, e.g. a chromosome
	Start  Position // inclusive lower bound
	End    Position // exclusive upper bound
}

// NewInterval creates the interval [start, end) on contig.
func NewInterval(contig string, start, end Position) Interval {
	return Interval{Contig: contig, Start: start, End: end}
}

// Length of the interval.
func (iv Interval) Length() Length { return iv.End - iv.Start }

// Contains reports whether the locus falls within the interval.
func (iv Interval) Contains(l Locus) bool {
	return iv.Contig == l.Contig && l.Pos >= iv.Start && l.Pos < iv.End
}

// Compare orders intervals by contig name, then start, then end.
func (iv Interval) Compare(other Interval) int {
	if iv.Contig != other.Contig {
		if iv.Contig < other.Contig {
			return -1
		}
		return 1
	}
	if c := cmpInt64(iv.Start, other.Start); c != 0 {
		return c
	}
	return cmpInt64(iv.End, other.End)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
