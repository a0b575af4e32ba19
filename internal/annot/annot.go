// Package annot provides positions and regions on named sequences
// (e.g. chromosomes), useful for annotating features in a genome.
//
// Three location types share one operation set: Pos is a single
// position, Contig a contiguous region and Spliced a multi-exon region.
// All three are generic over the reference sequence identifier type
// (plain strings, interned strings from a RefSet, or integer IDs) and
// over the strand capability type from the strand package.
//
// Coordinates are 0-based; regions are half-open, like BED. The display
// format is "refid:pos(+)" for positions, "refid:start-end(-)" for
// contiguous regions and "refid:s0-e0;s1-e1;...(+)" for spliced regions,
// with the strand suffix omitted when the strand is unknown.
package annot

import "errors"

// Parse errors for the display notation.
var (
	// ErrBadAnnot reports an annotation string that does not match the
	// location grammar.
	ErrBadAnnot = errors.New("invalid annotation string")
	// ErrEndBeforeStart reports a range whose ending position is before
	// its starting position.
	ErrEndBeforeStart = errors.New("ending position before starting position")
)

// Manipulation errors.
var (
	// ErrNoStrand reports an operation that requires a known strand on a
	// location whose strand is unknown.
	ErrNoStrand = errors.New("no strand information")
	// ErrRefidMismatch reports an operation across two different named
	// reference sequences.
	ErrRefidMismatch = errors.New("different reference sequences")
	// ErrOutOfRange reports a position or offset outside a location.
	ErrOutOfRange = errors.New("position outside location")
	// ErrNoOverlap reports an intersection with no overlapping region.
	ErrNoOverlap = errors.New("no overlap")
)

// Splicing structure errors, reported by the validating Spliced
// constructors.
var (
	// ErrNoExons reports a splicing structure with no exons at all.
	ErrNoExons = errors.New("no exons")
	// ErrBlockStart reports exon blocks that do not start at position 0.
	ErrBlockStart = errors.New("exons do not start at position 0")
	// ErrBlockMismatch reports differing numbers of exon starts and
	// exon lengths.
	ErrBlockMismatch = errors.New("number of exon starts != number of exon lengths")
	// ErrBlockOverlap reports exon blocks that overlap or abut without
	// an intervening intron.
	ErrBlockOverlap = errors.New("exon blocks overlap")
	// ErrIntronLength reports a non-positive intron length.
	ErrIntronLength = errors.New("invalid (non-positive) intron length")
	// ErrExonLength reports an invalid exon length: negative anywhere,
	// or zero outside the first position.
	ErrExonLength = errors.New("invalid (non-positive) exon length")
)
