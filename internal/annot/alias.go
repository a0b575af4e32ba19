package annot

import "github.com/inodb/seqloc/internal/strand"

// Shorthand instantiations for the common case of string reference
// names.
type (
	// SeqPosStranded is a required-strand position on a reference
	// sequence named by a string.
	SeqPosStranded = Pos[string, strand.ReqStrand]
	// SeqPosOptional is a position whose strand may be unknown.
	SeqPosOptional = Pos[string, strand.Strand]
	// SeqPosUnstranded is a position with no strand information.
	SeqPosUnstranded = Pos[string, strand.NoStrand]

	// SeqContigStranded is a required-strand contiguous region on a
	// reference sequence named by a string.
	SeqContigStranded = Contig[string, strand.ReqStrand]
	// SeqContigOptional is a contiguous region whose strand may be
	// unknown.
	SeqContigOptional = Contig[string, strand.Strand]
	// SeqContigUnstranded is a contiguous region with no strand
	// information.
	SeqContigUnstranded = Contig[string, strand.NoStrand]

	// SeqSplicedStranded is a required-strand spliced region on a
	// reference sequence named by a string.
	SeqSplicedStranded = Spliced[string, strand.ReqStrand]
	// SeqSplicedOptional is a spliced region whose strand may be
	// unknown.
	SeqSplicedOptional = Spliced[string, strand.Strand]
	// SeqSplicedUnstranded is a spliced region with no strand
	// information.
	SeqSplicedUnstranded = Spliced[string, strand.NoStrand]
)
