// Package variant describes genomic variants: a Kind classifies the
// change and carries its payload, a Variant locates a kind on a contig.
package variant

import (
	"fmt"

	"github.com/inodb/seqloc/internal/genome"
	"github.com/inodb/seqloc/internal/seq"
)

// Type tags the possible variant kinds.
type Type int8

const (
	TypeNone Type = iota
	TypeSNV
	TypeMNV
	TypeInsertion
	TypeDeletion
	TypeDuplication
	TypeInversion
)

func (t Type) String() string {
	switch t {
	case TypeSNV:
		return "SNV"
	case TypeMNV:
		return "MNV"
	case TypeInsertion:
		return "insertion"
	case TypeDeletion:
		return "deletion"
	case TypeDuplication:
		return "duplication"
	case TypeInversion:
		return "inversion"
	case TypeNone:
		return "none"
	default:
		return fmt.Sprintf("Type(%d)", int8(t))
	}
}

// Kind is one possible genomic variant: its type tag plus either the
// altered sequence (SNV, MNV, insertion) or the affected reference
// length (deletion, duplication, inversion). Build kinds through the
// constructors so the payload matches the tag.
type Kind struct {
	Typ Type
	Seq seq.Sequence  // alternate bases for SNV/MNV/Insertion
	Len genome.Length // affected length for Deletion/Duplication/Inversion
}

// SNV is a single nucleotide variant to base b.
func SNV(b seq.Base) Kind {
	return Kind{Typ: TypeSNV, Seq: seq.Sequence{b}}
}

// MNV is a multi nucleotide variant with alternate bases s.
func MNV(s seq.Sequence) Kind {
	return Kind{Typ: TypeMNV, Seq: s}
}

// Insertion of the bases s.
func Insertion(s seq.Sequence) Kind {
	return Kind{Typ: TypeInsertion, Seq: s}
}

// Deletion of length l.
func Deletion(l genome.Length) Kind {
	return Kind{Typ: TypeDeletion, Len: l}
}

// Duplication of length l.
func Duplication(l genome.Length) Kind {
	return Kind{Typ: TypeDuplication, Len: l}
}

// Inversion of length l.
func Inversion(l genome.Length) Kind {
	return Kind{Typ: TypeInversion, Len: l}
}

// None is the absence of a variant, e.g. a reference call.
func None() Kind {
	return Kind{Typ: TypeNone}
}

// Length is the number of reference positions the variant affects. SNVs
// and reference calls affect a single position; sequence-carrying kinds
// span their sequence length.
func (k Kind) Length() genome.Length {
	switch k.Typ {
	case TypeSNV, TypeNone:
		return 1
	case TypeMNV, TypeInsertion:
		return genome.Length(len(k.Seq))
	default:
		return k.Len
	}
}

func (k Kind) String() string {
	switch k.Typ {
	case TypeSNV, TypeMNV, TypeInsertion:
		return fmt.Sprintf("%v(%s)", k.Typ, k.Seq)
	case TypeDeletion, TypeDuplication, TypeInversion:
		return fmt.Sprintf("%v(%d)", k.Typ, k.Len)
	default:
		return k.Typ.String()
	}
}

// Variant locates a kind at a position on a contig.
type Variant struct {
	Locus genome.Locus
	Kind  Kind
}

// New creates a variant of kind k at pos on contig.
func New(contig string, pos genome.Position, k Kind) Variant {
	return Variant{Locus: genome.NewLocus(contig, pos), Kind: k}
}

// End is the exclusive upper bound of the affected reference range.
func (v Variant) End() genome.Position {
	return v.Locus.Pos + v.Kind.Length()
}

// Interval is the affected reference range.
func (v Variant) Interval() genome.Interval {
	return genome.NewInterval(v.Locus.Contig, v.Locus.Pos, v.End())
}

func (v Variant) String() string {
	return fmt.Sprintf("%s:%d %v", v.Locus.Contig, v.Locus.Pos, v.Kind)
}
