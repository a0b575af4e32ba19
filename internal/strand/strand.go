// Package strand provides strand information for annotations on named
// sequences.
//
// Three capability levels are modeled as distinct types: ReqStrand for
// annotations that always have a known strand, Strand for annotations
// whose strand may be unknown, and NoStrand for annotations that
// definitively carry no strand information. Location types are generic
// over these, so the capability is part of an annotation's type.
package strand

import (
	"errors"
	"fmt"
)

// ErrInvalidStrand reports a character or display suffix that cannot be
// converted to a strand.
var ErrInvalidStrand = errors.New("invalid strand")

// Stranded is the constraint shared by the strand capability types
// ReqStrand, Strand and NoStrand.
//
// Equal and Same are distinct relations: two unknown strands are the
// "same" but are never equal. Round-trip and mapping tests compare with
// Same; Equal is the strict relation.
type Stranded[S any] interface {
	// Reverse returns the opposite strand. Unknown reverses to itself.
	Reverse() S
	// ReqStrand resolves to a definite strand, reporting false when the
	// strand is unknown.
	ReqStrand() (ReqStrand, bool)
	// Symbol is the BED/GFF strand column symbol: "+", "-" or ".".
	Symbol() string
	// Equal reports strict equality. Unknown is not equal to Unknown.
	Equal(S) bool
	// Same reports the looser relation where Unknown matches Unknown.
	Same(S) bool
	// FromSuffix parses the display suffix ("", "(+)" or "(-)") into a
	// strand of the receiver's type. The receiver's value is ignored;
	// it exists so generic parsing code can reach the right parser.
	FromSuffix(string) (S, error)

	fmt.Stringer
}

// ReqStrand is strand information for annotations that require a strand:
// it is always Forward or Reverse.
type ReqStrand int8

const (
	ReqForward ReqStrand = iota
	ReqReverse
)

// Reverse returns the opposite strand.
func (r ReqStrand) Reverse() ReqStrand {
	if r == ReqForward {
		return ReqReverse
	}
	return ReqForward
}

// ReqStrand returns the strand itself; it is always known.
func (r ReqStrand) ReqStrand() (ReqStrand, bool) { return r, true }

// Symbol returns "+" or "-".
func (r ReqStrand) Symbol() string {
	if r == ReqForward {
		return "+"
	}
	return "-"
}

// Strand widens to the optional-strand type, keeping the direction.
func (r ReqStrand) Strand() Strand {
	if r == ReqForward {
		return Forward
	}
	return Reverse
}

// Equal reports whether both strands are the same direction.
func (r ReqStrand) Equal(other ReqStrand) bool { return r == other }

// Same is identical to Equal for required strands.
func (r ReqStrand) Same(other ReqStrand) bool { return r == other }

// String returns the display suffix "(+)" or "(-)".
func (r ReqStrand) String() string { return "(" + r.Symbol() + ")" }

// FromSuffix parses "(+)" or "(-)". An empty suffix is an error: strand
// information is required.
func (ReqStrand) FromSuffix(s string) (ReqStrand, error) {
	switch s {
	case "(+)":
		return ReqForward, nil
	case "(-)":
		return ReqReverse, nil
	case "":
		return ReqForward, fmt.Errorf("missing strand: %w", ErrInvalidStrand)
	default:
		return ReqForward, fmt.Errorf("strand suffix %q: %w", s, ErrInvalidStrand)
	}
}

// Strand is strand information that may be unknown.
type Strand int8

const (
	Unknown Strand = iota
	Forward
	Reverse
)

// FromChar converts a strand column character to a Strand.
//
// '+', 'f' and 'F' are Forward; '-', 'r' and 'R' are Reverse; '.' and
// '?' are Unknown. Anything else is an error.
func FromChar(c byte) (Strand, error) {
	switch c {
	case '+', 'f', 'F':
		return Forward, nil
	case '-', 'r', 'R':
		return Reverse, nil
	case '.', '?':
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("character %q: %w", c, ErrInvalidStrand)
	}
}

// IsUnknown reports whether the strand is unknown.
func (s Strand) IsUnknown() bool { return s == Unknown }

// Reverse flips Forward and Reverse and fixes Unknown.
func (s Strand) Reverse() Strand {
	switch s {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	default:
		return Unknown
	}
}

// ReqStrand resolves to a required strand, reporting false for Unknown.
func (s Strand) ReqStrand() (ReqStrand, bool) {
	switch s {
	case Forward:
		return ReqForward, true
	case Reverse:
		return ReqReverse, true
	default:
		return ReqForward, false
	}
}

// Symbol returns "+", "-" or ".".
func (s Strand) Symbol() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	default:
		return "."
	}
}

// Equal reports whether both strands are Forward or both are Reverse.
// Unknown is not equal to anything, including Unknown.
func (s Strand) Equal(other Strand) bool {
	return (s == Forward && other == Forward) || (s == Reverse && other == Reverse)
}

// Same is like Equal except that Unknown matches Unknown.
func (s Strand) Same(other Strand) bool { return s == other }

// String returns "" for Unknown and "(+)" or "(-)" otherwise.
func (s Strand) String() string {
	if s == Unknown {
		return ""
	}
	return "(" + s.Symbol() + ")"
}

// FromSuffix parses "(+)", "(-)" or the empty suffix, which is Unknown.
func (Strand) FromSuffix(s string) (Strand, error) {
	switch s {
	case "(+)":
		return Forward, nil
	case "(-)":
		return Reverse, nil
	case "":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("strand suffix %q: %w", s, ErrInvalidStrand)
	}
}

// NoStrand is strand information for annotations that definitively have
// no strand; it is always unknown.
type NoStrand struct{}

// Reverse returns NoStrand unchanged.
func (NoStrand) Reverse() NoStrand { return NoStrand{} }

// ReqStrand always reports false.
func (NoStrand) ReqStrand() (ReqStrand, bool) { return ReqForward, false }

// Symbol returns ".".
func (NoStrand) Symbol() string { return "." }

// Equal is always false: an unknown strand equals nothing.
func (NoStrand) Equal(NoStrand) bool { return false }

// Same is always true: unknown strands are the same as each other.
func (NoStrand) Same(NoStrand) bool { return true }

// String returns the empty display suffix.
func (NoStrand) String() string { return "" }

// FromSuffix accepts only the empty suffix.
func (NoStrand) FromSuffix(s string) (NoStrand, error) {
	if s != "" {
		return NoStrand{}, fmt.Errorf("strand suffix %q on unstranded annotation: %w", s, ErrInvalidStrand)
	}
	return NoStrand{}, nil
}

// OnStrand applies a known feature strand to s: a Forward feature leaves
// s unchanged and a Reverse feature reverses it. This is how a feature's
// own strand flips the strand of positions mapped relative to it.
func OnStrand[S Stranded[S]](r ReqStrand, s S) S {
	if r == ReqReverse {
		return s.Reverse()
	}
	return s
}
