// Package sequencing holds read-level types produced by sequencing
// pipelines.
package sequencing

import "fmt"

// ReadPairOrientation is the relative orientation of a mapped read
// pair: F1R2 means the forward-mapped first read comes before the
// reverse-mapped second read on the reference contig, and so on.
// OrientationNone marks pairs with no usable orientation, e.g. pairs
// mapped to different contigs.
type ReadPairOrientation int8

const (
	OrientationNone ReadPairOrientation = iota
	F1R2
	F2R1
	R1F2
	R2F1
	F1F2
	R1R2
	F2F1
	R2R1
)

var orientationNames = [...]string{
	OrientationNone: "None",
	F1R2:            "F1R2",
	F2R1:            "F2R1",
	R1F2:            "R1F2",
	R2F1:            "R2F1",
	F1F2:            "F1F2",
	R1R2:            "R1R2",
	F2F1:            "F2F1",
	R2R1:            "R2R1",
}

func (o ReadPairOrientation) String() string {
	if int(o) < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("ReadPairOrientation(%d)", int8(o))
	}
	return orientationNames[o]
}

// ParseReadPairOrientation is the inverse of String.
func ParseReadPairOrientation(s string) (ReadPairOrientation, error) {
	for o, name := range orientationNames {
		if s == name {
			return ReadPairOrientation(o), nil
		}
	}
	return OrientationNone, fmt.Errorf("unknown read pair orientation %q", s)
}

// Orientation derives the pair orientation from the mapped strands and
// reference order of the two reads. firstForward and secondForward give
// the strand of read 1 and read 2; read1First says whether read 1 maps
// before read 2 on the contig.
func Orientation(firstForward, secondForward, read1First bool) ReadPairOrientation {
	switch {
	case read1First && firstForward && !secondForward:
		return F1R2
	case read1First && firstForward && secondForward:
		return F1F2
	case read1First && !firstForward && !secondForward:
		return R1R2
	case read1First && !firstForward && secondForward:
		return R1F2
	case !read1First && secondForward && !firstForward:
		return F2R1
	case !read1First && secondForward && firstForward:
		return F2F1
	case !read1First && !secondForward && firstForward:
		return R2F1
	default:
		return R2R1
	}
}
