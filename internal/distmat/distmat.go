// Package distmat stores pairwise distance matrices: a list of taxon
// names together with square or triangular distances.
package distmat

import (
	"errors"
	"fmt"
)

var (
	// ErrLength means names and distances differ in length.
	ErrLength = errors.New("names and matrix do not have matching length")
	// ErrShape means the distance rows fit none of the accepted shapes.
	ErrShape = errors.New("matrix has unrecognized shape")
)

// Shape is the storage layout of the distances: a full square matrix,
// or a lower/upper triangle excluding the diagonal. Square matrices are
// assumed symmetric; this is not checked.
type Shape int8

const (
	Square Shape = iota
	Lower
	Upper
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Shape(%d)", int8(s))
	}
}

// Matrix is a distance matrix: taxon names plus their pairwise
// distances in one of the accepted shapes.
type Matrix struct {
	Names     []string
	Distances [][]float64
	Shape     Shape
}

// New builds a matrix from names and distance rows, detecting the
// shape from the row lengths. There must be one row per name; each row
// must hold n entries (square), i entries for row i (lower triangle)
// or n-1-i entries (upper triangle).
func New(names []string, distances [][]float64) (*Matrix, error) {
	if len(names) != len(distances) {
		return nil, ErrLength
	}
	n := len(names)
	square, lower, upper := true, true, true
	for i, row := range distances {
		square = square && len(row) == n
		lower = lower && len(row) == i
		upper = upper && len(row) == n-1-i
	}
	var shape Shape
	switch {
	case square:
		shape = Square
	case lower:
		shape = Lower
	case upper:
		shape = Upper
	default:
		return nil, ErrShape
	}
	return &Matrix{Names: names, Distances: distances, Shape: shape}, nil
}

// Len is the number of taxa.
func (m *Matrix) Len() int { return len(m.Names) }

// index maps the symmetric pair (i, j) to the stored row and column.
// Triangular shapes store no diagonal, so i and j must differ there.
func (m *Matrix) index(i, j int) (int, int) {
	switch m.Shape {
	case Lower:
		if i == j {
			panic("distmat: diagonal access into triangular matrix")
		}
		return max(i, j), min(i, j)
	case Upper:
		if i == j {
			panic("distmat: diagonal access into triangular matrix")
		}
		return min(i, j), max(i, j) - min(i, j) - 1
	default:
		return i, j
	}
}

// At is the distance between taxa i and j. Indices are symmetric: for
// triangular shapes (i, j) and (j, i) read the same element.
func (m *Matrix) At(i, j int) float64 {
	ri, rj := m.index(i, j)
	return m.Distances[ri][rj]
}

// Set stores the distance between taxa i and j, symmetrically for
// triangular shapes.
func (m *Matrix) Set(i, j int, d float64) {
	ri, rj := m.index(i, j)
	m.Distances[ri][rj] = d
}
