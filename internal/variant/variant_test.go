package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inodb/seqloc/internal/genome"
	"github.com/inodb/seqloc/internal/seq"
)

func TestKindLength(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want genome.Length
	}{
		{"snv", SNV('A'), 1},
		{"mnv", MNV(seq.Sequence("ACGT")), 4},
		{"insertion", Insertion(seq.Sequence("TTA")), 3},
		{"deletion", Deletion(12), 12},
		{"duplication", Duplication(7), 7},
		{"inversion", Inversion(30), 30},
		{"none", None(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Length())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SNV(A)", SNV('A').String())
	assert.Equal(t, "MNV(ACGT)", MNV(seq.Sequence("ACGT")).String())
	assert.Equal(t, "insertion(TTA)", Insertion(seq.Sequence("TTA")).String())
	assert.Equal(t, "deletion(12)", Deletion(12).String())
	assert.Equal(t, "none", None().String())
}

func TestVariantInterval(t *testing.T) {
	v := New("chr12", 25245350, SNV('T'))
	assert.Equal(t, "chr12:25245350 SNV(T)", v.String())
	assert.Equal(t, genome.NewInterval("chr12", 25245350, 25245351), v.Interval())

	d := New("chr7", 55174771, Deletion(15))
	assert.Equal(t, genome.Position(55174786), d.End())
	assert.True(t, d.Interval().Contains(genome.NewLocus("chr7", 55174780)))
	assert.False(t, d.Interval().Contains(genome.NewLocus("chr7", 55174786)))
}
