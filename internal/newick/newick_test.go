package newick

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, in := range []string{
		"A;",
		"A:0.5;",
		"(A:0.1,B:0.2):0.3;",
		"(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;",
		"(A,B,(C,D));",
		"((raccoon:19.2,bear:6.8):0.85,sea_lion:12);",
	} {
		tree, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, tree.String(), in)
	}
}

func TestParseStructure(t *testing.T) {
	tree, err := Parse("(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;")
	require.NoError(t, err)

	root := tree.Root
	assert.Equal(t, "F", root.Label)
	assert.True(t, math.IsNaN(root.Length))
	require.Len(t, root.Children, 3)

	assert.Equal(t, "A", root.Children[0].Label)
	assert.Equal(t, 0.1, root.Children[0].Length)
	assert.True(t, root.Children[0].Leaf())

	e := root.Children[2]
	assert.Equal(t, "E", e.Label)
	assert.Equal(t, 0.5, e.Length)
	require.Len(t, e.Children, 2)
	assert.Equal(t, "D", e.Children[1].Label)
}

func TestTaxa(t *testing.T) {
	tree, err := Parse("(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, tree.Taxa())
}

func TestParseWhitespace(t *testing.T) {
	tree, err := Parse(" ( A : 0.1 , B : 0.2 ) C ;\n")
	require.NoError(t, err)
	assert.Equal(t, "(A:0.1,B:0.2)C;", tree.String())
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		";",
		"A",
		"(A,B;",
		"(A,);",
		"(A:x,B);",
		"(A,B); trailing",
		"(A,B);;",
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, "%q", in)
	}
}
