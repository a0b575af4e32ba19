package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/seqloc/internal/strand"
)

func TestPosAccessors(t *testing.T) {
	p := NewPos("chrIV", int64(683946), strand.Unknown)
	assert.Equal(t, "chrIV", p.Refid())
	assert.Equal(t, int64(683946), p.Pos())
	assert.Equal(t, int64(683946), p.Start())
	assert.Equal(t, int64(1), p.Length())
	assert.True(t, p.Strand().Same(strand.Unknown))

	q := NewPos("chrXV", int64(493433), strand.Forward)
	assert.Equal(t, "chrXV", q.Refid())
	assert.True(t, q.Strand().Same(strand.Forward))
}

func TestPosStringRepresentation(t *testing.T) {
	tests := []struct {
		pos  SeqPosOptional
		want string
	}{
		{NewPos("chrIV", int64(683946), strand.Unknown), "chrIV:683946"},
		{NewPos("chrIV", int64(683946), strand.Reverse), "chrIV:683946(-)"},
		{NewPos("chrXV", int64(493433), strand.Forward), "chrXV:493433(+)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.String())
		back, err := ParsePos[string, strand.Strand](tt.want)
		require.NoError(t, err)
		assert.True(t, tt.pos.Same(back), "round trip %q", tt.want)
	}

	unstranded := NewPos("chrIV", int64(683946), strand.NoStrand{})
	assert.Equal(t, "chrIV:683946", unstranded.String())
	backUn, err := ParsePos[string, strand.NoStrand]("chrIV:683946")
	require.NoError(t, err)
	assert.True(t, unstranded.Same(backUn))

	stranded := NewPos("chrIV", int64(683946), strand.ReqReverse)
	assert.Equal(t, "chrIV:683946(-)", stranded.String())
	backReq, err := ParsePos[string, strand.ReqStrand]("chrIV:683946(-)")
	require.NoError(t, err)
	assert.True(t, stranded.Same(backReq))
}

func TestPosParseErrors(t *testing.T) {
	_, err := ParsePos[string, strand.ReqStrand]("chrIV:683946")
	assert.ErrorIs(t, err, strand.ErrInvalidStrand)

	_, err = ParsePos[string, strand.NoStrand]("chrIV:683946(+)")
	assert.ErrorIs(t, err, strand.ErrInvalidStrand)

	_, err = ParsePos[string, strand.Strand]("chrIV")
	assert.ErrorIs(t, err, ErrBadAnnot)

	_, err = ParsePos[string, strand.Strand]("chrIV:pos")
	assert.ErrorIs(t, err, ErrBadAnnot)
}

func TestPosStrandConversion(t *testing.T) {
	p, err := ParsePos[string, strand.Strand]("chrIV:683946(-)")
	require.NoError(t, err)

	un := PosWithStrand(p, strand.NoStrand{})
	want, err := ParsePos[string, strand.NoStrand]("chrIV:683946")
	require.NoError(t, err)
	assert.True(t, un.Same(want))

	re := PosWithStrand(un, strand.ReqReverse)
	wantRe, err := ParsePos[string, strand.ReqStrand]("chrIV:683946(-)")
	require.NoError(t, err)
	assert.True(t, re.Same(wantRe))

	// Widening keeps the direction.
	opt := PosWithStrand(re, re.Strand().Strand())
	assert.True(t, opt.Same(p))
}

func TestPosShift(t *testing.T) {
	p := NewPos("chrIV", int64(683946), strand.ReqReverse)
	require.NoError(t, p.Shift(100))
	assert.Equal(t, "chrIV:683846(-)", p.String())
	require.NoError(t, p.Shift(-100))
	assert.Equal(t, "chrIV:683946(-)", p.String())

	f := NewPos("chrIV", int64(683946), strand.ReqForward)
	require.NoError(t, f.Shift(100))
	assert.Equal(t, "chrIV:684046(+)", f.String())

	u := NewPos("chrIV", int64(683946), strand.Unknown)
	assert.ErrorIs(t, u.Shift(100), ErrNoStrand)
}

func TestPosMapping(t *testing.T) {
	p := NewPos("chrIV", int64(683946), strand.ReqForward)

	rel, err := p.PosInto(NewPos("chrIV", int64(683946), strand.ReqReverse))
	require.NoError(t, err)
	assert.True(t, rel.Same(RelPos[strand.ReqStrand]{Off: 0, Strand: strand.ReqReverse}))

	back, err := p.PosOutof(rel)
	require.NoError(t, err)
	assert.True(t, back.Same(NewPos("chrIV", int64(683946), strand.ReqReverse)))

	_, err = p.PosInto(NewPos("chrIV", int64(683947), strand.ReqForward))
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = p.PosInto(NewPos("chrV", int64(683946), strand.ReqForward))
	assert.ErrorIs(t, err, ErrRefidMismatch)
	_, err = p.PosOutof(RelPos[strand.ReqStrand]{Off: 1, Strand: strand.ReqForward})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosContigIntersection(t *testing.T) {
	p := NewPos("chrIV", int64(683946), strand.ReqForward)

	_, err := p.ContigIntersection(Span[string]{Refid: "chrIV", Start: 683900, Length: 40})
	assert.ErrorIs(t, err, ErrNoOverlap)

	_, err = p.ContigIntersection(Span[string]{Refid: "chrV", Start: 683900, Length: 100})
	assert.ErrorIs(t, err, ErrRefidMismatch)

	_, err = p.ContigIntersection(Span[string]{Refid: "chrIV", Start: 683950, Length: 40})
	assert.ErrorIs(t, err, ErrNoOverlap)

	got, err := p.ContigIntersection(Span[string]{Refid: "chrIV", Start: 683900, Length: 100})
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	r := NewPos("chrIV", int64(683946), strand.ReqReverse)
	gotR, err := r.ContigIntersection(Span[string]{Refid: "chrIV", Start: 683900, Length: 100})
	require.NoError(t, err)
	assert.True(t, gotR.Equal(r))
}
