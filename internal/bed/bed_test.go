package bed

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/strand"
)

const rpl7bLine = "chrXVI\t173151\t174702\tYPL198W\t0\t+\t173151\t174702\t0\t3\t11,94,630,\t0,420,921,"

func TestParseLineBED12(t *testing.T) {
	rec, err := ParseLine(rpl7bLine)
	require.NoError(t, err)

	assert.Equal(t, "chrXVI", rec.Chrom)
	assert.Equal(t, int64(173151), rec.ChromStart)
	assert.Equal(t, int64(174702), rec.ChromEnd)
	assert.Equal(t, "YPL198W", rec.Name)
	assert.Equal(t, strand.Forward, rec.Strand)
	assert.Equal(t, 3, rec.BlockCount)
	assert.Equal(t, []int64{11, 94, 630}, rec.BlockSizes)
	assert.Equal(t, []int64{0, 420, 921}, rec.BlockStart)
}

func TestParseLineBED6(t *testing.T) {
	rec, err := ParseLine("chrV\t166236\t166885\tYER007C-A\t0\t-")
	require.NoError(t, err)
	assert.Equal(t, strand.Reverse, rec.Strand)
	assert.Equal(t, 0, rec.BlockCount)

	l, err := rec.Spliced()
	require.NoError(t, err)
	assert.Equal(t, "chrV:166236-166885(-)", l.String())
}

func TestParseLineBED3(t *testing.T) {
	rec, err := ParseLine("chrI\t100\t200")
	require.NoError(t, err)
	assert.Equal(t, strand.Unknown, rec.Strand)

	l, err := rec.Spliced()
	require.NoError(t, err)
	assert.Equal(t, "chrI:100-200", l.String())
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"chrI\t100",
		"chrI\tx\t200",
		"chrI\t100\t200\tname\t0\t*",
		"chrXVI\t173151\t174702\tYPL198W\t0\t+\t173151\t174702\t0\t3\t11,94,\t0,420,921,",
		"chrXVI\t173151\t174702\tYPL198W\t0\t+\t173151\t174702\t0\t3\t11,94,x,\t0,420,921,",
	} {
		_, err := ParseLine(line)
		assert.Error(t, err, "%q", line)
	}

	// Blocks must span the record's full range.
	rec, err := ParseLine("chrXVI\t173151\t174800\tYPL198W\t0\t+\t173151\t174800\t0\t3\t11,94,630,\t0,420,921,")
	require.NoError(t, err)
	_, err = rec.Spliced()
	assert.ErrorIs(t, err, ErrBlocks)
}

func TestSplicedRoundTrip(t *testing.T) {
	rec, err := ParseLine(rpl7bLine)
	require.NoError(t, err)

	l, err := rec.Spliced()
	require.NoError(t, err)
	assert.Equal(t, "chrXVI:173151-173162;173571-173665;174072-174702(+)", l.String())

	back := FromSpliced(l, rec.Name)
	assert.Equal(t, rpl7bLine, back.String())
}

func TestFromSpliced(t *testing.T) {
	l, err := annot.SplicedWithLengthsStarts("chrV", 166236, []int64{535, 11}, []int64{0, 638}, strand.Reverse)
	require.NoError(t, err)

	rec := FromSpliced(l, "YER007C-A")
	assert.Equal(t, "chrV\t166236\t166885\tYER007C-A\t0\t-\t166236\t166885\t0\t2\t535,11,\t0,638,", rec.String())

	back, err := rec.Spliced()
	require.NoError(t, err)
	assert.True(t, l.Equal(back))
}

func TestReader(t *testing.T) {
	in := strings.Join([]string{
		"track name=genes",
		"# comment",
		rpl7bLine,
		"",
		"chrV\t166236\t166885\tYER007C-A\t0\t-",
	}, "\n")

	r := NewReader(strings.NewReader(in))

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "YPL198W", rec.Name)

	rec, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "YER007C-A", rec.Name)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderBadLine(t *testing.T) {
	r := NewReader(strings.NewReader("chrI\t100\n"))
	_, err := r.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
