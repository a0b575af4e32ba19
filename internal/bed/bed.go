// Package bed converts BED annotation lines to and from spliced
// locations. BED12 block columns carry the same exon structure as a
// spliced location, so the two representations round trip; shorter
// BED6 lines convert to single-exon locations.
package bed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/strand"
)

var (
	// ErrFields means a line has too few or unparsable columns.
	ErrFields = errors.New("malformed BED line")
	// ErrBlocks means the BED12 block columns are inconsistent.
	ErrBlocks = errors.New("inconsistent BED blocks")
)

// Record is one BED line. Lines with fewer than 12 columns leave the
// later fields at their zero values and BlockCount at 0.
type Record struct {
	Chrom      string
	ChromStart int64
	ChromEnd   int64
	Name       string
	Score      string
	Strand     strand.Strand
	ThickStart int64
	ThickEnd   int64
	ItemRGB    string
	BlockCount int
	BlockSizes []int64
	BlockStart []int64
}

// ParseLine parses one tab-separated BED line with at least the first
// three columns. A 12-column line must have matching block columns.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("%d columns: %w", len(fields), ErrFields)
	}

	var rec Record
	var err error
	rec.Chrom = fields[0]
	if rec.ChromStart, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return Record{}, fmt.Errorf("chromStart %q: %w", fields[1], ErrFields)
	}
	if rec.ChromEnd, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return Record{}, fmt.Errorf("chromEnd %q: %w", fields[2], ErrFields)
	}
	if len(fields) > 3 {
		rec.Name = fields[3]
	}
	if len(fields) > 4 {
		rec.Score = fields[4]
	}
	if len(fields) > 5 && fields[5] != "" {
		st, err := strand.FromChar(fields[5][0])
		if err != nil {
			return Record{}, fmt.Errorf("strand %q: %w", fields[5], err)
		}
		rec.Strand = st
	}
	if len(fields) < 12 {
		return rec, nil
	}

	if rec.ThickStart, err = strconv.ParseInt(fields[6], 10, 64); err != nil {
		return Record{}, fmt.Errorf("thickStart %q: %w", fields[6], ErrFields)
	}
	if rec.ThickEnd, err = strconv.ParseInt(fields[7], 10, 64); err != nil {
		return Record{}, fmt.Errorf("thickEnd %q: %w", fields[7], ErrFields)
	}
	rec.ItemRGB = fields[8]
	if rec.BlockCount, err = strconv.Atoi(fields[9]); err != nil {
		return Record{}, fmt.Errorf("blockCount %q: %w", fields[9], ErrFields)
	}
	if rec.BlockSizes, err = parseIntList(fields[10]); err != nil {
		return Record{}, fmt.Errorf("blockSizes %q: %w", fields[10], ErrFields)
	}
	if rec.BlockStart, err = parseIntList(fields[11]); err != nil {
		return Record{}, fmt.Errorf("blockStarts %q: %w", fields[11], ErrFields)
	}
	if len(rec.BlockSizes) != rec.BlockCount || len(rec.BlockStart) != rec.BlockCount {
		return Record{}, fmt.Errorf("blockCount %d with %d sizes and %d starts: %w",
			rec.BlockCount, len(rec.BlockSizes), len(rec.BlockStart), ErrBlocks)
	}
	return rec, nil
}

// parseIntList parses a BED comma-separated integer list, which may
// carry a trailing comma.
func parseIntList(s string) ([]int64, error) {
	s = strings.TrimSuffix(s, ",")
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Spliced converts the record to a spliced location: block columns
// become the exon structure, and a record without blocks becomes a
// single exon spanning [ChromStart, ChromEnd).
func (r Record) Spliced() (annot.SeqSplicedOptional, error) {
	if r.BlockCount == 0 {
		return annot.NewSpliced(r.Chrom, r.ChromStart, r.ChromEnd-r.ChromStart, r.Strand), nil
	}
	l, err := annot.SplicedWithLengthsStarts(r.Chrom, r.ChromStart, r.BlockSizes, r.BlockStart, r.Strand)
	if err != nil {
		return annot.SeqSplicedOptional{}, err
	}
	if want := r.ChromEnd - r.ChromStart; l.Length() != want {
		return annot.SeqSplicedOptional{}, fmt.Errorf("blocks span %d of %d: %w", l.Length(), want, ErrBlocks)
	}
	return l, nil
}

// FromSpliced converts a spliced location to a full BED12 record named
// name. The thick range covers the whole location and the item color is
// left black.
func FromSpliced(l annot.SeqSplicedOptional, name string) Record {
	return Record{
		Chrom:      l.Refid(),
		ChromStart: l.Start(),
		ChromEnd:   l.Start() + l.Length(),
		Name:       name,
		Score:      "0",
		Strand:     l.Strand(),
		ThickStart: l.Start(),
		ThickEnd:   l.Start() + l.Length(),
		ItemRGB:    "0",
		BlockCount: l.ExonCount(),
		BlockSizes: l.ExonLengths(),
		BlockStart: l.ExonStarts(),
	}
}

// String formats the record as a tab-separated BED12 line.
func (r Record) String() string {
	name := r.Name
	if name == "" {
		name = "."
	}
	score := r.Score
	if score == "" {
		score = "0"
	}
	rgb := r.ItemRGB
	if rgb == "" {
		rgb = "0"
	}
	return strings.Join([]string{
		r.Chrom,
		strconv.FormatInt(r.ChromStart, 10),
		strconv.FormatInt(r.ChromEnd, 10),
		name,
		score,
		r.Strand.Symbol(),
		strconv.FormatInt(r.ThickStart, 10),
		strconv.FormatInt(r.ThickEnd, 10),
		rgb,
		strconv.Itoa(r.BlockCount),
		formatIntList(r.BlockSizes),
		formatIntList(r.BlockStart),
	}, "\t")
}

func formatIntList(vs []int64) string {
	if len(vs) == 0 {
		return ""
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",") + ","
}

// Reader reads BED records line by line, skipping comments, track
// lines and blank lines.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader reads BED lines from r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return &Reader{scanner: scanner}
}

// Read returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Read() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}
