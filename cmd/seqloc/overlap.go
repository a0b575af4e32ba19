package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/bed"
	"github.com/inodb/seqloc/internal/strand"
)

func newOverlapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <file.bed> <loc>",
		Short: "Find BED annotations overlapping a location",
		Long: `Load a BED file and print every record whose extent overlaps the
given location, as "name<TAB>location" pairs. Overlap is judged on the
reference extent; introns count.`,
		Example: `  seqloc overlap genes.bed chrXVI:173155
  seqloc overlap genes.bed chrXVI:173000-175000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlap(args[0], args[1])
		},
	}
}

type namedLoc struct {
	name string
	loc  annot.SeqSplicedOptional
}

func runOverlap(path, locStr string) error {
	query, err := annot.ParseLoc[string, strand.Strand](locStr)
	if err != nil {
		return fmt.Errorf("location %q: %w", locStr, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	// Intern chromosome names so the index shares one string per
	// chromosome across all records.
	refs := annot.NewRefSet()
	ix := annot.NewSpanIndex[string, namedLoc]()
	r := bed.NewReader(f)
	n := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		rec.Chrom = refs.Intern(rec.Chrom)
		l, err := rec.Spliced()
		if err != nil {
			logger.Warn("skipping inconvertible record",
				zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		ix.Add(l.Span(), namedLoc{name: rec.Name, loc: l})
		n++
	}
	ix.Build()
	logger.Debug("indexed annotations", zap.Int("count", n), zap.String("file", path))

	for _, hit := range ix.FindSpan(query.Span()) {
		name := hit.name
		if name == "" {
			name = "."
		}
		fmt.Printf("%s\t%v\n", name, hit.loc)
	}
	return nil
}
