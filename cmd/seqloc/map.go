package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/strand"
)

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <loc> <pos|offset>",
		Short: "Map a position between reference and feature coordinates",
		Long: `Map a position into or out of a location's own coordinate frame.

A reference position ("chrX:461839(-)") maps into the location's frame;
a bare offset ("10" or "10(-)") maps back out to the reference. Offset 0
is the location's first position in transcription order, so reverse
strand locations count down the reference. For spliced locations the
frame covers the exons only.`,
		Example: `  seqloc map "chrX:461829-462426(+)" "chrX:461839(-)"
  seqloc map "chrXVI:173151-173162;173571-173665;174072-174702(+)" 11`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(args[0], args[1])
		},
	}
}

var offsetRE = regexp.MustCompile(`^(-?\d+)(\([+-]\))?$`)

func runMap(locStr, posStr string) error {
	l, err := annot.ParseLoc[string, strand.Strand](locStr)
	if err != nil {
		return fmt.Errorf("location %q: %w", locStr, err)
	}

	if m := offsetRE.FindStringSubmatch(posStr); m != nil {
		off, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return fmt.Errorf("offset %q: %w", m[1], err)
		}
		st, err := strand.Strand(0).FromSuffix(m[2])
		if err != nil {
			return err
		}
		if st.IsUnknown() {
			st = strand.Forward
		}
		logger.Debug("mapping offset out of location frame",
			zap.String("loc", l.String()), zap.Int64("offset", off))
		p, err := l.PosOutof(annot.RelPos[strand.Strand]{Off: off, Strand: st})
		if err != nil {
			return fmt.Errorf("mapping offset %d out of %v: %w", off, l, err)
		}
		fmt.Println(p)
		return nil
	}

	p, err := annot.ParsePos[string, strand.Strand](posStr)
	if err != nil {
		return fmt.Errorf("position %q: %w", posStr, err)
	}
	logger.Debug("mapping position into location frame",
		zap.String("loc", l.String()), zap.String("pos", p.String()))
	rel, err := l.PosInto(p)
	if err != nil {
		return fmt.Errorf("mapping %v into %v: %w", p, l, err)
	}
	fmt.Println(rel)
	return nil
}
