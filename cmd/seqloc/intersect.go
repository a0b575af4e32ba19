package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/strand"
)

func newIntersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <loc> <region>",
		Short: "Intersect a location with a contiguous region",
		Long: `Clip a location to its overlap with a contiguous region.

The first location keeps its structure: a spliced location stays
spliced, with exons trimmed or dropped as the region requires. The
second argument contributes only its extent; its strand is ignored.`,
		Example: `  seqloc intersect "chrXVI:173151-173162;173571-173665;174072-174702(+)" chrXVI:173162-175000
  seqloc intersect "chr01:1000-2000(+)" chr01:1500-2500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntersect(args[0], args[1])
		},
	}
}

func runIntersect(locStr, regionStr string) error {
	l, err := annot.ParseLoc[string, strand.Strand](locStr)
	if err != nil {
		return fmt.Errorf("location %q: %w", locStr, err)
	}
	region, err := annot.ParseLoc[string, strand.Strand](regionStr)
	if err != nil {
		return fmt.Errorf("region %q: %w", regionStr, err)
	}
	span := region.Span()
	logger.Debug("intersecting", zap.String("loc", l.String()),
		zap.String("region", regionStr))

	var result fmt.Stringer
	switch loc := l.(type) {
	case annot.SeqPosOptional:
		result, err = loc.ContigIntersection(span)
	case annot.SeqContigOptional:
		result, err = loc.ContigIntersection(span)
	case annot.SeqSplicedOptional:
		result, err = loc.ContigIntersection(span)
	default:
		return fmt.Errorf("location %q: unsupported location type %T", locStr, l)
	}
	if err != nil {
		return fmt.Errorf("intersecting %v with %v: %w", l, span, err)
	}
	fmt.Println(result)
	return nil
}
