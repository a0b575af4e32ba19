package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/strand"
)

func newExonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exons <spliced>",
		Short: "List the exons of a spliced location",
		Long: `Print the exons of a spliced location as contiguous regions, one per
line, in transcription order: for a reverse strand location the
rightmost exon on the reference comes first.`,
		Example: `  seqloc exons "chrV:166236-166771;166874-166885(-)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExons(args[0])
		},
	}
}

func runExons(locStr string) error {
	l, err := annot.ParseSpliced[string, strand.Strand](locStr)
	if err != nil {
		return fmt.Errorf("spliced location %q: %w", locStr, err)
	}
	exons, err := l.ExonContigs()
	if err != nil {
		return fmt.Errorf("exons of %v: %w", l, err)
	}
	for _, e := range exons {
		fmt.Println(e)
	}
	return nil
}
