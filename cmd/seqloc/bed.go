package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/seqloc/internal/annot"
	"github.com/inodb/seqloc/internal/bed"
	"github.com/inodb/seqloc/internal/strand"
)

func newBedCmd() *cobra.Command {
	var reverse bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "bed [file]",
		Short: "Convert between BED lines and location notation",
		Long: `Convert BED annotation lines to spliced-location notation, one
"name<TAB>location" pair per line. With --reverse the input is
"name<TAB>location" pairs (or bare locations) and the output is BED12.
Reads standard input when no file is given.`,
		Example: `  seqloc bed genes.bed
  seqloc bed --reverse mapped.txt > genes.bed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = viper.GetBool("bed.strict")
			}
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			if reverse {
				return runBedFromLocs(in, os.Stdout, strict)
			}
			return runBedToLocs(in, os.Stdout, strict)
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "Convert locations back to BED12")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed lines instead of skipping them")

	return cmd
}

func runBedToLocs(in io.Reader, out io.Writer, strict bool) error {
	r := bed.NewReader(in)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if strict {
				return err
			}
			logger.Warn("skipping malformed BED line", zap.Error(err))
			continue
		}
		l, err := rec.Spliced()
		if err != nil {
			if strict {
				return fmt.Errorf("record %q: %w", rec.Name, err)
			}
			logger.Warn("skipping inconvertible record",
				zap.String("name", rec.Name), zap.Error(err))
			continue
		}
		name := rec.Name
		if name == "" {
			name = "."
		}
		fmt.Fprintf(out, "%s\t%v\n", name, l)
	}
}

func runBedFromLocs(in io.Reader, out io.Writer, strict bool) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name := "."
		locStr := text
		if i := strings.IndexByte(text, '\t'); i >= 0 {
			name, locStr = text[:i], text[i+1:]
		}
		l, err := annot.ParseSpliced[string, strand.Strand](locStr)
		if err != nil {
			if strict {
				return fmt.Errorf("line %d: location %q: %w", line, locStr, err)
			}
			logger.Warn("skipping unparsable location",
				zap.Int("line", line), zap.String("loc", locStr))
			continue
		}
		fmt.Fprintln(out, bed.FromSpliced(l, name))
	}
	return scanner.Err()
}
