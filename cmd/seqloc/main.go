// Package main provides the seqloc command-line tool for working with
// sequence locations: mapping positions between reference and feature
// coordinates, intersecting locations and converting BED annotations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "seqloc",
		Short:   "Coordinate algebra for sequence locations",
		Long:    "seqloc works with positions, contiguous regions and spliced regions on named reference sequences, written as chr:pos(+), chr:start-end(-) or chr:s0-e0;s1-e1(+).",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("building logger: %w", err)
				}
				logger = l
			}
			return initConfig()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newMapCmd())
	cmd.AddCommand(newIntersectCmd())
	cmd.AddCommand(newExonsCmd())
	cmd.AddCommand(newBedCmd())
	cmd.AddCommand(newOverlapCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads ~/.seqloc.yaml if present.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home, no config
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".seqloc")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	logger.Debug("loaded config", zap.String("file", viper.ConfigFileUsed()))
	return nil
}
