// Command morris generates Morris elementary-effects sampling designs
// from a plain-text parameter file and writes the scaled design matrix
// to an output file. Grouped sampling and optimal-trajectory selection
// are enabled through flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/morris/design"
	"github.com/katalvlaran/morris/groups"
	"github.com/katalvlaran/morris/param"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		paramFile string
		output    string
		samples   int
		levels    int
		gridJump  int
		groupFile string
		kOptimal  int
		seed      int64
		delimiter string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "morris",
		Short: "Generate Morris elementary-effects sampling designs",
		Long: `morris builds one-at-a-time sampling trajectories for Morris'
elementary-effects screening method, optionally over factor groups and
optionally reduced to the most spread-out subset of trajectories, and
writes the design matrix scaled to the factor bounds.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := param.LoadParams(paramFile)
			if err != nil {
				return err
			}

			opts := design.Options{
				Samples:             samples,
				NumLevels:           levels,
				GridJump:            gridJump,
				OptimalTrajectories: kOptimal,
				Seed:                seed,
			}
			if groupFile != "" {
				if opts.Groups, err = groups.LoadDefinitions(groupFile); err != nil {
					return err
				}
			}

			m, err := design.New(space, opts)
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer out.Close()

			return m.Save(out, delimiter, precision)
		},
	}

	cmd.Flags().StringVarP(&paramFile, "paramfile", "p", "", "parameter file: one 'name lower upper' row per factor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path for the design matrix")
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of candidate trajectories")
	cmd.Flags().IntVarP(&levels, "levels", "l", 4, "number of grid levels")
	cmd.Flags().IntVar(&gridJump, "grid-jump", 2, "grid jump size in grid units")
	cmd.Flags().StringVarP(&groupFile, "group", "g", "", "optional group file: one 'name member...' row per group")
	cmd.Flags().IntVarP(&kOptimal, "k-optimal", "k", 0, "number of optimal trajectories to select (0 disables)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 selects a fixed default stream)")
	cmd.Flags().StringVar(&delimiter, "delimiter", param.DefaultDelimiter, "output field delimiter")
	cmd.Flags().IntVar(&precision, "precision", param.DefaultPrecision, "output decimal precision")

	for _, name := range []string{"paramfile", "output", "samples"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err) // flag names are compile-time constants
		}
	}

	return cmd
}
