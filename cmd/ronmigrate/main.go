package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/animgraph/ronmigrate"
)

var rootCmd = &cobra.Command{
	Use:   "ronmigrate",
	Short: "Rewrite RON animation graph assets to the new node schema",
	Long: `ronmigrate rewrites every matching file in the input directory from the
old node schema (name/ty/inner) to the new schema, where the type tag
becomes a mapping key wrapping the inner payload, and writes the
results under the same names in the output directory.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.Flags().String("input", "animation_graphs_old", "directory containing old-schema assets")
	rootCmd.Flags().String("output", "animation_graphs", "directory to write rewritten assets to")
	rootCmd.Flags().String("suffix", ".ron", "only process files whose name ends with this suffix")
	rootCmd.Flags().Bool("check", false, "list files that would change without writing anything")
	rootCmd.Flags().Bool("quiet", false, "suppress per-file output")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	suffix, err := cmd.Flags().GetString("suffix")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	rewriter, err := ronmigrate.New(ronmigrate.RewriterParams{})
	if err != nil {
		return err
	}

	results, batchErr := rewriter.ProcessDirectory(afero.NewOsFs(), ronmigrate.BatchParams{
		InputDir:  input,
		OutputDir: output,
		Suffix:    suffix,
		DryRun:    check,
	})

	if check {
		var changes int
		for _, res := range results {
			if res.Changed {
				changes++
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Name)
				}
			}
		}
		if batchErr != nil {
			return batchErr
		}
		if changes > 0 {
			return fmt.Errorf("ronmigrate: %d file(s) would change", changes)
		}
		return nil
	}

	if !quiet {
		for _, res := range results {
			ronmigrate.PrintResult(res)
		}
	}
	if batchErr != nil {
		return batchErr
	}
	if !quiet {
		ronmigrate.PrintSummary(results, rewriter.TotalMatches())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
