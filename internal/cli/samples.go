package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claimpilot/fnolagent/internal/samples"
)

var samplesDir string

// samplesCmd represents the samples command
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Generate sample FNOL documents",
	Long: `Generate the bundled sample FNOL documents, one per routing scenario:
fast-track, manual review, investigation, specialist queue, and standard
processing. Useful for trying the pipeline without real claim documents.

Example:
  fnolagent samples
  fnolagent samples --dir ./sample_fnol`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := samples.Generate(samplesDir); err != nil {
			return fmt.Errorf("generate samples: %w", err)
		}
		for _, s := range samples.All() {
			fmt.Printf("✓ %s\n", s.Filename)
		}
		fmt.Printf("\nWrote %d sample documents to %s\n", len(samples.All()), samplesDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
	samplesCmd.Flags().StringVar(&samplesDir, "dir", "sample_fnol", "output directory for sample documents")
}
