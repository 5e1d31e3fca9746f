package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claimpilot/fnolagent/internal/pipeline"
	"github.com/claimpilot/fnolagent/internal/samples"
	"github.com/claimpilot/fnolagent/internal/server"
	"github.com/claimpilot/fnolagent/internal/store"
)

var (
	serveAddr string
	sampleDir string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the FNOL intake HTTP API",
	Long: `Serve starts the claims intake API:
  POST /api/process-claim          process an uploaded document
  POST /api/process-sample/{name}  process a bundled sample document
  GET  /api/claims                 list processed claims
  GET  /api/sample-claims          list available sample documents
  GET  /api/health                 service health

Sample documents are generated on startup if the sample directory is empty.

Example:
  fnolagent serve
  fnolagent serve --addr :8080 --llm openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :5000)")
	serveCmd.Flags().StringVar(&sampleDir, "sample-dir", "", "sample document directory (default sample_fnol)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")

	// LLM flags
	serveCmd.Flags().StringVar(&llmProvider, "llm", "", "enable LLM extraction with this provider (openai)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default: gpt-4o-mini)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if sampleDir != "" {
		cfg.Server.SampleDir = sampleDir
	}
	if err := cfg.applyLLM(llmProvider, llmModel); err != nil {
		return err
	}
	cfg.initLogging()

	if err := ensureSamples(cfg.Server.SampleDir); err != nil {
		return err
	}

	st := store.New()
	p := pipeline.NewPipeline(cfg.Config, st)
	srv := server.New(cfg.Config, p, st)

	return srv.ListenAndServe()
}

// ensureSamples generates the bundled sample documents when none exist yet
func ensureSamples(dir string) error {
	names, err := samples.List(dir)
	if err != nil {
		return fmt.Errorf("list samples: %w", err)
	}
	if len(names) > 0 {
		return nil
	}
	if err := samples.Generate(dir); err != nil {
		return fmt.Errorf("generate samples: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Generated sample FNOL documents in %s\n", dir)
	return nil
}
