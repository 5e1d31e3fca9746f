package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimpilot/fnolagent/internal/model"
	"github.com/claimpilot/fnolagent/internal/pipeline"
	"github.com/claimpilot/fnolagent/internal/store"
)

var (
	outJSON     string
	timeout     time.Duration
	noCache     bool
	llmProvider string
	llmModel    string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <document>",
	Short: "Process a single FNOL document and print the routing decision",
	Long: `Process runs one FNOL document (PDF or plain text) through the full
claims pipeline:
- Extract raw text from the document
- Extract structured claim fields (rule engine, optionally LLM)
- Validate mandatory fields and cross-field consistency
- Route the claim to a handling queue with reasoning

Example:
  fnolagent process claim.pdf
  fnolagent process claim.txt --json record.json
  fnolagent process claim.pdf --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outJSON, "json", "", "write the claim record JSON to this path (default: stdout)")
	processCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall processing timeout")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")

	// LLM flags
	processCmd.Flags().StringVar(&llmProvider, "llm", "", "enable LLM extraction with this provider (openai)")
	processCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default: gpt-4o-mini)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if err := cfg.applyLLM(llmProvider, llmModel); err != nil {
		return err
	}
	cfg.initLogging()

	st := store.New()
	p := pipeline.NewPipeline(cfg.Config, st)

	record, err := p.Process(ctx, path, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	if err := writeRecord(record, outJSON); err != nil {
		return err
	}

	if verbose {
		printSummary(record)
	}
	return nil
}

// writeRecord emits the claim record as indented JSON
func writeRecord(record *model.ClaimRecord, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote claim record: %s\n", path)
	return nil
}

func printSummary(record *model.ClaimRecord) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "✓ Claim %s routed to: %s\n", record.ClaimID, record.Route)
	fmt.Fprintf(os.Stderr, "  Reasoning: %s\n", record.Reasoning)
	if len(record.MissingFields) > 0 {
		fmt.Fprintf(os.Stderr, "  Missing fields: %s\n", strings.Join(record.MissingFields, ", "))
	}
	if len(record.Inconsistencies) > 0 {
		fmt.Fprintf(os.Stderr, "  Inconsistencies: %s\n", strings.Join(record.Inconsistencies, "; "))
	}
}
