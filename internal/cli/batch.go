package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimpilot/fnolagent/internal/pipeline"
	"github.com/claimpilot/fnolagent/internal/store"
	"github.com/claimpilot/fnolagent/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process every FNOL document in a directory in parallel",
	Long: `Batch processes a directory of FNOL documents concurrently:
- Collect every supported document (.pdf, .txt) in the directory
- Process documents in parallel with a configurable worker count
- Write one claim record JSON per document

Example:
  fnolagent batch ./inbox
  fnolagent batch ./inbox --concurrency 8 --output-dir ./records
  fnolagent batch ./inbox --llm openai`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fnol-records", "output directory for claim records")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")

	// LLM flags
	batchCmd.Flags().StringVar(&llmProvider, "llm", "", "enable LLM extraction with this provider (openai)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default: gpt-4o-mini)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if err := cfg.applyLLM(llmProvider, llmModel); err != nil {
		return err
	}
	cfg.initLogging()

	tasks, err := collectTasks(dir, cfg.Upload.AllowedExts)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no supported documents in %s (looking for %s)", dir, strings.Join(cfg.Upload.AllowedExts, ", "))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Processing %d documents with %d workers...\n", len(tasks), concurrency)

	st := store.New()
	p := pipeline.NewPipeline(cfg.Config, st)
	pool := worker.NewPool(concurrency, p.Process)

	outcomes := pool.Run(ctx, tasks)

	successCount := 0
	failureCount := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Task.DisplayName, outcome.Err)
			continue
		}
		successCount++

		recordPath := filepath.Join(outputDir, recordFilename(outcome.Task.DisplayName))
		data, err := json.MarshalIndent(outcome.Record, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record for %s: %w", outcome.Task.DisplayName, err)
		}
		if err := os.WriteFile(recordPath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write %s: %w", recordPath, err)
		}

		fmt.Fprintf(os.Stderr, "✓ %s → %s (%s)\n", outcome.Task.DisplayName, outcome.Record.Route, outcome.Record.ClaimID)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(tasks))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d documents failed", failureCount, len(tasks))
	}
	return nil
}

// collectTasks lists the supported documents in dir, sorted by name
func collectTasks(dir string, allowedExts []string) ([]worker.Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var tasks []worker.Task
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, allowed := range allowedExts {
			if ext == allowed {
				tasks = append(tasks, worker.Task{
					Path:        filepath.Join(dir, e.Name()),
					DisplayName: e.Name(),
				})
				break
			}
		}
	}
	return tasks, nil
}

func recordFilename(documentName string) string {
	base := strings.TrimSuffix(documentName, filepath.Ext(documentName))
	return base + ".record.json"
}
