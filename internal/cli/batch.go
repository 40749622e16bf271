package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clauseguard/internal/model"
	"github.com/clauseguard/clauseguard/internal/pipeline"
	"github.com/clauseguard/clauseguard/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple contracts in parallel",
	Long: `Batch analyzes a set of contracts concurrently:
- Pass a directory to analyze every .txt/.html/.htm file in it
- Or pass a text file listing one contract path per line
- Each contract gets its own JSON and Markdown report

Example:
  clauseguard batch ./contracts
  clauseguard batch contracts.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clauseguard-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noAudit, "no-audit", false, "skip recording analyses in the local audit log")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable AI negotiation guidance")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	_, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := collectContracts(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no contracts found in %s", input)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	fmt.Fprintf(os.Stderr, "Analyzing %d contracts with %d workers\n", len(paths), concurrency)
	fmt.Fprintf(os.Stderr, "Output: %s\n\n", outputDir)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	pool := worker.NewPool(concurrency)
	pool.Start()
	go func() {
		for _, path := range paths {
			pool.Submit(&analyzeJob{pipeline: p, path: path})
		}
		pool.Finish()
	}()

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0
	for _, result := range pool.Wait() {
		r := result.(*analyzeResult)
		if r.err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.path, r.err)
			continue
		}

		slug := sanitizeFilename(r.path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")
		if err := renderer.RenderJSON(r.report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", r.path, err)
			continue
		}
		if err := renderer.RenderMarkdown(r.report, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", r.path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "OK   %s: %s, risk %s, verdict %s\n",
			filepath.Base(r.path), r.report.ContractType, r.report.OverallRisk, r.report.Decision.Verdict)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed, reports in %s\n",
		successCount, failureCount, outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d contracts failed", failureCount, len(paths))
	}
	return nil
}

// analyzeJob runs one contract through the shared pipeline.
type analyzeJob struct {
	pipeline *pipeline.Pipeline
	path     string
}

type analyzeResult struct {
	path   string
	report *model.Report
	err    error
}

func (r *analyzeResult) GetError() error { return r.err }

func (j *analyzeJob) Execute(ctx context.Context) worker.Result {
	report, err := j.pipeline.AnalyzeFile(ctx, j.path)
	return &analyzeResult{path: j.path, report: report, err: err}
}

// collectContracts resolves the batch input into contract paths. A
// directory yields its contract files; anything else is read as a list
// of paths, one per line.
func collectContracts(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", input, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", input, err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".txt", ".html", ".htm", ".md":
				paths = append(paths, filepath.Join(input, e.Name()))
			}
		}
		return paths, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read list %s: %w", input, err)
	}
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// sanitizeFilename derives a report file stem from a contract path.
func sanitizeFilename(path string) string {
	s := filepath.Base(path)
	s = strings.TrimSuffix(s, filepath.Ext(s))

	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "contract"
	}
	return s
}
