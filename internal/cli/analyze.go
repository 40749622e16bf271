package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clauseguard/clauseguard/internal/model"
	"github.com/clauseguard/clauseguard/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noFooter    bool
	noAudit     bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single contract and generate a risk report",
	Long: `Analyze reads a contract document (plain text or HTML) and:
- Segments it into numbered clauses
- Classifies each clause and flags risky wording
- Estimates financial exposure in rupees
- Recommends SIGN, NEGOTIATE, or REJECT with an action plan
- Compares risky clauses against curated safe templates

Example:
  clauseguard analyze vendor-agreement.txt
  clauseguard analyze lease.html --json report.json --md report.md
  clauseguard analyze msa.txt --llm anthropic --llm-model claude-3-5-sonnet-20241022`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&noAudit, "no-audit", false, "skip recording this analysis in the local audit log")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable AI negotiation guidance")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n\n", timeout)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	report, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Found %d clauses (%d high risk)\n", len(report.Clauses), report.HighRiskCount())
		if report.EnrichmentStatus.Enabled {
			fmt.Fprintf(os.Stderr, "AI guidance via %s\n", report.EnrichmentStatus.Provider)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig lowers viper settings and flags into the config tree.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if noAudit {
		cfg.Audit.Enabled = false
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}
