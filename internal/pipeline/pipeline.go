// Package pipeline orchestrates a full contract analysis: ingestion,
// language normalization, segmentation, per-clause assessment,
// aggregation, financial estimation, the decision engine, template
// comparison, knowledge base lookup, and optional AI enrichment.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clauseguard/clauseguard/internal/audit"
	"github.com/clauseguard/clauseguard/internal/classify"
	"github.com/clauseguard/clauseguard/internal/compare"
	"github.com/clauseguard/clauseguard/internal/decision"
	"github.com/clauseguard/clauseguard/internal/extract"
	"github.com/clauseguard/clauseguard/internal/finance"
	"github.com/clauseguard/clauseguard/internal/hindi"
	"github.com/clauseguard/clauseguard/internal/ingest"
	"github.com/clauseguard/clauseguard/internal/kb"
	"github.com/clauseguard/clauseguard/internal/llm"
	"github.com/clauseguard/clauseguard/internal/model"
	"github.com/clauseguard/clauseguard/internal/risk"
	"github.com/clauseguard/clauseguard/internal/segment"
	"github.com/clauseguard/clauseguard/internal/worker"
)

// Pipeline holds the long-lived collaborators shared across analyses.
type Pipeline struct {
	cfg      *model.Config
	kb       *kb.KnowledgeBase
	enricher *llm.Enricher
	auditor  *audit.Logger
	renderer *Renderer
}

// New builds a pipeline from configuration.
func New(cfg *model.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	enricher, err := llm.NewEnricher(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("configure enrichment: %w", err)
	}

	auditor := audit.Disabled()
	if cfg.Audit.Enabled {
		auditor = audit.Open(cfg.Audit.Path)
	}

	return &Pipeline{
		cfg:      cfg,
		kb:       kb.New(),
		enricher: enricher,
		auditor:  auditor,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
	}, nil
}

// RenderReport writes the report to the requested outputs and prints a
// summary to stdout.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

// Close releases pipeline resources.
func (p *Pipeline) Close() {
	p.auditor.Close()
}

// AnalyzeFile reads a contract from disk and analyzes it. Extraction
// problems surface in the report text rather than as errors, so a batch
// run always produces a report per file.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	text := ingest.ExtractText(path)
	report, err := p.AnalyzeText(ctx, text)
	if err != nil {
		return nil, err
	}
	report.SourcePath = path
	p.auditor.LogAnalysis(path, auditSummary(report))
	return report, nil
}

// AnalyzeText runs the full analysis over raw contract text.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string) (*model.Report, error) {
	normalized, lang := hindi.Normalize(text)
	normalized = ingest.Clean(normalized)

	report := &model.Report{
		AnalyzedAt: time.Now().UTC(),
		Language:   lang,
		Entities:   extract.Entities(normalized),
	}

	report.Clauses = p.analyzeClauses(ctx, segment.Clauses(normalized))
	report.ContractType = classify.Contract(normalized)

	tiers := make([]model.RiskTier, len(report.Clauses))
	for i, c := range report.Clauses {
		tiers[i] = c.Risk
	}
	report.OverallRisk = risk.Aggregate(tiers)
	report.Financial = finance.Estimate(report.Clauses, report.Entities)
	report.Decision = decision.Decide(report.Clauses, report.Financial, report.ContractType)

	p.compareClauses(report)
	p.matchKnownClauses(report)
	p.enrichClauses(ctx, report)

	return report, nil
}

// analyzeClauses fans per-clause work across the pool and reassembles
// results in document order.
func (p *Pipeline) analyzeClauses(ctx context.Context, texts []string) []model.Clause {
	if len(texts) == 0 {
		return nil
	}

	pool := worker.NewPool(p.cfg.Concurrency.ClauseWorkers)
	pool.Start()
	go func() {
		for i, text := range texts {
			pool.Submit(&clauseJob{id: i + 1, text: text})
		}
		pool.Finish()
	}()
	results := pool.Wait()

	clauses := make([]model.Clause, 0, len(results))
	for _, r := range results {
		if cr, ok := r.(*clauseResult); ok {
			clauses = append(clauses, cr.clause)
		}
	}
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].ID < clauses[j].ID })
	return clauses
}

// clauseJob assesses one clause independently of its siblings.
type clauseJob struct {
	id   int
	text string
}

type clauseResult struct {
	clause model.Clause
}

func (r *clauseResult) GetError() error { return nil }

func (j *clauseJob) Execute(_ context.Context) worker.Result {
	assessment := risk.Assess(j.text)
	return &clauseResult{clause: model.Clause{
		ID:             j.id,
		Text:           j.text,
		Type:           classify.Clause(j.text),
		Risk:           assessment.Risk,
		Triggers:       assessment.Triggers,
		AmbiguousTerms: risk.Ambiguity(j.text),
		Modality:       risk.Modality(j.text),
	}}
}

// compareClauses scores flagged clauses against the curated safe
// templates for their type.
func (p *Pipeline) compareClauses(report *model.Report) {
	for _, c := range report.Clauses {
		if c.Risk == model.RiskLow {
			continue
		}
		if cmp := compare.Compare(c.ID, c.Text, c.Type); cmp != nil {
			report.Comparisons = append(report.Comparisons, *cmp)
		}
	}
}

// matchKnownClauses links High clauses to the nearest known example.
func (p *Pipeline) matchKnownClauses(report *model.Report) {
	for _, c := range report.Clauses {
		if c.Risk != model.RiskHigh {
			continue
		}
		for _, m := range p.kb.Search(c.Text, 1) {
			report.SimilarKnown = append(report.SimilarKnown, model.KBMatch{
				ClauseID: c.ID,
				Example:  m.Entry.Text,
				Type:     m.Entry.Type,
				Analysis: m.Entry.Analysis,
				Score:    m.Score,
			})
		}
	}
}

// enrichClauses requests AI guidance for every flagged clause in one
// batch. A disabled or failing provider leaves the report complete with
// fallback guidance.
func (p *Pipeline) enrichClauses(ctx context.Context, report *model.Report) {
	var reqs []llm.ClauseRequest
	for _, c := range report.Clauses {
		if c.Risk == model.RiskLow {
			continue
		}
		keywords := make([]string, 0, len(c.Triggers))
		for _, t := range c.Triggers {
			keywords = append(keywords, t.Keyword)
		}
		reqs = append(reqs, llm.ClauseRequest{
			ID:       c.ID,
			Text:     c.Text,
			Type:     c.Type,
			Risk:     c.Risk,
			Triggers: keywords,
		})
	}

	report.Enrichment, report.EnrichmentStatus = p.enricher.Enrich(ctx, reqs)
}

func auditSummary(report *model.Report) string {
	lang := "English"
	if report.Language.IsHindi {
		lang = "Hindi"
	}
	return fmt.Sprintf("%s, %s, %d clauses, overall risk %s, verdict %s",
		report.ContractType, lang, len(report.Clauses),
		report.OverallRisk, report.Decision.Verdict)
}
