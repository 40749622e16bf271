package llm

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/clauseguard/clauseguard/internal/model"
)

// Enricher wraps a Provider with memoization and rate limiting.
// Enrichment is best-effort: any provider failure yields deterministic
// fallback guidance and a warning, never an aborted analysis.
type Enricher struct {
	provider Provider
	config   Config
	cache    *cache.Cache
	limiter  *rate.Limiter
}

// NewEnricher builds an enricher from configuration. A nil provider
// (empty Provider name) produces a disabled enricher.
func NewEnricher(config Config) (*Enricher, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(config.CacheTTLMinutes) * time.Minute
	if ttl == 0 {
		ttl = 60 * time.Minute
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Enricher{
		provider: provider,
		config:   config,
		cache:    cache.New(ttl, 2*ttl),
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Enabled reports whether a provider is configured.
func (e *Enricher) Enabled() bool {
	return e != nil && e.provider != nil
}

// Enrich returns guidance for the flagged clauses plus a status block
// describing how the guidance was produced. Cached clauses are served
// without touching the provider; only cache misses are sent out, in one
// batch request.
func (e *Enricher) Enrich(ctx context.Context, reqs []ClauseRequest) ([]model.ClauseEnrichment, model.EnrichmentStatus) {
	status := model.EnrichmentStatus{Enabled: e.Enabled()}
	if !e.Enabled() || len(reqs) == 0 {
		return nil, status
	}
	status.Provider = e.provider.Name()
	status.Model = e.config.Model

	results := make([]model.ClauseEnrichment, len(reqs))
	var misses []ClauseRequest
	var missIdx []int
	for i, req := range reqs {
		if hit, ok := e.cache.Get(cacheKey(req)); ok {
			enr := hit.(model.ClauseEnrichment)
			enr.ClauseID = req.ID
			results[i] = enr
			continue
		}
		misses = append(misses, req)
		missIdx = append(missIdx, i)
	}

	if len(misses) > 0 {
		enriched, err := e.fetch(ctx, misses)
		if err != nil {
			status.Fallback = true
			status.Warnings = append(status.Warnings,
				fmt.Sprintf("%s enrichment failed, using built-in guidance: %v", e.provider.Name(), err))
			for j, req := range misses {
				results[missIdx[j]] = Fallback(req)
			}
		} else {
			for j, enr := range enriched {
				results[missIdx[j]] = enr
				e.cache.Set(cacheKey(misses[j]), enr, cache.DefaultExpiration)
			}
		}
	}

	return results, status
}

// fetch performs the single rate-limited provider call.
func (e *Enricher) fetch(ctx context.Context, reqs []ClauseRequest) ([]model.ClauseEnrichment, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	enriched, err := e.provider.EnrichClauses(ctx, reqs)
	if err != nil {
		return nil, err
	}
	if len(enriched) != len(reqs) {
		return nil, fmt.Errorf("provider returned %d enrichments for %d clauses", len(enriched), len(reqs))
	}
	return enriched, nil
}

// cacheKey is stable across runs for the same clause content, so a
// re-analysis of an unchanged contract reuses prior guidance.
func cacheKey(req ClauseRequest) string {
	sum := sha256.Sum256([]byte(string(req.Type) + "\x00" + req.Text))
	return fmt.Sprintf("%x", sum)
}
