package model

import "runtime"

// Config is the full configuration tree for an analysis run.
// Populated from defaults, then ~/.clauseguard/config.yaml, then
// CLAUSEGUARD_* environment variables, then CLI flags.
type Config struct {
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Audit       AuditConfig       `yaml:"audit" mapstructure:"audit"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
	Dir           string `yaml:"dir" mapstructure:"dir"`
}

// ConcurrencyConfig sizes the worker pools.
type ConcurrencyConfig struct {
	// ClauseWorkers bounds the per-clause analysis pool within one document.
	ClauseWorkers int `yaml:"clause_workers" mapstructure:"clause_workers"`
	// BatchWorkers bounds how many documents are analyzed in parallel.
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// LLMConfig configures the optional AI enrichment service.
// An empty Provider disables enrichment entirely.
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama, ""
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"-" mapstructure:"-"` // from environment only, never persisted
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds, single attempt
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	CacheTTLMinutes   int     `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
}

// AuditConfig controls the append-only analysis log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			Dir:           ".",
		},
		Concurrency: ConcurrencyConfig{
			ClauseWorkers: 4,
			BatchWorkers:  runtime.NumCPU(),
		},
		LLM: LLMConfig{
			Provider:          "", // enrichment disabled by default
			Timeout:           60,
			MaxTokens:         8000,
			RequestsPerSecond: 1,
			Burst:             2,
			CacheTTLMinutes:   60,
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "", // resolved to ~/.clauseguard/audit.db at open time
		},
	}
}
