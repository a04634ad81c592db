package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the insight service configuration. Environment variables
// are parsed from the INSIGHT_SERVER prefix, e.g.
// INSIGHT_SERVER_COHERE_API_KEY, INSIGHT_SERVER_HTTP_PORT.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Cohere Configuration
	CohereAPIKey      string  `envconfig:"COHERE_API_KEY" default:""`
	CohereBaseURL     string  `envconfig:"COHERE_BASE_URL" default:""`
	CohereModel       string  `envconfig:"COHERE_MODEL" default:"command-r-08-2024"`
	CohereTemperature float64 `envconfig:"COHERE_TEMPERATURE" default:"0.7"`
	CohereMaxTokens   int     `envconfig:"COHERE_MAX_TOKENS" default:"200"`

	// Embedding Configuration
	EmbedModel     string `envconfig:"EMBED_MODEL" default:"embed-english-v3.0"`
	EmbedDimension int    `envconfig:"EMBED_DIMENSION" default:"1024"`

	// Corpus / Vector Store Configuration
	CorpusPath         string `envconfig:"CORPUS_PATH" default:"data/astrological_corpus.json"`
	VectorStoreEnabled bool   `envconfig:"VECTOR_STORE_ENABLED" default:"true"`
	TopKResults        int    `envconfig:"TOP_K_RESULTS" default:"3"`

	// Pipeline behavior
	TranslationEnabled bool `envconfig:"TRANSLATION_ENABLED" default:"true"`
	DailyCacheLookup   bool `envconfig:"DAILY_CACHE_LOOKUP" default:"true"`
	UseFallback        bool `envconfig:"USE_FALLBACK" default:"true"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// New creates a Config from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("INSIGHT_SERVER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("cohere_model", cfg.CohereModel).
		Str("embed_model", cfg.EmbedModel).
		Int("embed_dimension", cfg.EmbedDimension).
		Bool("cohere_key_present", cfg.CohereAPIKey != "").
		Bool("vector_store_enabled", cfg.VectorStoreEnabled).
		Bool("translation_enabled", cfg.TranslationEnabled).
		Bool("daily_cache_lookup", cfg.DailyCacheLookup).
		Int("top_k", cfg.TopKResults).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config with defaults suited to unit tests: no
// external backends, retrieval and lookup enabled.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:           8080,
		CohereModel:        "command-r-08-2024",
		CohereTemperature:  0.7,
		CohereMaxTokens:    200,
		EmbedModel:         "embed-english-v3.0",
		EmbedDimension:     1024,
		VectorStoreEnabled: true,
		TopKResults:        3,
		TranslationEnabled: true,
		DailyCacheLookup:   true,
		UseFallback:        true,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
