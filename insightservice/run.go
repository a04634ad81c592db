// Package insightservice boots the insight HTTP server.
package insightservice

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/siderealhq/insight-service/internal/api"
	"github.com/siderealhq/insight-service/internal/cohere"
	"github.com/siderealhq/insight-service/internal/config"
	"github.com/siderealhq/insight-service/internal/corpus"
	"github.com/siderealhq/insight-service/internal/health"
	"github.com/siderealhq/insight-service/internal/insight"
	"github.com/siderealhq/insight-service/internal/logger"
	"github.com/siderealhq/insight-service/internal/store/memstore"
	"github.com/siderealhq/insight-service/internal/translate"
)

// Run starts the insight service HTTP server and blocks until shutdown
// or error.
func Run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New("insight-service", cfg.Debug)

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("cohere_model", cfg.CohereModel).
		Str("corpus_path", cfg.CorpusPath).
		Bool("vector_store_enabled", cfg.VectorStoreEnabled).
		Msg("Insight service starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := cohere.New(cohere.Config{
		APIKey:     cfg.CohereAPIKey,
		BaseURL:    cfg.CohereBaseURL,
		ChatModel:  cfg.CohereModel,
		EmbedModel: cfg.EmbedModel,
	})
	if !client.Configured() {
		log.Warn().Msg("no Cohere API key, running on fallback templates only")
	}

	entries, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		log.Warn().Err(err).Msg("corpus unavailable, semantic retrieval disabled")
		entries = nil
	}
	ix := corpus.NewIndex(entries, client)
	if cfg.VectorStoreEnabled && client.Configured() {
		buildCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		if err := ix.Build(buildCtx); err != nil {
			log.Warn().Err(err).Msg("vector index build failed, semantic retrieval disabled")
		}
		cancel()
	}

	var llmHealthy func() bool
	if client.Configured() {
		checker := health.NewChecker(log, "cohere", client)
		go checker.Start(ctx, 30*time.Second)
		llmHealthy = checker.IsHealthy
	}

	st := memstore.New()
	trans := translate.New(client, cfg.TranslationEnabled)
	orch := insight.NewOrchestrator(st, ix, client, trans, insight.Options{
		Temperature:      cfg.CohereTemperature,
		MaxTokens:        cfg.CohereMaxTokens,
		TopK:             cfg.TopKResults,
		RetrievalEnabled: cfg.VectorStoreEnabled,
		CacheLookup:      cfg.DailyCacheLookup,
		UseFallback:      cfg.UseFallback,
	})

	router := api.NewRouter(st, ix, orch, client.Configured(), llmHealthy, cfg.TranslationEnabled)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}
