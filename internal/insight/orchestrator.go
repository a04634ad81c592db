package insight

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/model"
	"github.com/siderealhq/insight-service/internal/store"
)

// Generator is the text-generation capability. Implementations return
// model.ErrCapabilityUnavailable when no backend was configured.
type Generator interface {
	Chat(ctx context.Context, prompt, preamble string, temperature float64, maxTokens int) (string, error)
}

// Retriever is the slice of the corpus index the orchestrator consumes.
type Retriever interface {
	Search(ctx context.Context, query string, filter model.ZodiacSign, topK int) ([]model.SearchResult, error)
	ZodiacInsights(sign model.ZodiacSign, limit int) []string
}

// Translator converts generated text to the target language. It never
// fails: the identity transform covers unsupported targets and backend
// errors alike.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) string
}

// Options tune the pipeline. RetrievalEnabled and CacheLookup map to the
// vector-store and daily-cache config flags; UseFallback disabled makes
// generation failures propagate to the caller.
type Options struct {
	Temperature      float64
	MaxTokens        int
	TopK             int
	RetrievalEnabled bool
	CacheLookup      bool
	UseFallback      bool
}

// Orchestrator drives one request through cache lookup, profile load,
// context retrieval, generation, translation, and recording.
type Orchestrator struct {
	store store.Store
	index Retriever
	gen   Generator
	trans Translator
	opts  Options
	now   func() time.Time
}

// NewOrchestrator wires the pipeline dependencies.
func NewOrchestrator(st store.Store, index Retriever, gen Generator, trans Translator, opts Options) *Orchestrator {
	return &Orchestrator{store: st, index: index, gen: gen, trans: trans, opts: opts, now: time.Now}
}

// Request is one insight generation call. Date zero means today; UserID
// empty skips personalization and recording.
type Request struct {
	Name     string
	Zodiac   model.ZodiacSign
	Language string
	UserID   string
	Details  *model.BirthDetails
	Date     time.Time
}

// GenerateInsight returns the insight text and whether it was served
// from the daily cache. Non-essential steps (retrieval, translation,
// recording) never fail the request; only generation with fallback
// disabled propagates an error.
func (o *Orchestrator) GenerateInsight(ctx context.Context, req Request) (string, bool, error) {
	day := req.Date
	if day.IsZero() {
		day = o.now()
	}

	if o.opts.CacheLookup {
		if cached, err := o.store.DailyInsights().Get(ctx, req.Zodiac, day); err == nil {
			log.Info().Str("zodiac", string(req.Zodiac)).Str("day", day.Format("2006-01-02")).Msg("daily cache hit")
			text := cached
			if req.Language != "en" {
				text = o.trans.Translate(ctx, text, req.Language, "en")
			}
			if req.UserID != "" {
				o.record(ctx, req, text, 0.5)
			}
			return text, true, nil
		}
	}

	log.Info().Str("name", req.Name).Str("zodiac", string(req.Zodiac)).Msg("generating new insight")

	var profile *model.UserProfile
	if req.UserID != "" {
		p, err := o.store.Profiles().Get(ctx, req.UserID)
		if err == nil {
			profile = p
			log.Info().Float64("score", p.Score).Int("insights", p.InsightsCount).Msg("personalizing from user profile")
		} else if !errors.Is(err, model.ErrNotFound) {
			log.Warn().Err(err).Str("user", req.UserID).Msg("profile load failed, continuing without personalization")
		}
	}

	contextTexts := o.retrieveContext(ctx, req.Zodiac, profile)

	text, err := o.generate(ctx, req, contextTexts, profile)
	if err != nil {
		return "", false, err
	}

	final := text
	if req.Language != "en" {
		final = o.trans.Translate(ctx, final, req.Language, "en")
	}

	// the cache holds the pre-translation text; history holds what the
	// user actually saw
	if err := o.store.DailyInsights().Set(ctx, req.Zodiac, day, text); err != nil {
		log.Warn().Err(err).Msg("daily cache write failed")
	}

	if req.UserID != "" {
		o.record(ctx, req, final, 1.0)
	}
	return final, false, nil
}

// retrieveContext is best-effort: any failure logs and yields an empty
// context rather than aborting the request.
func (o *Orchestrator) retrieveContext(ctx context.Context, sign model.ZodiacSign, profile *model.UserProfile) []string {
	if !o.opts.RetrievalEnabled || o.index == nil {
		return nil
	}

	query := BuildQuery(sign, profile)
	var texts []string
	results, err := o.index.Search(ctx, query, sign, o.opts.TopK)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("context retrieval failed, continuing without context")
	}
	for _, r := range results {
		texts = append(texts, r.Text)
	}
	if len(texts) == 0 {
		texts = o.index.ZodiacInsights(sign, 3)
	}
	return texts
}

func (o *Orchestrator) generate(ctx context.Context, req Request, contextTexts []string, profile *model.UserProfile) (string, error) {
	prompt := BuildPrompt(req.Name, req.Zodiac, contextTexts, profile)
	out, err := o.gen.Chat(ctx, prompt, Preamble, o.opts.Temperature, o.opts.MaxTokens)
	if err == nil {
		return out, nil
	}

	if errors.Is(err, model.ErrCapabilityUnavailable) {
		log.Info().Msg("generation backend not configured, using fallback templates")
		return FallbackInsight(req.Name, req.Zodiac, profile), nil
	}
	if o.opts.UseFallback {
		log.Error().Err(err).Msg("generation failed, using fallback templates")
		return FallbackInsight(req.Name, req.Zodiac, profile), nil
	}
	return "", err
}

// record appends the user-facing text to the profile history and applies
// the score delta. Failures are logged, never surfaced.
func (o *Orchestrator) record(ctx context.Context, req Request, text string, delta float64) {
	rec := store.RecordInsightRequest{
		UserID:  req.UserID,
		Zodiac:  req.Zodiac,
		Insight: text,
		Details: req.Details,
	}
	if _, err := o.store.Profiles().RecordInsight(ctx, rec); err != nil {
		log.Warn().Err(err).Str("user", req.UserID).Msg("failed to record insight")
		return
	}
	if err := o.store.Profiles().AddScore(ctx, req.UserID, delta); err != nil {
		log.Warn().Err(err).Str("user", req.UserID).Msg("failed to update user score")
	}
}
