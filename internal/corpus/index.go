package corpus

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/model"
)

// EmbedMode distinguishes document indexing from query encoding so
// asymmetric embedding models can optimize each side.
type EmbedMode string

const (
	EmbedDocument EmbedMode = "search_document"
	EmbedQuery    EmbedMode = "search_query"
)

// Embedder produces one vector per input text, order-preserving, in a
// single batched call.
type Embedder interface {
	Embed(ctx context.Context, texts []string, mode EmbedMode) ([][]float32, error)
}

// Index is a flat squared-L2 nearest-neighbor index over the corpus.
// Build runs once at startup; afterwards the index is read-only and safe
// for unsynchronized concurrent readers.
type Index struct {
	embedder Embedder
	entries  []model.CorpusEntry
	vectors  [][]float32
	ready    bool
}

// NewIndex wraps the corpus entries. Call Build before searching.
func NewIndex(entries []model.CorpusEntry, embedder Embedder) *Index {
	return &Index{embedder: embedder, entries: entries}
}

// Build embeds the whole corpus in one document-mode call. An embedding
// failure disables the index instead of failing startup: Search then
// always returns empty results.
func (ix *Index) Build(ctx context.Context) error {
	if len(ix.entries) == 0 || ix.embedder == nil {
		log.Warn().Msg("no corpus data or embedding backend, vector index disabled")
		return nil
	}

	texts := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		texts[i] = e.Text
	}

	log.Info().Int("texts", len(texts)).Msg("generating corpus embeddings")
	vecs, err := ix.embedder.Embed(ctx, texts, EmbedDocument)
	if err != nil {
		return fmt.Errorf("embed corpus: %w", err)
	}
	if len(vecs) != len(texts) {
		return fmt.Errorf("embed corpus: got %d vectors for %d texts", len(vecs), len(texts))
	}

	ix.vectors = vecs
	ix.ready = true
	log.Info().Int("vectors", len(vecs)).Msg("vector index built")
	return nil
}

// Ready reports whether Build completed and searches will be served.
func (ix *Index) Ready() bool { return ix.ready }

// Size returns the number of corpus entries, built or not.
func (ix *Index) Size() int { return len(ix.entries) }

// Search embeds the query and returns up to topK nearest entries in
// descending-similarity order. When a sign filter is set, topK*3
// candidates are fetched to leave headroom for post-filtering. An unbuilt
// index yields no results and no error.
func (ix *Index) Search(ctx context.Context, query string, filter model.ZodiacSign, topK int) ([]model.SearchResult, error) {
	if !ix.ready || topK <= 0 {
		return nil, nil
	}

	vecs, err := ix.embedder.Embed(ctx, []string{query}, EmbedQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embed query: got %d vectors for 1 text", len(vecs))
	}
	q := vecs[0]

	searchK := topK
	if filter != "" {
		searchK = topK * 3
	}
	if searchK > len(ix.vectors) {
		searchK = len(ix.vectors)
	}

	type candidate struct {
		idx  int
		dist float64
	}
	candidates := make([]candidate, len(ix.vectors))
	for i, v := range ix.vectors {
		candidates[i] = candidate{idx: i, dist: squaredL2(q, v)}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	results := make([]model.SearchResult, 0, topK)
	for _, c := range candidates[:searchK] {
		e := ix.entries[c.idx]
		if filter != "" && e.Zodiac != filter {
			continue
		}
		results = append(results, model.SearchResult{
			Text:     e.Text,
			Zodiac:   e.Zodiac,
			Category: e.Category,
			Score:    1 / (1 + c.dist),
		})
		if len(results) >= topK {
			break
		}
	}
	return results, nil
}

// ZodiacInsights uniformly samples up to limit corpus texts for a sign,
// matched case-insensitively, without touching embeddings. Used as the
// retrieval fallback when semantic search yields nothing.
func (ix *Index) ZodiacInsights(sign model.ZodiacSign, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var texts []string
	for _, e := range ix.entries {
		if strings.EqualFold(string(e.Zodiac), string(sign)) {
			texts = append(texts, e.Text)
		}
	}
	if len(texts) <= limit {
		return texts
	}

	rand.Shuffle(len(texts), func(i, j int) { texts[i], texts[j] = texts[j], texts[i] })
	return texts[:limit]
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		if i >= len(b) {
			break
		}
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
