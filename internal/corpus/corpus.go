// Package corpus holds the static insight corpus and its in-process
// nearest-neighbor index.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/siderealhq/insight-service/internal/model"
)

// Load reads the corpus from a JSON file of the form
// {"insights": [{"text": ..., "zodiac": ..., "category": ...}, ...]}.
// A missing file is not an error: the service runs with an empty corpus
// and semantic retrieval degrades to the fallback paths.
func Load(path string) ([]model.CorpusEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("corpus file not found, using empty corpus")
			return nil, nil
		}
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var doc struct {
		Insights []model.CorpusEntry `json:"insights"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return doc.Insights, nil
}
