// Package translate converts generated insight text between languages
// using the chat capability.
package translate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Chatter is the generation capability used to perform translations.
type Chatter interface {
	Chat(ctx context.Context, prompt, preamble string, temperature float64, maxTokens int) (string, error)
}

// languageNames maps supported codes to the names used in the
// translation prompt; unknown codes pass through as-is.
var languageNames = map[string]string{
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
}

var supportedLanguages = map[string]bool{"en": true, "hi": true, "ta": true, "te": true}

// translation runs cooler and longer than generation
const (
	translateTemperature = 0.3
	translateMaxTokens   = 300
)

// Service wraps the chat backend with the identity shortcut and the
// never-fail contract: on any backend problem the original text comes
// back unchanged.
type Service struct {
	chatter Chatter
	enabled bool
}

// New builds the service. A nil chatter or enabled=false turns every
// call into the identity transform.
func New(chatter Chatter, enabled bool) *Service {
	return &Service{chatter: chatter, enabled: enabled}
}

// Translate converts text to the target language. English targets and
// target==source return the text without invoking the backend.
func (s *Service) Translate(ctx context.Context, text, targetLang, sourceLang string) string {
	if targetLang == sourceLang || targetLang == "en" {
		return text
	}
	if !s.enabled || s.chatter == nil {
		log.Warn().Str("target", targetLang).Msg("translation backend unavailable, returning original text")
		return text
	}

	name := languageNames[targetLang]
	if name == "" {
		name = targetLang
	}
	prompt := fmt.Sprintf("Translate the following English text to %s. Only provide the translation, nothing else:\n\n%s", name, text)

	out, err := s.chatter.Chat(ctx, prompt, "", translateTemperature, translateMaxTokens)
	if err != nil {
		log.Warn().Err(err).Str("target", targetLang).Msg("translation failed, returning original text")
		return text
	}
	log.Info().Str("target", name).Msg("translated insight")
	return out
}

// IsSupported reports whether a language code has first-class support.
func IsSupported(code string) bool { return supportedLanguages[code] }
