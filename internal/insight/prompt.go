package insight

import (
	"fmt"
	"strings"

	"github.com/siderealhq/insight-service/internal/model"
)

// Preamble frames every generation call.
const Preamble = "You are an expert astrologer who provides personalized, warm, and insightful daily horoscopes. Keep responses concise (1-2 sentences) and encouraging."

// pastInsightLimit caps how many history entries the prompt cites.
const pastInsightLimit = 3

// pastInsightTruncate caps the quoted length of each cited insight.
const pastInsightTruncate = 100

// BuildPrompt assembles the generation prompt. Section ordering and the
// truncation rule are fixed; golden tests depend on the exact output.
func BuildPrompt(name string, sign model.ZodiacSign, contextTexts []string, profile *model.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a personalized daily astrological insight for %s, who is a %s.", name, sign)

	if profile != nil {
		if profile.InsightsCount > 0 {
			fmt.Fprintf(&b, "\n\nThis user has requested %d insight(s) before.", profile.InsightsCount)
		}
		if len(profile.PastInsights) > 0 {
			b.WriteString("\n\nConsider their past insights to maintain consistency and build on previous guidance:")
			recent := profile.PastInsights
			if len(recent) > pastInsightLimit {
				recent = recent[len(recent)-pastInsightLimit:]
			}
			for _, past := range recent {
				fmt.Fprintf(&b, "\n- Previous insight: %s...", truncate(past.Insight, pastInsightTruncate))
			}
		}
		if profile.PreferredZodiac != "" && profile.PreferredZodiac == sign {
			b.WriteString("\n\nThis is their preferred zodiac sign, so make the insight particularly meaningful.")
		}
	}

	if len(contextTexts) > 0 {
		b.WriteString("\n\nConsider these related astrological insights:\n")
		for i, ctx := range contextTexts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, ctx)
		}
	}

	b.WriteString("\nMake it personal, warm, and specific to their zodiac sign. Keep it to 1-2 sentences.")
	return b.String()
}

// truncate cuts at n characters, not bytes: history holds the
// translated text the user saw, so multi-byte scripts must not be cut
// mid-rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
