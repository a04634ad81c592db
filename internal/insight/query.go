// Package insight contains the retrieval-and-personalization pipeline:
// query derivation, prompt assembly, fallback templates, and the
// per-request orchestrator.
package insight

import (
	"fmt"
	"strings"

	"github.com/siderealhq/insight-service/internal/model"
)

// themeBuckets are scanned in this fixed order against the user's most
// recent insight; matched bucket names are spliced into the retrieval
// query in the same order. Buckets are not mutually exclusive.
var themeBuckets = []struct {
	name     string
	keywords []string
}{
	{"career", []string{"career", "work", "job", "professional"}},
	{"love", []string{"love", "relationship", "partner", "romance"}},
	{"health", []string{"health", "wellness", "energy", "body"}},
	{"finance", []string{"finance", "money", "financial", "wealth"}},
}

// BuildQuery derives the retrieval query for a sign. With history, the
// single most recent insight is scanned for theme keywords; matched
// themes bias the query, and history without a theme match still earns
// the "personalized" variant.
func BuildQuery(sign model.ZodiacSign, profile *model.UserProfile) string {
	if profile == nil || len(profile.PastInsights) == 0 {
		return fmt.Sprintf("%s daily horoscope insight", sign)
	}

	recent := strings.ToLower(profile.PastInsights[len(profile.PastInsights)-1].Insight)
	var themes []string
	for _, b := range themeBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(recent, kw) {
				themes = append(themes, b.name)
				break
			}
		}
	}

	if len(themes) == 0 {
		return fmt.Sprintf("%s personalized daily horoscope insight", sign)
	}
	return fmt.Sprintf("%s %s daily horoscope insight", sign, strings.Join(themes, " "))
}
