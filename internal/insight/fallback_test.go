package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderealhq/insight-service/internal/model"
)

func historyOf(n int) *model.UserProfile {
	p := &model.UserProfile{UserID: "u1"}
	for i := 0; i < n; i++ {
		p.PastInsights = append(p.PastInsights, model.PastInsight{Insight: "past"})
	}
	return p
}

// With more than two past insights the template index is history length
// mod table size, stable across repeated calls.
func TestFallbackInsight_DeterministicForReturningUsers(t *testing.T) {
	p := historyOf(3)
	templates := fallbackTemplates[model.Leo]
	require.Len(t, templates, 2)
	want := "Alice, " + templates[3%len(templates)]

	for i := 0; i < 10; i++ {
		assert.Equal(t, want, FallbackInsight("Alice", model.Leo, p))
	}
}

func TestFallbackInsight_NewUserPicksFromTemplateTable(t *testing.T) {
	got := FallbackInsight("Alice", model.Leo, nil)
	var matched bool
	for _, tpl := range fallbackTemplates[model.Leo] {
		if got == "Alice, "+tpl {
			matched = true
		}
	}
	assert.True(t, matched, "got %q", got)
	assert.True(t, strings.Contains(got, "Alice"))
}

func TestFallbackInsight_UnknownSignUsesDefaultWithName(t *testing.T) {
	got := FallbackInsight("Alice", model.ZodiacSign("Ophiuchus"), nil)
	assert.Equal(t, "Alice, trust your intuition today. The stars are aligned in your favor.", got)
}

func TestFallbackInsight_ReturningUserSuffix(t *testing.T) {
	p := historyOf(3)
	p.InsightsCount = 3
	got := FallbackInsight("Alice", model.Leo, p)
	assert.True(t, strings.HasSuffix(got, returningUserSuffix))

	p.InsightsCount = 1
	got = FallbackInsight("Alice", model.Leo, p)
	assert.False(t, strings.HasSuffix(got, returningUserSuffix))
}
