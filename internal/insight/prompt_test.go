package insight

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/siderealhq/insight-service/internal/model"
)

func TestBuildPrompt_Minimal(t *testing.T) {
	got := BuildPrompt("Alice", model.Leo, nil, nil)
	want := "Generate a personalized daily astrological insight for Alice, who is a Leo." +
		"\nMake it personal, warm, and specific to their zodiac sign. Keep it to 1-2 sentences."
	assert.Equal(t, want, got)
}

func TestBuildPrompt_FullProfileAndContext(t *testing.T) {
	long := strings.Repeat("x", 150)
	p := &model.UserProfile{
		UserID:          "u1",
		PreferredZodiac: model.Leo,
		InsightsCount:   5,
		PastInsights: []model.PastInsight{
			{Insight: "first"},
			{Insight: "second"},
			{Insight: "third"},
			{Insight: long},
		},
	}

	got := BuildPrompt("Alice", model.Leo, []string{"ctx one", "ctx two"}, p)
	want := "Generate a personalized daily astrological insight for Alice, who is a Leo." +
		"\n\nThis user has requested 5 insight(s) before." +
		"\n\nConsider their past insights to maintain consistency and build on previous guidance:" +
		"\n- Previous insight: second..." +
		"\n- Previous insight: third..." +
		"\n- Previous insight: " + strings.Repeat("x", 100) + "..." +
		"\n\nThis is their preferred zodiac sign, so make the insight particularly meaningful." +
		"\n\nConsider these related astrological insights:\n" +
		"1. ctx one\n" +
		"2. ctx two\n" +
		"\nMake it personal, warm, and specific to their zodiac sign. Keep it to 1-2 sentences."
	assert.Equal(t, want, got)
}

// History quotes translated text, so the 100-char cut must count runes:
// a byte-based cut would quote a third of a Devanagari insight and could
// split a rune into invalid UTF-8.
func TestBuildPrompt_TruncatesMultiByteHistoryByCharacters(t *testing.T) {
	long := strings.Repeat("आज", 75) // 150 chars, 3 bytes each
	p := &model.UserProfile{
		UserID:       "u1",
		PastInsights: []model.PastInsight{{Insight: long}},
	}

	got := BuildPrompt("Alice", model.Leo, nil, p)
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "- Previous insight: "+strings.Repeat("आज", 50)+"...")
	assert.NotContains(t, got, strings.Repeat("आज", 51))
}

func TestBuildPrompt_PreferredSignMismatchOmitted(t *testing.T) {
	p := &model.UserProfile{UserID: "u1", PreferredZodiac: model.Virgo, InsightsCount: 1}
	got := BuildPrompt("Alice", model.Leo, nil, p)
	assert.NotContains(t, got, "preferred zodiac sign")
	assert.Contains(t, got, "requested 1 insight(s) before")
}
