package model

import "time"

// ZodiacSign is one of the 12 tropical sun signs.
type ZodiacSign string

const (
	Aries       ZodiacSign = "Aries"
	Taurus      ZodiacSign = "Taurus"
	Gemini      ZodiacSign = "Gemini"
	Cancer      ZodiacSign = "Cancer"
	Leo         ZodiacSign = "Leo"
	Virgo       ZodiacSign = "Virgo"
	Libra       ZodiacSign = "Libra"
	Scorpio     ZodiacSign = "Scorpio"
	Sagittarius ZodiacSign = "Sagittarius"
	Capricorn   ZodiacSign = "Capricorn"
	Aquarius    ZodiacSign = "Aquarius"
	Pisces      ZodiacSign = "Pisces"
)

// AllSigns lists every sign in date-range order, starting with the
// year-wrapping Capricorn range.
var AllSigns = []ZodiacSign{
	Capricorn, Aquarius, Pisces, Aries, Taurus, Gemini,
	Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius,
}

// MaxPastInsights bounds a profile's history; older entries are evicted
// first so the newest MaxPastInsights are retained.
const MaxPastInsights = 10

// PastInsight is one recorded interaction in a user's history.
type PastInsight struct {
	Zodiac    ZodiacSign `json:"zodiac"`
	Insight   string     `json:"insight"`
	Timestamp time.Time  `json:"timestamp"`
}

// UserProfile accumulates personalization state for one user. Score only
// increases and InsightsCount is independent of the bounded history length.
type UserProfile struct {
	UserID          string        `json:"userId"`
	Name            string        `json:"name,omitempty"`
	BirthDate       string        `json:"birthDate,omitempty"`
	BirthTime       string        `json:"birthTime,omitempty"`
	BirthPlace      string        `json:"birthPlace,omitempty"`
	Latitude        *float64      `json:"latitude,omitempty"`
	Longitude       *float64      `json:"longitude,omitempty"`
	PreferredZodiac ZodiacSign    `json:"preferredZodiac,omitempty"`
	Score           float64       `json:"score"`
	InsightsCount   int           `json:"insightsCount"`
	PastInsights    []PastInsight `json:"pastInsights"`
	CreatedAt       time.Time     `json:"createdAt"`
	LastUpdated     time.Time     `json:"lastUpdated"`
}

// BirthDetails carries the request-side birth information used to derive
// the sign and to seed a profile on first contact. Latitude and longitude
// are kept for future ephemeris integration.
type BirthDetails struct {
	Name       string   `json:"name"`
	BirthDate  string   `json:"birthDate"`
	BirthTime  string   `json:"birthTime"`
	BirthPlace string   `json:"birthPlace"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CorpusEntry is one curated insight snippet, tagged by sign and category.
type CorpusEntry struct {
	Text     string     `json:"text"`
	Zodiac   ZodiacSign `json:"zodiac"`
	Category string     `json:"category"`
}

// SearchResult is a scored retrieval hit. Score is 1/(1+distance) over
// squared L2, so it always falls in (0,1].
type SearchResult struct {
	Text     string     `json:"text"`
	Zodiac   ZodiacSign `json:"zodiac"`
	Category string     `json:"category"`
	Score    float64    `json:"score"`
}

// CacheStats reports the state of the in-process store.
type CacheStats struct {
	CacheEnabled bool   `json:"cacheEnabled"`
	CacheBackend string `json:"cacheBackend"`
	TotalKeys    int    `json:"totalKeys"`
}
