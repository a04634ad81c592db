package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderealhq/insight-service/internal/cohere"
	"github.com/siderealhq/insight-service/internal/corpus"
	"github.com/siderealhq/insight-service/internal/insight"
	"github.com/siderealhq/insight-service/internal/model"
	"github.com/siderealhq/insight-service/internal/store/memstore"
	"github.com/siderealhq/insight-service/internal/translate"
)

// newTestServer runs the full router against an in-memory store, an
// unbuilt index, and an unconfigured LLM client, so every request takes
// the deterministic fallback paths.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memstore.New()
	client := cohere.New(cohere.Config{})
	ix := corpus.NewIndex(nil, client)
	trans := translate.New(client, true)
	orch := insight.NewOrchestrator(st, ix, client, trans, insight.Options{
		Temperature:      0.7,
		MaxTokens:        200,
		TopK:             3,
		RetrievalEnabled: true,
		CacheLookup:      true,
		UseFallback:      true,
	})

	srv := httptest.NewServer(NewRouter(st, ix, orch, client.Configured(), nil, true))
	t.Cleanup(srv.Close)
	return srv
}

func postPredict(t *testing.T, srv *httptest.Server, body map[string]interface{}, query string) (*http.Response, predictResponse) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/predict"+query, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out predictResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestPredict_HappyPath(t *testing.T) {
	srv := newTestServer(t)

	resp, out := postPredict(t, srv, map[string]interface{}{
		"name":       "Alice",
		"birthDate":  "1995-07-23",
		"birthTime":  "10:30",
		"birthPlace": "Delhi",
		"userId":     "alice-1",
	}, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.Leo, out.Zodiac)
	assert.NotEmpty(t, out.Insight)
	assert.Equal(t, "en", out.Language)
	assert.False(t, out.CacheHit)
	assert.Equal(t, "alice-1", out.UserID)
	require.NotNil(t, out.UserScore)
	assert.InDelta(t, 1.0, *out.UserScore, 1e-9)
}

func TestPredict_SecondCallHitsDailyCache(t *testing.T) {
	srv := newTestServer(t)
	body := map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23", "userId": "alice-1"}

	_, first := postPredict(t, srv, body, "")
	resp, second := postPredict(t, srv, body, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Insight, second.Insight)
	require.NotNil(t, second.UserScore)
	assert.InDelta(t, 1.5, *second.UserScore, 1e-9)
}

func TestPredict_GeneratesUserIDWhenAbsent(t *testing.T) {
	srv := newTestServer(t)

	resp, out := postPredict(t, srv, map[string]interface{}{"name": "Bob", "birthDate": "1992-09-01"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out.UserID)
	assert.Equal(t, model.Virgo, out.Zodiac)

	// the generated id owns a recorded profile
	profileResp, err := http.Get(srv.URL + "/api/users/" + out.UserID)
	require.NoError(t, err)
	defer func() { _ = profileResp.Body.Close() }()
	assert.Equal(t, http.StatusOK, profileResp.StatusCode)
}

func TestPredict_Validation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name  string
		body  map[string]interface{}
		query string
	}{
		{"missing name", map[string]interface{}{"birthDate": "1995-07-23"}, ""},
		{"bad date", map[string]interface{}{"name": "Alice", "birthDate": "July 23"}, ""},
		{"bad language", map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23"}, "?language=ENGLISH"},
	}
	for _, c := range cases {
		resp, _ := postPredict(t, srv, c.body, c.query)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, c.name)
	}
}

func TestPredict_TranslationFallsBackToEnglish(t *testing.T) {
	srv := newTestServer(t)

	// no translation backend configured: the English text passes through
	resp, out := postPredict(t, srv, map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23"}, "?language=hi")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hi", out.Language)
	assert.NotEmpty(t, out.Insight)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/users/ghost")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetUser_AfterPredict(t *testing.T) {
	srv := newTestServer(t)
	postPredict(t, srv, map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23", "userId": "alice-1"}, "")

	resp, err := http.Get(srv.URL + "/api/users/alice-1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p model.UserProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "alice-1", p.UserID)
	assert.Equal(t, 1, p.InsightsCount)
	assert.Len(t, p.PastInsights, 1)
	assert.Equal(t, model.Leo, p.PreferredZodiac)
}

func TestCacheStatsAndClear(t *testing.T) {
	srv := newTestServer(t)
	postPredict(t, srv, map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23", "userId": "alice-1"}, "")

	resp, err := http.Get(srv.URL + "/api/cache/stats")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats model.CacheStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.True(t, stats.CacheEnabled)
	assert.Equal(t, "in-memory", stats.CacheBackend)
	assert.Equal(t, 2, stats.TotalKeys)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/cache", nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = delResp.Body.Close() }()
	assert.Equal(t, http.StatusOK, delResp.StatusCode)

	resp2, err := http.Get(srv.URL + "/api/cache/stats")
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&stats))
	assert.Zero(t, stats.TotalKeys)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, "in-memory", out.Services["cache"])
	assert.Equal(t, "disabled", out.Services["vectorStore"])
	assert.Equal(t, "fallback-only", out.Services["llm"])
}

func TestPredict_HistoryGrowsAcrossDays(t *testing.T) {
	srv := newTestServer(t)
	body := map[string]interface{}{"name": "Alice", "birthDate": "1995-07-23", "userId": "alice-1"}

	for i := 0; i < 3; i++ {
		resp, _ := postPredict(t, srv, body, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	profileResp, err := http.Get(srv.URL + "/api/users/alice-1")
	require.NoError(t, err)
	defer func() { _ = profileResp.Body.Close() }()

	var p model.UserProfile
	require.NoError(t, json.NewDecoder(profileResp.Body).Decode(&p))
	assert.Equal(t, 3, p.InsightsCount)
	assert.InDelta(t, 1.0+0.5+0.5, p.Score, 1e-9, fmt.Sprintf("score %v", p.Score))
}
