package validate

import (
	"strings"
	"testing"
)

func TestPredict(t *testing.T) {
	if _, err := Predict("Alice", "1995-07-23"); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if _, err := Predict("", "1995-07-23"); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := Predict("Alice", "23-07-1995"); err == nil {
		t.Error("malformed date accepted")
	}
	if _, err := Predict("Alice", "1995-02-30"); err == nil {
		t.Error("impossible date accepted")
	}
	if _, err := Predict(strings.Repeat("a", 101), "1995-07-23"); err == nil {
		t.Error("oversized name accepted")
	}
}

func TestLanguage(t *testing.T) {
	for _, ok := range []string{"", "en", "hi", "tam"} {
		if err := Language(ok); err != nil {
			t.Errorf("language %q rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"EN", "e", "english", "h1"} {
		if err := Language(bad); err == nil {
			t.Errorf("language %q accepted", bad)
		}
	}
}
