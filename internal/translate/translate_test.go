package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChatter struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeChatter) Chat(ctx context.Context, prompt, preamble string, temperature float64, maxTokens int) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

// The identity transform must not touch the backend at all.
func TestTranslate_IdentityShortcuts(t *testing.T) {
	chatter := &fakeChatter{reply: "should not be used"}
	s := New(chatter, true)
	ctx := context.Background()

	assert.Equal(t, "hello", s.Translate(ctx, "hello", "en", "en"))
	assert.Equal(t, "hello", s.Translate(ctx, "hello", "en", "hi"))
	assert.Equal(t, "hello", s.Translate(ctx, "hello", "hi", "hi"))
	assert.Zero(t, chatter.calls)
}

func TestTranslate_UsesLanguageName(t *testing.T) {
	chatter := &fakeChatter{reply: "अनुवादित"}
	s := New(chatter, true)

	got := s.Translate(context.Background(), "hello", "hi", "en")
	assert.Equal(t, "अनुवादित", got)
	assert.Equal(t, 1, chatter.calls)
	assert.Contains(t, chatter.prompts[0], "Translate the following English text to Hindi.")
	assert.Contains(t, chatter.prompts[0], "hello")
}

func TestTranslate_UnknownCodePassesThroughToPrompt(t *testing.T) {
	chatter := &fakeChatter{reply: "ok"}
	s := New(chatter, true)

	s.Translate(context.Background(), "hello", "fr", "en")
	assert.Contains(t, chatter.prompts[0], "to fr.")
}

func TestTranslate_FailureReturnsOriginal(t *testing.T) {
	chatter := &fakeChatter{err: errors.New("backend down")}
	s := New(chatter, true)

	assert.Equal(t, "hello", s.Translate(context.Background(), "hello", "hi", "en"))
}

func TestTranslate_DisabledOrNilChatter(t *testing.T) {
	assert.Equal(t, "hello", New(&fakeChatter{}, false).Translate(context.Background(), "hello", "hi", "en"))
	assert.Equal(t, "hello", New(nil, true).Translate(context.Background(), "hello", "hi", "en"))
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"en", "hi", "ta", "te"} {
		assert.True(t, IsSupported(code), code)
	}
	assert.False(t, IsSupported("fr"))
}
