package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/code-doctor/backend/internal/config"
	"github.com/code-doctor/backend/internal/models"
	"github.com/code-doctor/backend/internal/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	generateFn func(ctx context.Context, model, prompt string) (string, error)
	tagsFn     func(ctx context.Context) ([]ollama.TagModel, error)
}

func (s *stubClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	return s.generateFn(ctx, model, prompt)
}

func (s *stubClient) Tags(ctx context.Context) ([]ollama.TagModel, error) {
	return s.tagsFn(ctx)
}

type fakeCache struct {
	entries map[string]string
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	f.gets++
	val, ok := f.entries[key]
	return val, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string) error {
	f.sets++
	f.entries[key] = value
	return nil
}

func newTestService(client ollamaClient) *AskService {
	return NewAskService(log.New(io.Discard, "", 0), client, config.OllamaConfig{
		DefaultModel: "codellama:7b",
	})
}

func TestAsk(t *testing.T) {
	var gotModel, gotPrompt string
	client := &stubClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			gotModel, gotPrompt = model, prompt
			return "This prints hi.", nil
		},
	}
	s := newTestService(client)

	resp, err := s.Ask(context.Background(), &models.AskRequest{
		Filename: "hello.py",
		Code:     `print("hi")`,
		Question: "explain",
		Model:    "mistral:7b",
	})

	require.NoError(t, err)
	assert.Equal(t, "mistral:7b", resp.Model)
	assert.Equal(t, "explain", resp.Question)
	assert.Equal(t, "hello.py", resp.Filename)
	assert.Equal(t, "This prints hi.", resp.Answer)

	assert.Equal(t, "mistral:7b", gotModel)
	assert.Contains(t, gotPrompt, "hello.py")
	assert.Contains(t, gotPrompt, `print("hi")`)
	assert.Contains(t, gotPrompt, "explain")
}

func TestAsk_ClientErrorPropagates(t *testing.T) {
	upErr := &ollama.Error{Kind: ollama.KindTimeout, Message: "Ollama timed out."}
	client := &stubClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			return "", upErr
		},
	}
	s := newTestService(client)

	resp, err := s.Ask(context.Background(), &models.AskRequest{Filename: "f", Code: "c", Question: "q", Model: "m"})

	assert.Nil(t, resp)
	var got *ollama.Error
	require.ErrorAs(t, err, &got)
	assert.Same(t, upErr, got, "client failures must propagate unmodified")
}

func TestAsk_CacheHitSkipsGenerate(t *testing.T) {
	calls := 0
	client := &stubClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			calls++
			return "fresh answer", nil
		},
	}
	s := newTestService(client)
	cache := newFakeCache()
	s.SetCacheClient(cache)

	req := &models.AskRequest{Filename: "f.go", Code: "package f", Question: "q", Model: "m"}

	first, err := s.Ask(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "fresh answer", first.Answer)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.sets)

	second, err := s.Ask(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "fresh answer", second.Answer)
	assert.Equal(t, 1, calls, "cache hit must not call Ollama again")
}

func TestAsk_CacheKeyVariesWithInput(t *testing.T) {
	a := cacheKey(&models.AskRequest{Filename: "f", Code: "c", Question: "q", Model: "m"})
	b := cacheKey(&models.AskRequest{Filename: "f", Code: "c", Question: "q2", Model: "m"})
	assert.NotEqual(t, a, b)
}

func TestAsk_GenericErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	client := &stubClient{
		generateFn: func(ctx context.Context, model, prompt string) (string, error) {
			return "", boom
		},
	}
	s := newTestService(client)

	_, err := s.Ask(context.Background(), &models.AskRequest{Filename: "f", Code: "c", Question: "q", Model: "m"})
	assert.ErrorIs(t, err, boom)
}
