package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/code-doctor/backend/internal/config"
	"github.com/code-doctor/backend/internal/models"
	"github.com/code-doctor/backend/internal/ollama"
)

// Cache stores previously generated answers keyed by upload fingerprint.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type ollamaClient interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	Tags(ctx context.Context) ([]ollama.TagModel, error)
}

type AskService struct {
	logger       *log.Logger
	client       ollamaClient
	defaultModel string
	cache        Cache
}

func NewAskService(logger *log.Logger, client ollamaClient, cfg config.OllamaConfig) *AskService {
	return &AskService{
		logger:       logger,
		client:       client,
		defaultModel: cfg.DefaultModel,
	}
}

func (s *AskService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Ask builds the prompt for an already-validated upload and relays it to
// Ollama. Client failures propagate untouched so the handler can map them.
func (s *AskService) Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error) {
	resp := &models.AskResponse{
		Model:    req.Model,
		Question: req.Question,
		Filename: req.Filename,
	}

	var key string
	if s.cache != nil {
		key = cacheKey(req)
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			s.logger.Println("served from cache")
			resp.Answer = cached
			return resp, nil
		}
	}

	prompt := BuildPrompt(req.Code, req.Question, req.Filename)
	answer, err := s.client.Generate(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}
	resp.Answer = answer

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, answer); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return resp, nil
}

func cacheKey(req *models.AskRequest) string {
	data := []string{
		req.Model,
		req.Filename,
		req.Question,
		req.Code,
	}
	hash := sha256.Sum256([]byte(strings.Join(data, "\x00")))
	return hex.EncodeToString(hash[:])
}
