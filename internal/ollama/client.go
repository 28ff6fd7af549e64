package ollama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/code-doctor/backend/internal/config"
	"github.com/code-doctor/backend/internal/metrics"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// TagModel is one entry of the /api/tags listing. Fields missing upstream
// stay at their zero values rather than failing the whole call.
type TagModel struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at"`
}

type tagsResponse struct {
	Models []TagModel `json:"models"`
}

// Client talks to a local Ollama server. All failures come back as *Error;
// a caller disconnect is passed through as context.Canceled instead.
type Client struct {
	logger          *log.Logger
	httpc           *http.Client
	generateURL     string
	tagsURL         string
	generateTimeout time.Duration
	listTimeout     time.Duration
}

func NewClient(logger *log.Logger, cfg config.OllamaConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		logger:          logger,
		httpc:           &http.Client{},
		generateURL:     base + "/api/generate",
		tagsURL:         base + "/api/tags",
		generateTimeout: cfg.GenerateTimeout,
		listTimeout:     cfg.ListTimeout,
	}
}

// Generate sends one non-streaming completion request and returns the trimmed
// answer text. The call is never retried.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	payload, err := sonic.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", &Error{Kind: KindUpstream, Message: fmt.Sprintf("failed to encode generate request: %s", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.generateURL, bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Kind: KindUpstream, Message: fmt.Sprintf("failed to build generate request: %s", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Printf("calling Ollama (%s)...\n", model)
	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.OllamaRequestDuration("generate", "error", time.Since(start))
		return "", c.transportError(err, c.generateURL,
			"Ollama timed out. Try a smaller file or simpler question.")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.OllamaRequestDuration("generate", "error", time.Since(start))
		return "", c.transportError(err, c.generateURL,
			"Ollama timed out. Try a smaller file or simpler question.")
	}
	metrics.OllamaRequestDuration("generate", statusLabel(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Kind: KindUpstream, Message: fmt.Sprintf("Ollama error: %s", strings.TrimSpace(string(body)))}
	}

	var gen generateResponse
	if err := sonic.Unmarshal(body, &gen); err != nil {
		return "", &Error{Kind: KindUpstream, Message: fmt.Sprintf("Ollama returned a malformed response: %s", err)}
	}

	answer := strings.TrimSpace(gen.Response)
	if answer == "" {
		return "", &Error{Kind: KindUpstream, Message: "Ollama returned an empty response."}
	}
	return answer, nil
}

// Tags lists the models the server has pulled, in upstream order.
func (c *Client) Tags(ctx context.Context) ([]TagModel, error) {
	ctx, cancel := context.WithTimeout(ctx, c.listTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tagsURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Message: fmt.Sprintf("failed to build tags request: %s", err)}
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.OllamaRequestDuration("tags", "error", time.Since(start))
		return nil, c.transportError(err, c.tagsURL, "Ollama timed out while listing models.")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.OllamaRequestDuration("tags", "error", time.Since(start))
		return nil, c.transportError(err, c.tagsURL, "Ollama timed out while listing models.")
	}
	metrics.OllamaRequestDuration("tags", statusLabel(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindUpstream, Message: fmt.Sprintf("Ollama error: %s", strings.TrimSpace(string(body)))}
	}

	var tags tagsResponse
	if err := sonic.Unmarshal(body, &tags); err != nil {
		return nil, &Error{Kind: KindUpstream, Message: fmt.Sprintf("Ollama returned a malformed response: %s", err)}
	}
	return tags.Models, nil
}

// transportError folds a transport failure into the closed taxonomy. The
// check order matters: a canceled parent context must not be reported as a
// timeout even though the deadline context is also done by then.
func (c *Client) transportError(err error, endpoint, timeoutMsg string) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: timeoutMsg}
	}
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf("can't reach Ollama at %s. Is it running?", endpoint)}
}

func statusLabel(code int) string {
	if code >= 200 && code < 300 {
		return "ok"
	}
	return "error"
}
