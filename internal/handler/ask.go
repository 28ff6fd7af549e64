package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/code-doctor/backend/internal/config"
	"github.com/code-doctor/backend/internal/metrics"
	"github.com/code-doctor/backend/internal/models"
	"github.com/code-doctor/backend/internal/ollama"
	"github.com/code-doctor/backend/internal/service"
)

type askService interface {
	Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error)
	ListModels(ctx context.Context) (*models.ModelsResponse, error)
}

type AskHandler struct {
	logger       *log.Logger
	service      askService
	defaultModel string
	maxFileSize  int64
}

func NewAskHandler(logger *log.Logger, service askService, cfg *config.Config) *AskHandler {
	return &AskHandler{
		logger:       logger,
		service:      service,
		defaultModel: cfg.Ollama.DefaultModel,
		maxFileSize:  cfg.Server.MaxFileSize,
	}
}

type uploadError struct {
	status  int
	message string
}

// validateUpload runs the upload checks in order; the first failure wins and
// the rest are skipped.
func (h *AskHandler) validateUpload(header *multipart.FileHeader, raw []byte) *uploadError {
	checks := []func() *uploadError{
		func() *uploadError {
			if header == nil || strings.TrimSpace(header.Filename) == "" {
				return &uploadError{http.StatusBadRequest, "No file uploaded."}
			}
			return nil
		},
		func() *uploadError {
			if int64(len(raw)) > h.maxFileSize {
				return &uploadError{http.StatusRequestEntityTooLarge,
					fmt.Sprintf("File too large (%d bytes). Limit is %d.", len(raw), h.maxFileSize)}
			}
			return nil
		},
		func() *uploadError {
			if !utf8.Valid(raw) {
				return &uploadError{http.StatusBadRequest, "File doesn't look like a text file."}
			}
			return nil
		},
		func() *uploadError {
			if strings.TrimSpace(string(raw)) == "" {
				return &uploadError{http.StatusBadRequest, "File is empty."}
			}
			return nil
		},
	}

	for _, check := range checks {
		if uErr := check(); uErr != nil {
			return uErr
		}
	}
	return nil
}

// Ask godoc
// @Summary Ask a question about an uploaded source file
// @Description Uploads a source file plus an optional question and model, relays the built prompt to Ollama and returns the answer.
// @Tags ask
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Source file (UTF-8 text, max 2 MiB)"
// @Param question formData string false "Question about the file"
// @Param model formData string false "Ollama model name"
// @Success 200 {object} models.AskResponse
// @Failure 400 {string} string "Malformed upload"
// @Failure 413 {string} string "File too large"
// @Failure 502 {string} string "Ollama error"
// @Failure 503 {string} string "Ollama unreachable"
// @Failure 504 {string} string "Ollama timed out"
// @Router /ask [post]
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		metrics.AskUploadsTotal("rejected")
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		metrics.AskUploadsTotal("rejected")
		http.Error(w, fmt.Sprintf("failed to read upload: %s", err), http.StatusBadRequest)
		return
	}

	if uErr := h.validateUpload(header, raw); uErr != nil {
		metrics.AskUploadsTotal("rejected")
		http.Error(w, uErr.message, uErr.status)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		question = service.DefaultQuestion
	}
	model := strings.TrimSpace(r.FormValue("model"))
	if model == "" {
		model = h.defaultModel
	}

	h.logger.Printf("got %q (%d bytes) - %s\n", header.Filename, len(raw), preview(question, 80))
	metrics.AskUploadsTotal("accepted")

	resp, err := h.service.Ask(r.Context(), &models.AskRequest{
		Filename: header.Filename,
		Code:     string(raw),
		Question: question,
		Model:    model,
	})
	if err != nil {
		metrics.AskUploadsTotal("failed")
		h.writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeUpstreamError maps a service failure onto the relay's status codes.
// Anything outside the client's taxonomy counts as an upstream error.
func (h *AskHandler) writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) {
		// caller went away, nobody left to answer
		return
	}
	var upErr *ollama.Error
	if errors.As(err, &upErr) {
		http.Error(w, upErr.Message, upErr.HTTPStatus())
		return
	}
	http.Error(w, fmt.Sprintf("unexpected upstream failure: %s", err), http.StatusBadGateway)
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
