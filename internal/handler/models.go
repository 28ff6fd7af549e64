package handler

import "net/http"

// Models godoc
// @Summary List available models
// @Description Lists the models the Ollama server has pulled, default model first.
// @Tags models
// @Produce json
// @Success 200 {object} models.ModelsResponse
// @Failure 502 {string} string "Ollama error"
// @Failure 503 {string} string "Ollama unreachable"
// @Failure 504 {string} string "Ollama timed out"
// @Router /models [get]
func (h *AskHandler) Models(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListModels(r.Context())
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
