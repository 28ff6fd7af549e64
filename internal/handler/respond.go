package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are committed at this point, an encode failure has nowhere to go
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(v)
}
