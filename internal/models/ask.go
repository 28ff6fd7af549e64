package models

// AskRequest is a validated upload ready for the ask pipeline. Question and
// Model are already defaulted by the handler; Code is decoded UTF-8 text.
type AskRequest struct {
	Filename string
	Code     string
	Question string
	Model    string
}

// AskResponse is the answer returned to the caller.
type AskResponse struct {
	Model    string `json:"model" example:"codellama:7b"`
	Question string `json:"question" example:"Explain this code"`
	Filename string `json:"filename" example:"hello.py"`
	Answer   string `json:"answer"`
}

// ModelInfo is one entry of the /models listing, shaped for humans.
type ModelInfo struct {
	Name       string `json:"name" example:"codellama:7b"`
	Size       string `json:"size" example:"3.6 GB"`
	ModifiedAt string `json:"modified_at" example:"2024-05-01T10:21:45.000Z"`
}

type ModelsResponse struct {
	Default string      `json:"default" example:"codellama:7b"`
	Models  []ModelInfo `json:"models"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Backend is running."`
	Usage   string `json:"usage" example:"POST /ask"`
}
