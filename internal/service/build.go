package service

import "fmt"

// BuildPrompt combines the system instruction, the uploaded file and the task
// into the single text payload sent to Ollama. Fence sequences inside the
// code are left as-is; the model copes better than an escaping scheme would.
func BuildPrompt(code, question, filename string) string {
	return fmt.Sprintf("%s\n\n--- FILE: %s ---\n```\n%s\n```\n\n--- TASK ---\n%s\n",
		systemPrompt, filename, code, question)
}
