package service

const (
	systemPrompt = "You are an expert programming tutor and code reviewer. " +
		"You provide clear, detailed, and actionable answers. " +
		"Always reference specific line numbers or code snippets when relevant."

	// DefaultQuestion fills the question field when the caller leaves it blank.
	DefaultQuestion = "Explain this code, find bugs, and suggest improvements."
)
