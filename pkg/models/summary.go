package models

// Summary represents the AI-generated narrative for one run
type Summary struct {
	RunID        string `json:"run_id"`
	Profile      string `json:"profile"`
	Text         string `json:"text"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	OutputPath   string `json:"output_path"`
}
