package summary

import (
	"sort"

	"github.com/shawndavis1/ai-test-framework/internal/llm"
)

// Profile selects the prompt framing and sampling for a summarization run.
type Profile struct {
	Name        string
	Short       string
	System      string // optional system message
	Preamble    string // prepended verbatim to the report input
	Model       string // OpenAI model used when none is configured
	MaxTokens   int
	Temperature *float64
	// Echo prints the generated summary to stdout in addition to the file.
	Echo bool
}

// Lead writes a brief management-facing summary.
var Lead = Profile{
	Name:  "lead",
	Short: "Summarize results for management and engineers (QA lead framing)",
	Preamble: "You are an expert QA lead. Summarize the following test results briefly and clearly " +
		"for management and engineers. Highlight failures, flaky tests, and overall stability.\n\n" +
		"Test report:\n",
	Model:     "gpt-5",
	MaxTokens: 400,
}

// Assistant writes a findings-oriented summary with lower sampling temperature.
var Assistant = Profile{
	Name:   "assistant",
	Short:  "Summarize results with key findings and areas to investigate (QA assistant framing)",
	System: "You are a helpful QA report summarizer.",
	Preamble: "You are a QA assistant. Summarize the following test run results clearly and concisely. " +
		"Highlight key findings, patterns, and possible areas to investigate:\n\n",
	Model:       "gpt-4o-mini",
	Temperature: llm.Temperature(0.5),
	Echo:        true,
}

var profiles = map[string]Profile{
	Lead.Name:      Lead,
	Assistant.Name: Assistant,
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Names returns the registered profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prompt embeds input verbatim after the profile preamble.
func (p Profile) Prompt(input string) string {
	return p.Preamble + input
}

// Messages builds the role-tagged message list for input.
func (p Profile) Messages(input string) []llm.Message {
	messages := make([]llm.Message, 0, 2)
	if p.System != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: p.System})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: p.Prompt(input)})
}

// Options returns the sampling options sent with the request.
func (p Profile) Options() llm.Options {
	return llm.Options{MaxTokens: p.MaxTokens, Temperature: p.Temperature}
}
