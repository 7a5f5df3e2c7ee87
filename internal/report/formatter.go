// Package report renders a RunSummary as prompt input.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shawndavis1/ai-test-framework/pkg/models"
)

// MaxListedFailures caps the failing tests included in the statistics block.
const MaxListedFailures = 5

// FormatStats renders the fixed statistics block for s.
func FormatStats(s *models.RunSummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total tests: %d\n", s.Total())
	fmt.Fprintf(&sb, "Passed: %d\n", s.Count(models.StatusPassed))
	fmt.Fprintf(&sb, "Failed: %d\n", s.Count(models.StatusFailed))
	fmt.Fprintf(&sb, "Broken: %d\n", s.Count(models.StatusBroken))
	fmt.Fprintf(&sb, "Skipped: %d\n\n", s.Count(models.StatusSkipped))
	sb.WriteString("Here are the first few failed tests:\n")

	for i, tc := range s.Failing {
		if i >= MaxListedFailures {
			break
		}
		fmt.Fprintf(&sb, "- %s (%s)\n", tc.Name, tc.Status)
	}

	return sb.String()
}

// FormatPayload renders the opaque aggregate report as indented JSON.
func FormatPayload(s *models.RunSummary) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, s.Payload, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	return buf.String(), nil
}

// Input returns the text embedded into the prompt: the aggregate report
// when present, the statistics block otherwise.
func Input(s *models.RunSummary) (string, error) {
	if s.HasPayload() {
		return FormatPayload(s)
	}
	return FormatStats(s), nil
}
