package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shawndavis1/ai-test-framework/pkg/models"
)

func TestAllureParser_ParseBytes(t *testing.T) {
	jsonData := []byte(`{
		"uuid": "4f1c",
		"name": "login_test",
		"fullName": "tests.ui.test_login_ui#test_login_success",
		"status": "FAILED",
		"statusDetails": {"message": "AssertionError"},
		"start": 1700000000000,
		"stop": 1700000001000
	}`)

	p := &AllureParser{}
	outcome, err := p.ParseBytes(jsonData)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	if outcome.Name != "login_test" {
		t.Errorf("Expected name login_test, got %s", outcome.Name)
	}
	if outcome.Status != models.StatusFailed {
		t.Errorf("Expected status failed, got %s", outcome.Status)
	}
}

func TestAllureParser_Defaults(t *testing.T) {
	p := &AllureParser{}
	outcome, err := p.ParseBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	if outcome.Name != models.DefaultTestName {
		t.Errorf("Expected default name, got %q", outcome.Name)
	}
	if outcome.Status != models.StatusUnknown {
		t.Errorf("Expected unknown status, got %q", outcome.Status)
	}
}

func TestAllureParser_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "not json"},
		{name: "array", input: `[{"status": "passed"}]`},
		{name: "numeric status", input: `{"status": 3}`},
		{name: "object name", input: `{"name": {"first": "x"}}`},
		{name: "array name", input: `{"name": ["x"]}`},
		{name: "truncated", input: `{"status": "passed"`},
	}

	p := &AllureParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseBytes([]byte(tt.input)); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestAllureParser_NullAndScalarFields(t *testing.T) {
	tests := []struct {
		input  string
		name   string
		status models.TestStatus
	}{
		{`{"status": "failed", "name": null}`, models.DefaultTestName, models.StatusFailed},
		{`{"status": null, "name": "x"}`, "x", models.StatusUnknown},
		{`{"status": "passed", "name": 42}`, "42", models.StatusPassed},
		{`{"status": "passed", "name": 1.50}`, "1.50", models.StatusPassed},
		{`{"status": "passed", "name": true}`, "true", models.StatusPassed},
		{`{"status": "passed", "name": "y", "fullName": null, "uuid": 7}`, "y", models.StatusPassed},
	}

	p := &AllureParser{}
	for _, tt := range tests {
		outcome, err := p.ParseBytes([]byte(tt.input))
		if err != nil {
			t.Fatalf("ParseBytes(%s) failed: %v", tt.input, err)
		}
		if outcome.Name != tt.name || outcome.Status != tt.status {
			t.Errorf("ParseBytes(%s) = %+v, want name %q status %q", tt.input, outcome, tt.name, tt.status)
		}
	}
}

func TestAllureParser_ValidationErrorIsLeafMessage(t *testing.T) {
	p := &AllureParser{}
	_, err := p.ParseBytes([]byte(`{"status": 3}`))
	if err == nil {
		t.Fatal("Expected error for numeric status")
	}

	msg := err.Error()
	if !strings.Contains(msg, "/status") {
		t.Errorf("Expected error to point at /status, got %q", msg)
	}
	if strings.Contains(msg, "file://") || strings.Contains(msg, "\n") {
		t.Errorf("Expected a single-line message without schema file paths, got %q", msg)
	}
}

func TestAllureParser_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a-result.json")
	if err := os.WriteFile(path, []byte(`{"status": "passed", "name": "test_get_users"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	p := &AllureParser{}
	outcome, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if outcome.Status != models.StatusPassed || outcome.Name != "test_get_users" {
		t.Errorf("Unexpected outcome: %+v", outcome)
	}
}

func TestAllureParser_ParseMissingFile(t *testing.T) {
	p := &AllureParser{}
	if _, err := p.Parse(filepath.Join(t.TempDir(), "missing-result.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseSummary(t *testing.T) {
	payload, err := ParseSummary([]byte(`{"total": 3, "failed": 1}`))
	if err != nil {
		t.Fatalf("ParseSummary failed: %v", err)
	}
	if string(payload) != `{"total": 3, "failed": 1}` {
		t.Errorf("Payload should be kept verbatim, got %s", payload)
	}

	if _, err := ParseSummary([]byte(`[1, 2]`)); err == nil {
		t.Error("Expected error for non-object summary")
	}
}
