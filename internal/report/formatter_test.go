package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStats(t *testing.T) {
	s := models.NewRunSummary("reports")
	s.Add(models.TestOutcome{Name: "test_get_users", Status: models.StatusPassed})
	s.Add(models.TestOutcome{Name: "login_test", Status: models.StatusFailed})
	s.Add(models.TestOutcome{Name: "checkout", Status: models.StatusBroken})
	s.Add(models.TestOutcome{Name: "later", Status: models.StatusSkipped})
	s.Add(models.TestOutcome{Name: "odd", Status: models.StatusUnknown})

	want := "Total tests: 5\n" +
		"Passed: 1\n" +
		"Failed: 1\n" +
		"Broken: 1\n" +
		"Skipped: 1\n\n" +
		"Here are the first few failed tests:\n" +
		"- login_test (failed)\n" +
		"- checkout (broken)\n"

	assert.Equal(t, want, FormatStats(s))
}

func TestFormatStats_Empty(t *testing.T) {
	out := FormatStats(models.NewRunSummary("reports"))
	assert.True(t, strings.HasPrefix(out, "Total tests: 0\n"))
	assert.True(t, strings.HasSuffix(out, "Here are the first few failed tests:\n"))
}

func TestFormatStats_TruncatesFailures(t *testing.T) {
	s := models.NewRunSummary("reports")
	for i := 0; i < 12; i++ {
		s.Add(models.TestOutcome{Name: fmt.Sprintf("t%d", i), Status: models.StatusFailed})
	}

	out := FormatStats(s)
	assert.Equal(t, MaxListedFailures, strings.Count(out, "\n- "))
	assert.Contains(t, out, "- t4 (failed)")
	assert.NotContains(t, out, "- t5 (failed)")
	assert.Contains(t, out, "Failed: 12\n")
}

func TestFormatStats_Deterministic(t *testing.T) {
	build := func() *models.RunSummary {
		s := models.NewRunSummary("reports")
		s.Add(models.TestOutcome{Name: "a", Status: models.StatusFailed})
		s.Add(models.TestOutcome{Name: "b", Status: "flaky"})
		s.Add(models.TestOutcome{Name: "c", Status: models.StatusPassed})
		return s
	}
	assert.Equal(t, FormatStats(build()), FormatStats(build()))
}

func TestInput_Payload(t *testing.T) {
	s := models.NewRunSummary("reports/summary.json")
	s.Payload = []byte(`{"total":3,"failed":["login_test"]}`)

	out, err := Input(s)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"total\": 3,\n  \"failed\": [\n    \"login_test\"\n  ]\n}", out)
}

func TestInput_Stats(t *testing.T) {
	s := models.NewRunSummary("reports")
	out, err := Input(s)
	require.NoError(t, err)
	assert.Equal(t, FormatStats(s), out)
}
