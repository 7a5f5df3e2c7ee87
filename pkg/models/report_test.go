package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusPassed, NormalizeStatus("PASSED"))
	assert.Equal(t, StatusBroken, NormalizeStatus(" Broken "))
	assert.Equal(t, StatusUnknown, NormalizeStatus(""))
	assert.Equal(t, TestStatus("flaky"), NormalizeStatus("Flaky"))
}

func TestNewRunSummary_SeedsCategories(t *testing.T) {
	s := NewRunSummary("reports")
	for _, c := range Categories {
		v, ok := s.Counts[c]
		assert.True(t, ok, "category %s should be seeded", c)
		assert.Zero(t, v)
	}
	assert.Zero(t, s.Total())
	assert.Empty(t, s.Failing)
	assert.False(t, s.HasPayload())
}

func TestRunSummary_Add(t *testing.T) {
	s := NewRunSummary("reports")
	s.Add(TestOutcome{Name: "a", Status: StatusPassed})
	s.Add(TestOutcome{Name: "b", Status: StatusFailed})
	s.Add(TestOutcome{Name: "c", Status: StatusBroken})
	s.Add(TestOutcome{Name: "d", Status: StatusSkipped})
	s.Add(TestOutcome{Name: "e", Status: "flaky"})

	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 1, s.Count(StatusPassed))
	assert.Equal(t, 1, s.Count("flaky"))
	assert.Equal(t, []TestOutcome{
		{Name: "b", Status: StatusFailed},
		{Name: "c", Status: StatusBroken},
	}, s.Failing)
}

func TestRunSummary_FailingExcludesPassedAndSkipped(t *testing.T) {
	s := NewRunSummary("reports")
	for _, st := range []TestStatus{StatusPassed, StatusSkipped, StatusUnknown, StatusPassed} {
		s.Add(TestOutcome{Name: "t", Status: st})
	}
	assert.Empty(t, s.Failing)
	assert.Equal(t, 4, s.Total())
}
