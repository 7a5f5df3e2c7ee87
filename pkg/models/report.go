package models

import (
	"encoding/json"
	"strings"
)

// TestStatus represents the outcome category of a single test result
type TestStatus string

const (
	StatusPassed  TestStatus = "passed"
	StatusFailed  TestStatus = "failed"
	StatusBroken  TestStatus = "broken"
	StatusSkipped TestStatus = "skipped"
	StatusUnknown TestStatus = "unknown"
)

// Categories lists the well-known outcome categories in report order.
var Categories = []TestStatus{StatusPassed, StatusFailed, StatusBroken, StatusSkipped, StatusUnknown}

// DefaultTestName is used when a result record carries no name.
const DefaultTestName = "Unnamed Test"

// NormalizeStatus lower-cases and trims a raw status. Empty input maps to unknown.
func NormalizeStatus(raw string) TestStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusUnknown
	}
	return TestStatus(s)
}

// TestOutcome represents a single parsed test result
type TestOutcome struct {
	Name   string     `json:"name"`
	Status TestStatus `json:"status"`
}

// IsFailing returns true for failed and broken outcomes
func (o TestOutcome) IsFailing() bool {
	return o.Status == StatusFailed || o.Status == StatusBroken
}

// RunSummary aggregates the outcomes of one test run.
//
// When Payload is set the run was described by an opaque aggregate report
// and Counts stays at zero.
type RunSummary struct {
	Counts   map[TestStatus]int `json:"counts"`
	Failing  []TestOutcome      `json:"failing"`
	Payload  json.RawMessage    `json:"payload,omitempty"`
	Source   string             `json:"source"`
	Warnings []string           `json:"warnings,omitempty"`
}

// NewRunSummary returns a summary with every category seeded at zero
func NewRunSummary(source string) *RunSummary {
	counts := make(map[TestStatus]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	return &RunSummary{
		Counts:  counts,
		Failing: make([]TestOutcome, 0),
		Source:  source,
	}
}

// Add records an outcome. Unrecognised statuses get their own counter.
func (s *RunSummary) Add(o TestOutcome) {
	s.Counts[o.Status]++
	if o.IsFailing() {
		s.Failing = append(s.Failing, o)
	}
}

// Count returns the number of outcomes recorded for status
func (s *RunSummary) Count(status TestStatus) int {
	return s.Counts[status]
}

// Total returns the sum of all category counts
func (s *RunSummary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// HasPayload reports whether the summary wraps an aggregate report
func (s *RunSummary) HasPayload() bool {
	return len(s.Payload) > 0
}

// Warn records a non-fatal problem encountered while loading
func (s *RunSummary) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}
