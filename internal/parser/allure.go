package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
)

// ResultSuffix is the file name suffix of per-test Allure result files.
const ResultSuffix = "-result.json"

// SummaryFile is the aggregate report looked for at the results root.
const SummaryFile = "summary.json"

// AllureParser parses Allure result records
type AllureParser struct{}

// allureResult holds the fields of an Allure result record we care about.
// Name may be any JSON scalar; numbers keep their literal form.
type allureResult struct {
	Name   any     `json:"name"`
	Status *string `json:"status"`
}

// Parse reads and parses a single Allure result file
func (p *AllureParser) Parse(path string) (models.TestOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.TestOutcome{}, fmt.Errorf("failed to read result: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses an Allure result record from raw bytes.
// Missing or null status maps to unknown; a missing, null or empty name
// maps to DefaultTestName.
func (p *AllureParser) ParseBytes(data []byte) (models.TestOutcome, error) {
	if err := validate(func() *jsonschema.Schema { return resultSchema }, data); err != nil {
		return models.TestOutcome{}, err
	}

	var raw allureResult
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return models.TestOutcome{}, fmt.Errorf("failed to parse result: %w", err)
	}

	return p.normalize(raw), nil
}

func (p *AllureParser) normalize(raw allureResult) models.TestOutcome {
	var name string
	switch v := raw.Name.(type) {
	case nil:
	case string:
		name = v
	default:
		name = fmt.Sprint(v)
	}
	if name == "" {
		name = models.DefaultTestName
	}

	var status string
	if raw.Status != nil {
		status = *raw.Status
	}
	return models.TestOutcome{
		Name:   name,
		Status: models.NormalizeStatus(status),
	}
}

// ParseSummary validates an aggregate report and returns it verbatim.
func ParseSummary(data []byte) (json.RawMessage, error) {
	if err := validate(func() *jsonschema.Schema { return summarySchema }, data); err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
