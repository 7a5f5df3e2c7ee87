// Package summary runs the load, format, summarize and write pipeline.
package summary

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shawndavis1/ai-test-framework/internal/config"
	"github.com/shawndavis1/ai-test-framework/internal/console"
	"github.com/shawndavis1/ai-test-framework/internal/llm"
	"github.com/shawndavis1/ai-test-framework/internal/loader"
	"github.com/shawndavis1/ai-test-framework/internal/output"
	"github.com/shawndavis1/ai-test-framework/internal/report"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"go.uber.org/zap"
)

// Params configures a summarization run.
type Params struct {
	Dir     string
	Profile Profile
	Config  *config.Config
	// Client overrides the client built from Config.
	Client  llm.Client
	Emitter console.Emitter
	Logger  *zap.Logger
}

// Run executes the pipeline once. Configuration problems are reported before
// the results directory is read or any request is sent.
func Run(ctx context.Context, p Params) (*models.Summary, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := p.Client
	if client == nil {
		var err error
		client, err = llm.New(cfg.ClientConfig(p.Profile.Model))
		if err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID), zap.String("profile", p.Profile.Name))

	dir := p.Dir
	if dir == "" {
		dir = cfg.ResultsDir
	}

	console.Emit(p.Emitter, console.EventStart, "Loading test results from %s", dir)
	runSummary, err := loader.New(p.Emitter, logger).Load(dir)
	if err != nil {
		return nil, err
	}
	if runSummary.HasPayload() {
		console.Emit(p.Emitter, console.EventInfo, "Using aggregate report %s", runSummary.Source)
	} else {
		console.Emit(p.Emitter, console.EventInfo, "Found %d test results (%d failing)", runSummary.Total(), len(runSummary.Failing))
	}

	input, err := report.Input(runSummary)
	if err != nil {
		return nil, err
	}

	messages := p.Profile.Messages(input)
	logger.Debug("Sending completion request",
		zap.String("provider", string(client.Provider())),
		zap.String("model", client.Model()),
		zap.Int("prompt_chars", len(messages[len(messages)-1].Content)))

	start := time.Now()
	stop := console.Wait(p.Emitter, "Generating AI summary with "+string(client.Provider())+"/"+client.Model()+"...")
	resp, err := client.Complete(ctx, messages, p.Profile.Options())
	stop()
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	logger.Debug("Completion received",
		zap.Duration("elapsed", elapsed),
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens))

	text := strings.TrimSpace(resp.Content)
	if err := output.WriteText(cfg.Output, text); err != nil {
		return nil, err
	}

	console.Emit(p.Emitter, console.EventSuccess, "AI summary written to %s (%s, %s tokens)",
		cfg.Output, console.FormatDuration(elapsed), console.FormatNumber(resp.InputTokens+resp.OutputTokens))

	model := resp.Model
	if model == "" {
		model = client.Model()
	}

	return &models.Summary{
		RunID:        runID,
		Profile:      p.Profile.Name,
		Text:         text,
		Provider:     string(client.Provider()),
		Model:        model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		OutputPath:   cfg.Output,
	}, nil
}
