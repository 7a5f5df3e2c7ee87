// Package loader turns a results directory into a RunSummary.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shawndavis1/ai-test-framework/internal/console"
	"github.com/shawndavis1/ai-test-framework/internal/errs"
	"github.com/shawndavis1/ai-test-framework/internal/parser"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"go.uber.org/zap"
)

// Loader scans result directories.
type Loader struct {
	Emitter console.Emitter
	Logger  *zap.Logger
	parser  parser.AllureParser
}

// New creates a Loader. A nil logger is replaced by a no-op one.
func New(emitter console.Emitter, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Emitter: emitter, Logger: logger}
}

// Load builds a RunSummary from dir.
//
// An aggregate summary.json at the root wins over per-test files and is kept
// opaque. Per-test files that cannot be read or parsed are skipped with a
// warning. A missing directory yields an empty summary and a warning.
func (l *Loader) Load(dir string) (*models.RunSummary, error) {
	summary := models.NewRunSummary(dir)

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.warn(summary, "Results directory not found: %s", dir)
		return summary, nil
	}
	if err != nil {
		return nil, errs.IO("stat", dir, err)
	}
	if !info.IsDir() {
		return nil, errs.IO("scan", dir, errors.New("not a directory"))
	}

	aggregate := filepath.Join(dir, parser.SummaryFile)
	if data, err := os.ReadFile(aggregate); err == nil {
		payload, err := parser.ParseSummary(data)
		if err != nil {
			return nil, errs.Parse(aggregate, err)
		}
		l.Logger.Debug("Using aggregate report", zap.String("path", aggregate), zap.Int("bytes", len(data)))
		summary.Payload = payload
		summary.Source = aggregate
		return summary, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errs.IO("read", aggregate, err)
	}

	// ReadDir returns entries sorted by name, which fixes the scan order.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.IO("scan", dir, err)
	}

	ignored := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, parser.ResultSuffix) {
			ignored++
			continue
		}

		path := filepath.Join(dir, name)
		outcome, err := l.parser.Parse(path)
		if err != nil {
			l.Logger.Debug("Skipping result file", zap.String("path", path), zap.Error(err))
			l.warn(summary, "Could not read %s: %v", name, err)
			continue
		}

		l.Logger.Debug("Parsed result",
			zap.String("file", name),
			zap.String("test", outcome.Name),
			zap.String("status", string(outcome.Status)))
		summary.Add(outcome)
	}

	if ignored > 0 {
		console.Emit(l.Emitter, console.EventSkip, "Ignored %d entries that are not *%s files", ignored, parser.ResultSuffix)
	}
	return summary, nil
}

func (l *Loader) warn(summary *models.RunSummary, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	console.Emit(l.Emitter, console.EventWarning, "%s", msg)
	summary.Warn(msg)
}
