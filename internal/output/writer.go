// Package output persists generated summaries.
package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/shawndavis1/ai-test-framework/internal/errs"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
)

// WriteText overwrites path with text.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errs.IO("write", path, err)
	}
	return nil
}

// WriteJSON encodes s as indented JSON to w.
func WriteJSON(w io.Writer, s *models.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
