package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shawndavis1/ai-test-framework/internal/errs"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ai_summary.txt")

	require.NoError(t, WriteText(path, "first run with a much longer summary"))
	require.NoError(t, WriteText(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteText_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ai_summary.txt")

	err := WriteText(path, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIO))
	assert.Contains(t, err.Error(), path)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	s := &models.Summary{RunID: "r1", Profile: "lead", Text: "ok", Provider: "openai", Model: "gpt-5", OutputPath: "ai_summary.txt"}
	require.NoError(t, WriteJSON(&buf, s))

	var got models.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *s, got)
	assert.Contains(t, buf.String(), "\n  \"run_id\": \"r1\"")
}
