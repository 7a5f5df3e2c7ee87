package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := IO("write", "ai_summary.txt", fs.ErrPermission)
	assert.Equal(t, "write ai_summary.txt: permission denied", err.Error())

	err = Config("OPENAI_API_KEY environment variable required")
	assert.Equal(t, "configuration error: OPENAI_API_KEY environment variable required", err.Error())
}

func TestError_IsKind(t *testing.T) {
	err := fmt.Errorf("summarize: %w", Config("missing key"))
	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrService))
}

func TestError_Unwrap(t *testing.T) {
	err := Parse("a-result.json", fs.ErrInvalid)
	assert.True(t, errors.Is(err, fs.ErrInvalid))
	assert.True(t, errors.Is(err, ErrParse))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitConfigError, ExitCode(Config("x")))
	assert.Equal(t, ExitRuntimeError, ExitCode(Service("complete", errors.New("boom"))))
	assert.Equal(t, ExitRuntimeError, ExitCode(errors.New("plain")))
}
