package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/minigrep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	res, shouldExit, err := Parse([]string{"minigrep", "needle", "hay.txt"}, out, nil)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "warn", res.App.LogLevel)
	assert.Equal(t, "text", res.App.LogFormat)
	assert.Equal(t, "needle", res.Search.Query())
	assert.Equal(t, "hay.txt", res.Search.FilePath())
	assert.False(t, res.Search.IgnoreCase())
	assert.Empty(t, out.String())
}

func TestParse_IgnoreCaseFromEnviron(t *testing.T) {
	t.Parallel()

	res, _, err := Parse([]string{"minigrep", "q", "f"}, &bytes.Buffer{}, []string{"PATH=/bin", "IGNORE_CASE="})

	require.NoError(t, err)
	assert.True(t, res.Search.IgnoreCase())
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	args := []string{"minigrep", "-log-level", "DEBUG", "-log-format=json", "q", "f"}

	res, shouldExit, err := Parse(args, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "debug", res.App.LogLevel)
	assert.Equal(t, "json", res.App.LogFormat)
	assert.Equal(t, "q", res.Search.Query())
}

func TestParse_QueryMayLookLikeAFlagAfterPositionals(t *testing.T) {
	t.Parallel()

	res, _, err := Parse([]string{"minigrep", "q", "-log-level"}, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "-log-level", res.Search.FilePath(), "flag parsing stops at the first positional argument")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	res, shouldExit, err := Parse([]string{"minigrep", "-h"}, out, nil)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, res)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "IGNORE_CASE")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "no arguments", args: []string{"minigrep"}, wantMsg: "Problem parsing arguments: not enough arguments"},
		{name: "empty argv", args: nil, wantMsg: "not enough arguments"},
		{name: "query only", args: []string{"minigrep", "q"}, wantMsg: "not enough arguments"},
		{name: "unknown flag", args: []string{"minigrep", "--nope", "q", "f"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "bad log level", args: []string{"minigrep", "-log-level", "loud", "q", "f"}, wantMsg: "invalid log-level"},
		{name: "bad log format", args: []string{"minigrep", "-log-format", "xml", "q", "f"}, wantMsg: "invalid log-format"},
		{name: "missing profile", args: []string{"minigrep", "-profile", "/does/not/exist.hcl", "q", "f"}, wantMsg: "failed to parse profile"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, shouldExit, err := Parse(tc.args, &bytes.Buffer{}, nil)

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, res)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Error(), tc.wantMsg)
		})
	}
}

func TestParse_InsufficientArgumentsIsUnwrappable(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"minigrep", "only-one"}, &bytes.Buffer{}, nil)

	assert.True(t, errors.Is(err, config.ErrInsufficientArguments))
}

func TestParse_ProfileLayering(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "minigrep.hcl")
	src := "log_level = env.MINIGREP_LOG_LEVEL\nlog_format = \"json\"\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	environ := []string{"MINIGREP_LOG_LEVEL=info"}

	res, _, err := Parse([]string{"minigrep", "-profile", path, "q", "f"}, &bytes.Buffer{}, environ)
	require.NoError(t, err)
	assert.Equal(t, "info", res.App.LogLevel, "profile overrides the default")
	assert.Equal(t, "json", res.App.LogFormat)

	res, _, err = Parse([]string{"minigrep", "-profile", path, "-log-format", "text", "q", "f"}, &bytes.Buffer{}, environ)
	require.NoError(t, err)
	assert.Equal(t, "text", res.App.LogFormat, "flags override the profile")
}

func TestEnvironMap(t *testing.T) {
	t.Parallel()

	env := environMap([]string{"A=1", "B=", "C=x=y", "A=2", "=hidden", "junk"})

	assert.Equal(t, map[string]string{"A": "1", "B": "", "C": "x=y"}, env)
}
