package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/loader"
	"github.com/katalvlaran/lvcover/setcover"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Golden(t *testing.T) {
	cases := []struct {
		golden string
		args   []string
	}{
		{"triangle", []string{filepath.Join("testdata", "triangle.txt")}},
		{"legacy", []string{filepath.Join("testdata", "legacy.txt")}},
		{"empty", []string{filepath.Join("testdata", "empty.txt")}},
		{"legacy_new_file", []string{"--new-file", filepath.Join("testdata", "legacy.txt")}},
		{"triangle", []string{"--workers=4", "--log-level=error", filepath.Join("testdata", "triangle.txt")}},
	}
	g := goldie.New(t)
	for _, tc := range cases {
		stdout, _, err := runCLI(t, tc.args...)
		require.NoError(t, err, "args %v", tc.args)
		g.Assert(t, tc.golden, []byte(stdout))
	}
}

func TestRun_LegacyWarnings(t *testing.T) {
	_, stderr, err := runCLI(t, filepath.Join("testdata", "legacy.txt"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Old file format detected")
	assert.Contains(t, stderr, "removed header lines")
	assert.Contains(t, stderr, "missing elements")
	assert.Contains(t, stderr, "computed length of shortest solution")

	_, stderr, err = runCLI(t, "--new-file", filepath.Join("testdata", "legacy.txt"))
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Old file format detected")
}

func TestRun_DebugTrace(t *testing.T) {
	_, stderr, err := runCLI(t, "--log-level=debug", filepath.Join("testdata", "triangle.txt"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "checking bound")
	assert.Contains(t, stderr, "found solution")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t)
	assert.Error(t, err, "input argument is required")

	_, _, err = runCLI(t, filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)

	_, _, err = runCLI(t, filepath.Join("testdata", "bad.txt"))
	assert.ErrorIs(t, err, loader.ErrMalformedLine)

	_, _, err = runCLI(t, "--max-element=2", filepath.Join("testdata", "triangle.txt"))
	assert.ErrorIs(t, err, setcover.ErrInvalidInput)

	_, _, err = runCLI(t, "--log-level=loud", filepath.Join("testdata", "triangle.txt"))
	assert.Error(t, err)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{filepath.Join("testdata", "triangle.txt")}, &stdout, &stderr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String(), "no partial output")
}

func TestEventLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	fn := eventLogger(logger)

	fn(setcover.Event{Kind: setcover.EventBoundChecked, Bound: 12, Combinations: 1234567})
	e := hook.LastEntry()
	require.NotNil(t, e)
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, "1,234,567", e.Data["combinations"])
	assert.Equal(t, 12, e.Data["bound"])

	fn(setcover.Event{Kind: setcover.EventMissingElements, Missing: []int{4}})
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	fn(setcover.Event{Kind: setcover.EventBoundFixed, Bound: 2})
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	fn(setcover.Event{Kind: setcover.EventSolutionFound, Indices: []int{0, 2}})
	assert.Equal(t, "1 3", hook.LastEntry().Data["indices"])

	assert.Len(t, hook.AllEntries(), 4)
}

func TestClampInt64(t *testing.T) {
	assert.Equal(t, int64(7), clampInt64(7))
	assert.Equal(t, int64(1<<63-1), clampInt64(1<<64-1))
}
