package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/linefold/format"
	"github.com/signadot/linefold/mergeop"
	"github.com/stretchr/testify/require"
)

func runString(t *testing.T, cfg *MainConfig, input string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(cfg, strings.NewReader(input), out, errOut)
	return out.String(), errOut.String(), err
}

func defaultConfig() *MainConfig {
	return &MainConfig{Delimiter: ":", Sentinel: ";"}
}

func TestRunEOF(t *testing.T) {
	out, _, err := runString(t, defaultConfig(), "noise\n;a:1\n;b.c:x\n")
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1,\"b\":{\"c\":\"x\"}}\n", out)
}

func TestRunEmptyInput(t *testing.T) {
	out, _, err := runString(t, defaultConfig(), "")
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)
}

func TestRunNoTrailingNewline(t *testing.T) {
	out, _, err := runString(t, defaultConfig(), ";a:1\n;a:2")
	require.NoError(t, err)
	require.Equal(t, "{\"a\":[1,2]}\n", out)
}

func TestRunFlushAndEnd(t *testing.T) {
	input := strings.Join([]string{
		";a:1",
		";stdout.loop:flush",
		";b:2",
		";stdout.loop:clear",
		";c:3",
		";stdout.loop:end",
		";d:4",
	}, "\n") + "\n"
	out, _, err := runString(t, defaultConfig(), input)
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1}\n{\"c\":3}\n", out)
}

func TestRunWarnings(t *testing.T) {
	input := ";a:1\n;a:2\n;a.b:2\n;stdout.loop:bogus\n;c:3\n"
	out, errOut, err := runString(t, defaultConfig(), input)
	require.NoError(t, err)
	require.Equal(t, "{\"a\":[1,2],\"c\":3}\n", out)
	require.Equal(t, 2, strings.Count(errOut, "Warning:"), errOut)
	require.Contains(t, errOut, "unknown command")
}

func TestRunWarningsAsError(t *testing.T) {
	cfg := defaultConfig()
	cfg.Warnings = true
	out, _, err := runString(t, cfg, ";a:1\n;a:2\n;a.b:3\n;c:4\n")
	require.ErrorIs(t, err, mergeop.ErrPolicyViolation)
	require.Empty(t, out)
}

func TestRunTee(t *testing.T) {
	cfg := defaultConfig()
	cfg.Tee = true
	input := "hello\n;a:1\n"
	_, errOut, err := runString(t, cfg, input)
	require.NoError(t, err)
	require.Equal(t, input, errOut)
}

func TestRunPolicyAndFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.Policy = mergeop.MergeDictInArray
	cfg.OutFormat = format.YAMLFormat
	out, _, err := runString(t, cfg, ";a:1\n;a:2\n;a.b:3\n")
	require.NoError(t, err)
	require.Contains(t, out, "a:\n")
	require.Contains(t, out, "b: 3")
	require.NotContains(t, out, "[")
}

func TestRunVerbose(t *testing.T) {
	cfg := defaultConfig()
	cfg.Verbosity = 1
	_, errOut, err := runString(t, cfg, ";a:1\n;a:2\n")
	require.NoError(t, err)
	require.Contains(t, errOut, "key already exists")
	require.NotContains(t, errOut, "time=")
}

func TestRunEmptyDelimiter(t *testing.T) {
	cfg := defaultConfig()
	cfg.Delimiter = ""
	_, _, err := runString(t, cfg, ";a:1\n")
	require.Error(t, err)
}

func TestRunIndent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Indent = 2
	out, _, err := runString(t, cfg, ";a:1\n")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}\n", out)
}

func parsedConfig(t *testing.T, args ...string) (*MainConfig, []string) {
	t.Helper()
	cfg := defaultConfig()
	newMainCommand(cfg)
	rest, err := cfg.parseArgs(cli.DefaultContext(), args)
	require.NoError(t, err)
	return cfg, rest
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		verbosity int
	}{
		{"none", nil, 0},
		{"once", []string{"-v"}, 1},
		{"twice", []string{"-v", "-v"}, 2},
		{"stacked", []string{"-vv", "--verbose"}, 3},
		{"value", []string{"-v=2"}, 2},
		{"mixed", []string{"-v", "-policy", "merge", "-t", "-v"}, 2},
		{"optValue", []string{"-s", "-v", "-v"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest := parsedConfig(t, tt.args...)
			require.Equal(t, tt.verbosity, cfg.Verbosity)
			require.Empty(t, rest)
		})
	}

	cfg, _ := parsedConfig(t, "-v", "-policy", "merge", "-t", "-v")
	require.Equal(t, mergeop.MergeDictInArray, cfg.Policy)
	require.True(t, cfg.Tee)

	cfg, _ = parsedConfig(t, "-s", "-v", "-v")
	require.Equal(t, "-v", cfg.Sentinel)

	cfg, rest := parsedConfig(t, "-v", "--", "-v")
	require.Equal(t, 1, cfg.Verbosity)
	require.Equal(t, []string{"--", "-v"}, rest)
}

func TestParseBadVerbosity(t *testing.T) {
	cfg := defaultConfig()
	newMainCommand(cfg)
	_, err := cfg.parseArgs(cli.DefaultContext(), []string{"-v=many"})
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestRunVerboseDiff(t *testing.T) {
	cfg, _ := parsedConfig(t, "-v", "-v")
	_, errOut, err := runString(t, cfg, ";a:1\n;a:2\n")
	require.NoError(t, err)
	require.Contains(t, errOut, "key already exists")
	require.Contains(t, errOut, "diff=")
}

var errClosed = errors.New("closed")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestRunTeeWriteError(t *testing.T) {
	cfg := defaultConfig()
	cfg.Tee = true
	out := &bytes.Buffer{}
	err := run(cfg, strings.NewReader(";a:1\n"), out, closedWriter{})
	require.ErrorIs(t, err, errClosed)
	require.Empty(t, out.String())
}
