package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2022/internal/version"
	"aoc2022/pkg/api"
)

const examplesDir = "../../examples"

// isolate keeps host config and environment out of a run.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AOC_CONFIG", "AOC_INPUTS_DIR", "AOC_EXAMPLES_DIR", "AOC_OUTPUT", "AOC_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := RunContext(context.Background(), args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSolveExamplesAllDays(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "solve", "all", "--example", "--examples-dir", examplesDir, "--no-header")
	require.Equal(t, 0, code, stderr)

	want := strings.Join([]string{
		"1\t1\tCalorie Counting\t24000",
		"1\t2\tCalorie Counting\t45000",
		"2\t1\tRock Paper Scissors\t15",
		"2\t2\tRock Paper Scissors\t12",
		"3\t1\tRucksack Reorganization\t157",
		"3\t2\tRucksack Reorganization\t70",
		"4\t1\tCamp Cleanup\t2",
		"4\t2\tCamp Cleanup\t4",
		"5\t1\tSupply Stacks\tCMZ",
		"5\t2\tSupply Stacks\tMCD",
		"6\t1\tTuning Trouble\t7",
		"6\t2\tTuning Trouble\t19",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestSolveJSONSinglePart(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "solve", "5", "-e", "--examples-dir", examplesDir, "-p", "2", "-o", "json")
	require.Equal(t, 0, code, stderr)

	var got []api.AnswerV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []api.AnswerV1{{
		Day: 5, Part: 2, Title: "Supply Stacks", Answer: "MCD",
		Input: filepath.Join(examplesDir, "05.txt"),
	}}, got)
}

func TestSolveJSONL(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "solve", "1-2", "-e", "--examples-dir", examplesDir, "-o", "jsonl")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	var last api.AnswerV1
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, "12", last.Answer)
	assert.Equal(t, 2, last.Day)
}

func TestSolveInputFlagAndConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "stacks.txt")
	require.NoError(t, os.WriteFile(in, []byte("[A] [B]\n 1   2 \n\nmove 1 from 1 to 2\n"), 0o644))
	cfg := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: yaml\n"), 0o644))

	code, out, stderr := run(t, "solve", "5", "--input", in, "--config", cfg, "--part", "1")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "answer: A")
	assert.Contains(t, out, "day: 5")
}

func TestSolveInputsDirFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("AOC_INPUTS_DIR", examplesDir)
	code, out, stderr := run(t, "solve", "6")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "day\tpart\ttitle\tanswer\n6\t1\tTuning Trouble\t7\n6\t2\tTuning Trouble\t19\n", out)
}

func TestSolveMalformedInputFails(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "05.txt"),
		[]byte("[A] [B]\n 1   2 \n\nmove 3 from 1 to 2\n"), 0o644))

	code, out, stderr := run(t, "solve", "5", "--inputs-dir", dir, "-q")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, strings.TrimPrefix(out, "day\tpart\ttitle\tanswer\n"))
	assert.Contains(t, stderr, "day 5 part 1")
	assert.Contains(t, stderr, "not enough crates")
}

func TestSolvePartialAnswersKept(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "06.txt"), []byte("abcd\n"), 0o644))

	// Part one finds a marker; part two cannot.
	code, out, stderr := run(t, "solve", "6", "--inputs-dir", dir, "--no-header")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "6\t1\tTuning Trouble\t4\n", out)
	assert.Contains(t, stderr, "no marker")
}

func TestSolveUsageErrors(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"solve", "9", "-e", "--examples-dir", examplesDir},
		{"solve", "5", "--part", "3"},
		{"solve", "1", "2", "--input", "x.txt"},
		{"solve", "5", "-e", "--examples-dir", examplesDir, "-o", "xml"},
		{"solve", "--bogus"},
		{"frobnicate"},
	} {
		code, _, stderr := run(t, args...)
		assert.Equal(t, exitUsage, code, "%v", args)
		assert.Contains(t, stderr, "error:", "%v", args)
	}
}

func TestSolveMissingInput(t *testing.T) {
	isolate(t)
	code, _, stderr := run(t, "solve", "5", "--inputs-dir", t.TempDir())
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "input not found")
	assert.NotContains(t, stderr, "Usage:")
}

func TestSolveCanceled(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, []string{"solve", "5", "-e", "--examples-dir", examplesDir}, &out, &errBuf)
	assert.Equal(t, exitCanceled, code)
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)
	code, out, stderr := run(t, "solve", "6", "-e", "--examples-dir", examplesDir, "-v", "--no-header")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "solving")
	assert.NotContains(t, out, "solving")
}

func TestList(t *testing.T) {
	code, out, _ := run(t, "list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, " 5\tSupply Stacks\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestVersionAndHelp(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		code, out, _ := run(t, args...)
		require.Equal(t, 0, code)
		assert.Equal(t, "aoc version "+version.Version+"\n", out)
	}

	code, out, _ := run(t, "--help")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "solve")
	assert.Contains(t, out, "list")
}
