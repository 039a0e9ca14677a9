package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assignment/auction"
)

// runCmd executes a fresh root command with args and returns its output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// writeProblem stores a YAML problem file in a temporary directory.
func writeProblem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRandomSamples(t *testing.T) {
	out, err := runCmd(t, "-p", "3", "-o", "4", "-s", "2", "--seed", "7", "-v")
	require.NoError(t, err)
	require.Contains(t, out, "Sample #1\nRandom seed = 7\n")
	require.Contains(t, out, "Sample #2\nRandom seed = 8\n")
	require.Contains(t, out, "Generating random arc benefits:")
	require.Contains(t, out, "Assignment results:")
	require.Contains(t, out, "2 -> ")
}

func TestRandomSamples_SameSeedSameResult(t *testing.T) {
	first, err := runCmd(t, "-p", "4", "-o", "6", "-s", "3", "--seed", "11", "--json")
	require.NoError(t, err)
	second, err := runCmd(t, "-p", "4", "-o", "6", "-s", "1", "--seed", "13", "--json")
	require.NoError(t, err)

	var all, one []report
	require.NoError(t, json.Unmarshal([]byte(first), &all))
	require.NoError(t, json.Unmarshal([]byte(second), &one))
	require.Len(t, all, 3)
	require.Len(t, one, 1)
	require.Equal(t, int64(13), all[2].Seed)
	require.Equal(t, all[2].Assignment, one[0].Assignment)
	require.Equal(t, all[2].Total, one[0].Total)
}

func TestRandomSamples_InvalidSize(t *testing.T) {
	_, err := runCmd(t, "-p", "3", "-o", "2")
	require.ErrorIs(t, err, auction.ErrInvalidCapacity)
}

func TestInputFile(t *testing.T) {
	path := writeProblem(t, `
benefits:
  - [3, 1, 2]
  - [4, 0, 5]
`)
	out, err := runCmd(t, "--input", path, "--json")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, []int{0, 2}, rep.Assignment)
	require.Equal(t, 8.0, rep.Total)
	require.Equal(t, 2, rep.Persons)
	require.Equal(t, 3, rep.Objects)

	out, err = runCmd(t, "--input", path)
	require.NoError(t, err)
	require.Contains(t, out, "Total benefit = 8\n")
	require.Contains(t, out, "0 -> 0\n1 -> 2\n")
}

func TestInputFile_SlackBenefit(t *testing.T) {
	path := writeProblem(t, `
slack_benefit: 10
benefits:
  - [1, 2]
`)
	out, err := runCmd(t, "--input", path)
	require.NoError(t, err)
	require.Contains(t, out, "0 -> null\n")

	// An explicit flag wins over the file.
	out, err = runCmd(t, "--input", path, "-e", "0")
	require.NoError(t, err)
	require.Contains(t, out, "0 -> 1\n")
}

func TestInputFile_Errors(t *testing.T) {
	_, err := runCmd(t, "--input", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ragged := writeProblem(t, "benefits:\n  - [1, 2]\n  - [3]\n")
	_, err = runCmd(t, "--input", ragged)
	require.Error(t, err)

	tall := writeProblem(t, "benefits:\n  - [1]\n  - [2]\n")
	_, err = runCmd(t, "--input", tall)
	require.ErrorIs(t, err, auction.ErrInvalidCapacity)

	_, err = runCmd(t, "--input", writeProblem(t, "benefits: [[1, 2]]\n"), "--slack", "0")
	require.ErrorIs(t, err, auction.ErrInvalidOption)
}
