package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestListShowsAllLessons(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, slug := range []string{
		"00-tensors",
		"01-gradient-descent",
		"02-broadcasting",
		"03-slicing",
		"04-reductions",
		"05-autodiff",
	} {
		assert.Contains(t, out, slug)
	}
}

func TestRunUnknownLesson(t *testing.T) {
	_, err := execute(t, "run", "99-nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99-nonexistent")
	assert.Contains(t, err.Error(), "01-gradient-descent", "error should list the known lessons")
}

func TestRunWiresTrainingFlags(t *testing.T) {
	out, err := execute(t, "run", "01-gradient-descent", "--steps", "5", "--lr", "0.1", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "=== 01-gradient-descent:")
	assert.Contains(t, out, "steps=5 lr=0.1 seed=7")
	assert.Equal(t, 5, strings.Count(out, "step "), "one progress line per step at 5 steps")
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	first, err := execute(t, "run", "01-gradient-descent", "--steps", "20", "--seed", "11")
	require.NoError(t, err)
	second, err := execute(t, "run", "01-gradient-descent", "--steps", "20", "--seed", "11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunRejectsNegativeSteps(t *testing.T) {
	_, err := execute(t, "run", "01-gradient-descent", "--steps=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be non-negative")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sprout v0.1.0\n", out)
}
