package lesson_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/lesson"
)

func TestFitLinearConverges(t *testing.T) {
	opts := lesson.DefaultOptions()

	result, err := lesson.FitLinear(io.Discard, opts)
	require.NoError(t, err)
	require.Len(t, result.Losses, opts.Steps)

	// Full-batch gradient descent on a quadratic loss at a stable
	// learning rate moves downhill every step. Allow one float32 ulp
	// of slack near the plateau.
	for i := 1; i < len(result.Losses); i++ {
		assert.LessOrEqual(t, result.Losses[i], result.Losses[i-1]+1e-6,
			"loss increased at step %d", i)
	}

	assert.Less(t, result.Losses[len(result.Losses)-1], result.Losses[0]/10,
		"loss should drop by at least an order of magnitude")
}

func TestFitLinearRejectsNegativeSteps(t *testing.T) {
	opts := lesson.DefaultOptions()
	opts.Steps = -1

	result, err := lesson.FitLinear(io.Discard, opts)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "steps must be non-negative")
}

func TestFitLinearRecoversParameters(t *testing.T) {
	opts := lesson.DefaultOptions()
	opts.Steps = 500

	result, err := lesson.FitLinear(io.Discard, opts)
	require.NoError(t, err)

	// Data is drawn from w=2, b=-1 with noise 0.05.
	assert.InDelta(t, 2.0, result.Weight, 0.1)
	assert.InDelta(t, -1.0, result.Bias, 0.1)
}

func TestFitLinearSeedReproducibility(t *testing.T) {
	opts := lesson.DefaultOptions()

	a, err := lesson.FitLinear(io.Discard, opts)
	require.NoError(t, err)
	b, err := lesson.FitLinear(io.Discard, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.Weight, b.Weight)

	opts.Seed = 7
	c, err := lesson.FitLinear(io.Discard, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Losses[0], c.Losses[0], "different seeds should give different data")
}

func TestFitLinearHonorsStepCount(t *testing.T) {
	opts := lesson.DefaultOptions()
	opts.Steps = 7

	var buf bytes.Buffer
	result, err := lesson.FitLinear(&buf, opts)
	require.NoError(t, err)
	assert.Len(t, result.Losses, 7)
	assert.NotEmpty(t, buf.String())
}
