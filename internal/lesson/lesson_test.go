package lesson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/lesson"
)

func TestAllLessonsRegistered(t *testing.T) {
	var slugs []string
	for _, l := range lesson.All() {
		slugs = append(slugs, l.Slug)
	}

	assert.Equal(t, []string{
		"00-tensors",
		"01-gradient-descent",
		"02-broadcasting",
		"03-slicing",
		"04-reductions",
		"05-autodiff",
	}, slugs)
}

func TestAllLessonsRun(t *testing.T) {
	for _, l := range lesson.All() {
		t.Run(l.Slug, func(t *testing.T) {
			var buf bytes.Buffer
			err := l.Run(&buf, lesson.DefaultOptions())
			require.NoError(t, err)
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestFindUnknownSlugListsKnown(t *testing.T) {
	_, err := lesson.Find("99-nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99-nonexistent")
	assert.Contains(t, err.Error(), "01-gradient-descent")
	assert.Contains(t, err.Error(), "05-autodiff")
}

func TestFindKnownSlug(t *testing.T) {
	l, err := lesson.Find("00-tensors")
	require.NoError(t, err)
	assert.Equal(t, "00-tensors", l.Slug)
	assert.NotNil(t, l.Run)
}

func TestLessonOutputIsDeterministic(t *testing.T) {
	for _, slug := range []string{"00-tensors", "01-gradient-descent"} {
		t.Run(slug, func(t *testing.T) {
			l, err := lesson.Find(slug)
			require.NoError(t, err)

			var a, b bytes.Buffer
			require.NoError(t, l.Run(&a, lesson.DefaultOptions()))
			require.NoError(t, l.Run(&b, lesson.DefaultOptions()))
			assert.Equal(t, a.String(), b.String())
		})
	}
}

func TestBroadcastingLessonShowsIncompatibleShapes(t *testing.T) {
	l, err := lesson.Find("02-broadcasting")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.Run(&buf, lesson.DefaultOptions()))
	assert.True(t, strings.Contains(buf.String(), "Incompatible"),
		"lesson must demonstrate the incompatible-shape error")
}
