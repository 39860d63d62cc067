// Package lesson holds the runnable lessons: short, linear walkthroughs
// of tensor creation, broadcasting, slicing, reductions, automatic
// differentiation, and a minimal gradient-descent training loop.
//
// Each lesson writes human-readable output to an io.Writer and is
// registered under a stable slug so the CLI can list and run it.
package lesson

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Options carries the runtime knobs a lesson may honor. Lessons that
// have no stochastic or iterative part ignore them.
type Options struct {
	Seed  int64   // random seed for reproducible runs
	Steps int     // training iterations for the gradient-descent lesson
	LR    float64 // learning rate for the gradient-descent lesson
}

// DefaultOptions returns the options lessons run with unless the
// caller overrides them.
func DefaultOptions() Options {
	return Options{
		Seed:  42,
		Steps: 100,
		LR:    0.05,
	}
}

// Lesson is one registered walkthrough.
type Lesson struct {
	Slug    string
	Title   string
	Summary string
	Run     func(w io.Writer, opts Options) error
}

var registry = make(map[string]Lesson)

// Register adds a lesson to the registry. Slugs must be unique;
// a duplicate is a programming error and panics at init time.
func Register(l Lesson) {
	if l.Slug == "" {
		panic("lesson: Register called with empty slug")
	}
	if _, exists := registry[l.Slug]; exists {
		panic(fmt.Sprintf("lesson: duplicate slug %q", l.Slug))
	}
	registry[l.Slug] = l
}

// All returns every registered lesson, sorted by slug.
func All() []Lesson {
	lessons := make([]Lesson, 0, len(registry))
	for _, l := range registry {
		lessons = append(lessons, l)
	}
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].Slug < lessons[j].Slug
	})
	return lessons
}

// Find returns the lesson registered under slug. Unknown slugs produce
// an error listing every known slug.
func Find(slug string) (Lesson, error) {
	l, ok := registry[slug]
	if !ok {
		known := make([]string, 0, len(registry))
		for s := range registry {
			known = append(known, s)
		}
		sort.Strings(known)
		return Lesson{}, fmt.Errorf("unknown lesson %q (known lessons: %s)", slug, strings.Join(known, ", "))
	}
	return l, nil
}

// section prints a lesson section header.
func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n-- %s --\n", title)
}
