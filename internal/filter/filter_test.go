package filter_test

import (
	"testing"

	"github.com/joe/seqscan/internal/filter"
)

func TestEmptySetMatchesEverything(t *testing.T) {
	t.Parallel()

	s := filter.New(nil)
	if !s.Match("anything.jpg") {
		t.Error("empty filter set should match everything")
	}
}

func TestSetMatchesAnyPattern(t *testing.T) {
	t.Parallel()

	s := filter.New([]string{"*.mov", "*.jpg"})

	if !s.Match("shot010.jpg") {
		t.Error("expected shot010.jpg to match *.jpg")
	}
	if !s.Match("plate.mov") {
		t.Error("expected plate.mov to match *.mov")
	}
	if s.Match("notes.txt") {
		t.Error("notes.txt should not match either pattern")
	}
}

func TestSetSupportsDoubleStarRecursion(t *testing.T) {
	t.Parallel()

	s := filter.New([]string{"renders/**/*.exr"})

	if !s.Match("renders/beauty/shot010/img.0001.exr") {
		t.Error("expected nested exr path to match the ** pattern")
	}
}
