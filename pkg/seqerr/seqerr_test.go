package seqerr_test

import (
	"errors"
	"testing"

	"github.com/joe/seqscan/pkg/seqerr"
)

func TestNotFoundIncludesPath(t *testing.T) {
	t.Parallel()

	err := seqerr.NotFound("/shots/010")
	if err.Kind() != seqerr.KindInputNotFound {
		t.Errorf("expected kind %q, got %q", seqerr.KindInputNotFound, err.Kind())
	}
	if err.Path() != "/shots/010" {
		t.Errorf("expected path %q, got %q", "/shots/010", err.Path())
	}
	if len(err.Suggestions()) == 0 {
		t.Error("expected suggestions, got none")
	}
}

func TestNotADirectoryMessage(t *testing.T) {
	t.Parallel()

	err := seqerr.NotADirectory("/shots/010/img.0001.jpg")
	if err.Kind() != seqerr.KindInputNotADirectory {
		t.Errorf("expected kind %q, got %q", seqerr.KindInputNotADirectory, err.Kind())
	}
	if err.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestPatternUnrecognizedIdentifiesFilename(t *testing.T) {
	t.Parallel()

	err := seqerr.PatternUnrecognized("notes.txt")
	if err.Kind() != seqerr.KindPatternUnrecognized {
		t.Errorf("expected kind %q, got %q", seqerr.KindPatternUnrecognized, err.Kind())
	}
	if err.Path() != "notes.txt" {
		t.Errorf("expected path %q, got %q", "notes.txt", err.Path())
	}
}

func TestFilesystemReadWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := seqerr.FilesystemRead("/shots/010", cause)

	if err.Kind() != seqerr.KindFilesystemRead {
		t.Errorf("expected kind %q, got %q", seqerr.KindFilesystemRead, err.Kind())
	}
	if err.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestDetectionConfigInvalidHasNoPath(t *testing.T) {
	t.Parallel()

	err := seqerr.DetectionConfigInvalid("no pattern flavors accepted")
	if err.Path() != "" {
		t.Errorf("expected empty path, got %q", err.Path())
	}
	if err.Error() != "no pattern flavors accepted" {
		t.Errorf("expected bare message when path is empty, got %q", err.Error())
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	t.Parallel()

	var _ error = seqerr.NotFound("/x")
}
