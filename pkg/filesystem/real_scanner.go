package filesystem

import (
	"io/fs"
	"os"
)

// RealScanner implements Scanner against the actual OS filesystem.
// Adapted from the teacher's realFileScanner (pkg/filesystem/
// real_scanner.go): that scanner walked an entire subtree with
// filepath.Walk and buffered FileInfo for iteration; this one reads a
// single directory level with os.ReadDir, since spec.md treats recursive
// walking as the caller's concern (only Browse recurses, explicitly).
type RealScanner struct{}

// NewRealScanner returns a Scanner backed by the OS filesystem.
func NewRealScanner() RealScanner {
	return RealScanner{}
}

// List reads the direct entries of dir. It uses os.ReadDir, whose
// DirEntry.Type() reflects Lstat (not Stat) semantics, so a symlink is
// reported as IsSymlink rather than silently resolved to whatever it
// points at.
func (RealScanner) List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{
			Name:      e.Name(),
			IsDir:     e.IsDir(),
			IsSymlink: e.Type()&fs.ModeSymlink != 0,
		})
	}

	return entries, nil
}
