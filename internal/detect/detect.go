// Package detect implements the sequence-detector's entry points: the
// functions a caller actually invokes to turn a directory or a bare
// filename list into classified Items. It wires together
// pkg/filesystem (directory listing), pkg/sequence (decomposition and
// grouping), internal/filter (glob filtering) and pkg/seqerr (actionable
// failures).
package detect

import (
	"context"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/joe/seqscan/internal/filter"
	"github.com/joe/seqscan/internal/logx"
	"github.com/joe/seqscan/pkg/filesystem"
	"github.com/joe/seqscan/pkg/seqerr"
	"github.com/joe/seqscan/pkg/sequence"
)

// Detector holds the dependencies entry points need, grounded in the
// teacher's Engine struct (pkg/filesystem.Scanner and a Logger held as
// fields, for dependency injection in tests). A nil Logger is legal and
// means "don't log".
type Detector struct {
	Scanner filesystem.Scanner
	Logger  *logx.Logger
}

// New returns a Detector backed by the real OS filesystem.
func New() *Detector {
	return &Detector{Scanner: filesystem.NewRealScanner()}
}

// WithLogger attaches a logger used to trace entry-point calls.
func (d *Detector) WithLogger(l *logx.Logger) *Detector {
	d.Logger = l
	return d
}

func (d *Detector) logStart(op, dir string) (string, func()) {
	callID := uuid.New().String()
	if d.Logger != nil {
		d.Logger.Debug("%s start call=%s dir=%s", op, callID, dir)
	}

	return callID, func() {
		if d.Logger != nil {
			d.Logger.Debug("%s done call=%s", op, callID)
		}
	}
}

func visible(name string, opts sequence.Options) bool {
	if opts.Has(sequence.DotFile) {
		return true
	}

	return len(name) == 0 || name[0] != '.'
}

// listFiltered lists dir's direct entries, applying dot-file visibility
// and the glob filter set, splitting the surviving names into plain
// files and subdirectories.
func (d *Detector) listFiltered(ctx context.Context, dir string, filters filter.Set, opts sequence.Options) (files, dirs []filesystem.Entry, err error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	entries, err := d.Scanner.List(dir)
	if err != nil {
		return nil, nil, classifyListError(dir, err)
	}

	for _, e := range entries {
		if !visible(e.Name, opts) {
			continue
		}
		if !e.IsDir && !filters.Match(e.Name) {
			continue
		}

		if e.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	return files, dirs, nil
}

// classifyListError distinguishes the three failure modes spec.md §7
// assigns to directory access: a path that doesn't exist, a path that
// exists but isn't a directory, and everything else (permissions, I/O),
// since a MockScanner's error doesn't carry syscall-level detail of its
// own. os.Stat is consulted only to classify, not to read the listing.
func classifyListError(dir string, cause error) error {
	info, statErr := os.Stat(dir)

	switch {
	case statErr != nil && os.IsNotExist(statErr):
		return seqerr.NotFound(dir)
	case statErr == nil && !info.IsDir():
		return seqerr.NotADirectory(dir)
	default:
		return seqerr.FilesystemRead(dir, cause)
	}
}

func entryNames(entries []filesystem.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

// FilesIn returns every File/Link item directly in dir that survives
// filters and isn't absorbed into a Sequence.
func (d *Detector) FilesIn(ctx context.Context, dir string, filters filter.Set, opts sequence.Options) ([]Item, error) {
	_, done := d.logStart("FilesIn", dir)
	defer done()

	files, _, err := d.listFiltered(ctx, dir, filters, opts)
	if err != nil {
		return nil, err
	}

	_, singles := sequence.DetectSequences(entryNames(files), opts)

	return filesToItems(dir, files, singles), nil
}

// SequencesIn returns every Sequence item grouped out of dir's direct
// entries, dropping plain files entirely.
func (d *Detector) SequencesIn(ctx context.Context, dir string, filters filter.Set, opts sequence.Options) ([]Item, error) {
	_, done := d.logStart("SequencesIn", dir)
	defer done()

	files, _, err := d.listFiltered(ctx, dir, filters, opts)
	if err != nil {
		return nil, err
	}

	seqs, _ := sequence.DetectSequences(entryNames(files), opts)

	return sequencesToItems(dir, seqs), nil
}

// FilesAndSequencesIn returns both the plain files and the Sequences
// found directly in dir.
func (d *Detector) FilesAndSequencesIn(ctx context.Context, dir string, filters filter.Set, opts sequence.Options) ([]Item, error) {
	_, done := d.logStart("FilesAndSequencesIn", dir)
	defer done()

	files, _, err := d.listFiltered(ctx, dir, filters, opts)
	if err != nil {
		return nil, err
	}

	seqs, singles := sequence.DetectSequences(entryNames(files), opts)

	items := sequencesToItems(dir, seqs)
	items = append(items, filesToItems(dir, files, singles)...)

	return items, nil
}

// SequencesFromFilenameList groups a bare list of filenames (no
// directory, no filesystem access at all) into Sequences and leftover
// plain files, for callers who already have a name list from elsewhere.
func (d *Detector) SequencesFromFilenameList(ctx context.Context, names []string, opts sequence.Options) ([]Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	_, done := d.logStart("SequencesFromFilenameList", "")
	defer done()

	var visibleNames []string
	for _, n := range names {
		if visible(n, opts) {
			visibleNames = append(visibleNames, n)
		}
	}

	seqs, singles := sequence.DetectSequences(visibleNames, opts)

	items := sequencesToItems("", seqs)
	for _, name := range singles {
		items = append(items, Item{Item: sequence.Item{Kind: sequence.KindFile, Filename: name}})
	}

	sortItems(items)

	return items, nil
}

// FoldersIn returns every subdirectory of dir, classified as Folder.
func (d *Detector) FoldersIn(ctx context.Context, dir string, filters filter.Set, opts sequence.Options) ([]Item, error) {
	_, done := d.logStart("FoldersIn", dir)
	defer done()

	_, dirs, err := d.listFiltered(ctx, dir, filters, opts)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(dirs))
	for _, e := range dirs {
		items = append(items, Item{Item: sequence.Item{Kind: sequence.KindFolder, Directory: dir, Filename: e.Name}})
	}

	sortItems(items)

	return items, nil
}

// FileObjectsIn is the fully general entry point: it returns every kind
// of item in dir (files, folders, links, sequences), restricted to the
// kinds set in mask.
func (d *Detector) FileObjectsIn(ctx context.Context, dir string, filters filter.Set, mask sequence.Mask, opts sequence.Options) ([]Item, error) {
	_, done := d.logStart("FileObjectsIn", dir)
	defer done()

	files, dirs, err := d.listFiltered(ctx, dir, filters, opts)
	if err != nil {
		return nil, err
	}

	var items []Item

	if mask.Has(sequence.MaskDirectory) {
		for _, e := range dirs {
			items = append(items, Item{Item: sequence.Item{Kind: sequence.KindFolder, Directory: dir, Filename: e.Name}})
		}
	}

	if mask.Has(sequence.MaskFile) || mask.Has(sequence.MaskSequence) {
		seqs, singles := sequence.DetectSequences(entryNames(files), opts)

		if mask.Has(sequence.MaskSequence) {
			items = append(items, sequencesToItems(dir, seqs)...)
		}

		if mask.Has(sequence.MaskFile) {
			items = append(items, filesToItems(dir, files, singles)...)
		}
	}

	sortItems(items)

	return items, nil
}

// Browse lists dir's direct FileObjects like FileObjectsIn(MaskAll), and,
// when recursive is true, recurses into every subdirectory found,
// returning a flat slice across the whole subtree. Symlinked directories
// are listed as Link items, never followed, to guard against cycles.
// filters and opts are applied at every level of the recursion, so a
// caller's --show-dotfiles/--negative/--filter flags reach every
// subdirectory, not just dir itself.
func (d *Detector) Browse(ctx context.Context, dir string, filters filter.Set, opts sequence.Options, recursive bool) ([]Item, error) {
	_, done := d.logStart("Browse", dir)
	defer done()

	items, err := d.FileObjectsIn(ctx, dir, filters, sequence.MaskAll, opts)
	if err != nil {
		return nil, err
	}

	if !recursive {
		return items, nil
	}

	var all []Item
	all = append(all, items...)

	for _, it := range items {
		if it.Kind != sequence.KindFolder {
			continue
		}

		sub, err := d.Browse(ctx, it.Path(), filters, opts, true)
		if err != nil {
			return nil, err
		}

		all = append(all, sub...)
	}

	return all, nil
}

func filesToItems(dir string, entries []filesystem.Entry, names []string) []Item {
	isSymlink := make(map[string]bool, len(entries))
	for _, e := range entries {
		isSymlink[e.Name] = e.IsSymlink
	}

	items := make([]Item, 0, len(names))
	for _, name := range names {
		kind := sequence.KindFile
		if isSymlink[name] {
			kind = sequence.KindLink
		}

		items = append(items, Item{Item: sequence.Item{Kind: kind, Directory: dir, Filename: name}})
	}

	return items
}

func sequencesToItems(dir string, seqs []sequence.Sequence) []Item {
	items := make([]Item, 0, len(seqs))
	for i := range seqs {
		seq := seqs[i]
		items = append(items, Item{Item: sequence.Item{
			Kind:      sequence.KindSequence,
			Directory: dir,
			Filename:  seq.Identification(),
			Seq:       &seq,
		}})
	}

	return items
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Path() < items[j].Path() })
}
