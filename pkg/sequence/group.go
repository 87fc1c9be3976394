package sequence

// member is one decomposed filename within a group, retaining its
// original filename so single-member groups and failed splits can be
// reported back to the caller untouched.
type member struct {
	Filename string
	Numbers  []FileNumber
}

// group is a bucket of filenames sharing the same FileStrings skeleton.
type group struct {
	Skeleton FileStrings
	Members  []member
}

// Builder collects decomposed filenames into skeleton-keyed buckets.
// Insertion is append-only; bucket order preserves first-encounter order
// of each skeleton, and member order within a bucket preserves the order
// filenames were added — spec.md leaves the overall order unspecified,
// but implementations should still be deterministic given deterministic
// input, which this one is.
type Builder struct {
	index map[string]int // skeleton key -> index into groups
	groups []group
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add decomposes filename and files it under its skeleton. Filenames with
// no numeric field are returned via ok=false so the caller can treat them
// as bare files immediately; they are never added to a bucket.
func (b *Builder) Add(filename string, opts Options) (ok bool) {
	strs, nums, ok := Decompose(filename, opts)
	if !ok {
		return false
	}

	key := strs.key()
	if idx, found := b.index[key]; found {
		b.groups[idx].Members = append(b.groups[idx].Members, member{Filename: filename, Numbers: nums})
		return true
	}

	b.index[key] = len(b.groups)
	b.groups = append(b.groups, group{
		Skeleton: strs,
		Members:  []member{{Filename: filename, Numbers: nums}},
	})
	return true
}

// Groups returns every bucket accumulated so far, in first-encounter order.
func (b *Builder) Groups() []group {
	return b.groups
}
