package detect

import "github.com/joe/seqscan/pkg/sequence"

// Item is the detector's result element: a sequence.Item with its
// filesystem location already resolved, embedded so callers can use
// Kind/Directory/Filename/Seq/Path() directly.
type Item struct {
	sequence.Item
}
