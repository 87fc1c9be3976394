package sequence_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/joe/seqscan/pkg/sequence"
)

func TestItemExplodeSkipsMissingFrames(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seq := sequence.Sequence{
		Prefix:  "img.",
		Suffix:  ".jpg",
		Padding: 4,
		Ranges:  []sequence.FrameRange{{First: 1, Last: 3, Step: 1}},
	}
	it := sequence.Item{Kind: sequence.KindSequence, Directory: "/shots", Seq: &seq}

	present := map[string]bool{
		"/shots/img.0001.jpg": true,
		"/shots/img.0003.jpg": true,
	}

	exploded := it.Explode(func(path string) (sequence.Kind, bool) {
		if present[path] {
			return sequence.KindFile, true
		}
		return sequence.KindUndefined, false
	})

	g.Expect(exploded).To(HaveLen(2))
	g.Expect(exploded[0].Filename).To(Equal("img.0001.jpg"))
	g.Expect(exploded[1].Filename).To(Equal("img.0003.jpg"))
}

func TestItemExplodeNonSequenceIsEmpty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	it := sequence.Item{Kind: sequence.KindFile, Filename: "a.txt"}
	g.Expect(it.Explode(func(string) (sequence.Kind, bool) { return sequence.KindFile, true })).To(BeEmpty())
}

func TestKindString(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(sequence.KindFile.String()).To(Equal("File"))
	g.Expect(sequence.KindSequence.String()).To(Equal("Sequence"))
	g.Expect(sequence.Kind(99).String()).To(Equal("Undefined"))
}
