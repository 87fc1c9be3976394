package sequence_test

import (
	"sort"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/joe/seqscan/pkg/sequence"
)

func sortedPatterns(seqs []sequence.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}

func TestDetectSequencesSimplePadded(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(
		[]string{"img.0001.jpg", "img.0002.jpg", "img.0003.jpg"}, 0)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(1))

	s := seqs[0]
	g.Expect(s.Prefix).To(Equal("img."))
	g.Expect(s.Suffix).To(Equal(".jpg"))
	g.Expect(s.Padding).To(Equal(4))
	g.Expect(s.StrictPadding).To(BeTrue())
	g.Expect(s.Ranges).To(Equal([]sequence.FrameRange{{First: 1, Last: 3, Step: 1}}))
}

func TestDetectSequencesUnpaddedWithGap(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(
		[]string{"img.1.jpg", "img.2.jpg", "img.10.jpg"}, 0)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(1))

	s := seqs[0]
	g.Expect(s.Padding).To(Equal(0))
	g.Expect(s.StrictPadding).To(BeFalse())
	g.Expect(s.Ranges).To(Equal([]sequence.FrameRange{{First: 1, Last: 10, Step: 1}}))
	g.Expect(s.HasMissingFile()).To(BeTrue())
	g.Expect(s.NbMissingFiles()).To(Equal(int64(7)))
}

func TestDetectSequencesStep(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(
		[]string{"img.1.jpg", "img.3.jpg", "img.5.jpg", "img.7.jpg"}, 0)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(1))
	g.Expect(seqs[0].Ranges).To(Equal([]sequence.FrameRange{{First: 1, Last: 7, Step: 2}}))
}

func TestDetectSequencesMixedPaddingSplits(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(
		[]string{"img99.jpg", "img100.jpg", "img0099.jpg", "img0100.jpg"}, 0)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(2))

	byPadding := map[int]sequence.Sequence{}
	for _, s := range seqs {
		byPadding[s.Padding] = s
	}

	unpadded, ok := byPadding[0]
	g.Expect(ok).To(BeTrue())
	g.Expect(unpadded.StrictPadding).To(BeFalse())
	g.Expect(unpadded.Ranges).To(Equal([]sequence.FrameRange{{First: 99, Last: 100, Step: 1}}))

	padded, ok := byPadding[4]
	g.Expect(ok).To(BeTrue())
	g.Expect(padded.StrictPadding).To(BeTrue())
	g.Expect(padded.Ranges).To(Equal([]sequence.FrameRange{{First: 99, Last: 100, Step: 1}}))
}

func TestDetectSequencesPlainFiles(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences([]string{"a.txt", "b.txt", "c.txt"}, 0)
	g.Expect(seqs).To(BeEmpty())
	g.Expect(files).To(ConsistOf("a.txt", "b.txt", "c.txt"))
}

func TestDetectSequencesSigned(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(
		[]string{"f-2.jpg", "f-1.jpg", "f0.jpg", "f1.jpg"}, sequence.Negative)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(1))

	s := seqs[0]
	g.Expect(s.Padding).To(Equal(1))
	g.Expect(s.StrictPadding).To(BeFalse())
	g.Expect(s.Ranges).To(Equal([]sequence.FrameRange{{First: -2, Last: 1, Step: 1}}))
	g.Expect(s.FilenameAt(-1)).To(Equal("f-1.jpg"))
}

func TestDetectSequencesSingletonIsFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences([]string{"img.0001.jpg"}, 0)
	g.Expect(seqs).To(BeEmpty())
	g.Expect(files).To(ConsistOf("img.0001.jpg"))
}

func TestDetectSequencesEmptyInput(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences(nil, 0)
	g.Expect(seqs).To(BeEmpty())
	g.Expect(files).To(BeEmpty())
}

func TestDetectSequencesMultipleVaryingColumns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	seqs, files := sequence.DetectSequences([]string{
		"shot01_frame001.exr",
		"shot01_frame002.exr",
		"shot02_frame001.exr",
		"shot02_frame002.exr",
	}, 0)

	g.Expect(files).To(BeEmpty())
	g.Expect(seqs).To(HaveLen(2))
	g.Expect(sortedPatterns(seqs)).To(Equal([]string{
		"shot01_frame###.exr [1-2]",
		"shot02_frame###.exr [1-2]",
	}))
}
