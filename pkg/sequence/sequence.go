// Package sequence implements the numbered-file-sequence detection
// algorithm: decomposing filenames into string/number parts, grouping
// candidates by their string skeleton, splitting ambiguous groups by
// padding and step, and representing the result as a Sequence that can
// round-trip back to filenames.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// fillChar is the implicit zero-pad fill character, per spec.
const fillChar = '0'

// Sequence describes a run (or several step-separated runs) of numbered
// files sharing a common prefix and suffix.
type Sequence struct {
	Prefix        string
	Suffix        string
	Padding       int // 0 = no fixed padding, N >= 1 = fixed width
	StrictPadding bool
	Ranges        []FrameRange // sorted by First, non-empty
}

// FirstTime returns the time of the earliest frame.
func (s Sequence) FirstTime() Time {
	return s.Ranges[0].First
}

// LastTime returns the time of the latest frame.
func (s Sequence) LastTime() Time {
	return s.Ranges[len(s.Ranges)-1].Last
}

// Duration returns LastTime - FirstTime + 1.
func (s Sequence) Duration() int64 {
	return s.LastTime() - s.FirstTime() + 1
}

// NbFiles returns the number of frames actually present on disk/in input.
func (s Sequence) NbFiles() int64 {
	var n int64
	for _, r := range s.Ranges {
		n += r.NbFrames()
	}
	return n
}

// NbMissingFiles returns Duration() - NbFiles().
func (s Sequence) NbMissingFiles() int64 {
	return s.Duration() - s.NbFiles()
}

// HasMissingFile reports whether any frame in [FirstTime, LastTime] is
// absent: true iff there is more than one range, or the sole range has a
// step other than 1.
func (s Sequence) HasMissingFile() bool {
	if len(s.Ranges) != 1 {
		return true
	}
	return s.Ranges[0].Step != 1
}

// DominantStep reports the GCD of successive frame times across every
// range, a single diagnostic step value useful for logging even when the
// sequence is internally represented as several sub-ranges.
func (s Sequence) DominantStep() int64 {
	var times []Time
	for _, r := range s.Ranges {
		times = append(times, r.First, r.Last)
	}
	step := extractStep(times)
	for _, r := range s.Ranges {
		if r.First != r.Last && r.Step > 0 {
			step = gcdInt64(step, r.Step)
		}
	}
	return step
}

// zeroPad renders v with at least `width` digits, left-padded with the
// fill character. width <= 0 means no fixed width.
func zeroPad(v uint64, width int) string {
	s := strconv.FormatUint(v, 10)
	if width <= 0 || len(s) >= width {
		return s
	}
	return strings.Repeat(string(fillChar), width-len(s)) + s
}

// FilenameAt renders the filename for the given frame time, per the
// frame-formatting contract: a negative time's sign precedes the
// zero-padded magnitude, so padding always refers to digit count alone.
func (s Sequence) FilenameAt(t Time) string {
	if t >= 0 {
		return s.Prefix + zeroPad(uint64(t), s.Padding) + s.Suffix
	}
	return s.Prefix + "-" + zeroPad(uint64(-t), s.Padding) + s.Suffix
}

// IsIn checks whether filename is a member of the sequence (irrespective
// of its ranges) and, if so, returns its time and the raw numeric
// substring. A filename that begins with Prefix and ends with Suffix but
// whose middle segment isn't a valid integer returns ok=false — this is
// the "expected negative case" of spec.md's InvalidFrameInFilename, not
// an error.
func (s Sequence) IsIn(filename string) (t Time, timeStr string, ok bool) {
	if len(filename) < len(s.Prefix)+len(s.Suffix) {
		return 0, "", false
	}
	if !strings.HasPrefix(filename, s.Prefix) || !strings.HasSuffix(filename, s.Suffix) {
		return 0, "", false
	}

	middle := filename[len(s.Prefix) : len(filename)-len(s.Suffix)]
	if middle == "" {
		return 0, "", false
	}

	value, err := strconv.ParseInt(middle, 10, 64)
	if err != nil {
		return 0, "", false
	}

	return value, middle, true
}

// StandardPattern renders the sequence in "#"/"@" style.
func (s Sequence) StandardPattern() string {
	return StandardPattern(s.Prefix, s.Suffix, s.Padding)
}

// CStylePattern renders the sequence in printf "%0Nd" style.
func (s Sequence) CStylePattern() string {
	return CStylePattern(s.Prefix, s.Suffix, s.Padding)
}

// Identification returns the filename with the frame number elided,
// i.e. the standard pattern with its mark characters stripped — useful
// as a human-facing label that doesn't imply a specific frame.
func (s Sequence) Identification() string {
	return s.Prefix + s.Suffix
}

// Files returns every member filename, in frame order. Callers must not
// assume this is backed by a materialized slice versus a computed one;
// today it is eager, but that is an implementation detail.
func (s Sequence) Files() []string {
	var out []string
	for _, r := range s.Ranges {
		step := r.Step
		if step < 1 {
			step = 1
		}
		for t := r.First; t <= r.Last; t += step {
			out = append(out, s.FilenameAt(t))
		}
	}
	return out
}

// RangesString renders the frame ranges as "1-10, 12-20x2".
func (s Sequence) RangesString() string {
	parts := make([]string, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		if r.First == r.Last {
			parts = append(parts, strconv.FormatInt(r.First, 10))
			continue
		}
		if r.Step == 1 {
			parts = append(parts, fmt.Sprintf("%d-%d", r.First, r.Last))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%dx%d", r.First, r.Last, r.Step))
	}
	return strings.Join(parts, ", ")
}

// String renders "<standardPattern> [<frameRanges>]".
func (s Sequence) String() string {
	return fmt.Sprintf("%s [%s]", s.StandardPattern(), s.RangesString())
}

// Equal is structural equality on (Prefix, Suffix, Padding, Ranges).
// StrictPadding is deliberately excluded — it's a rendering hint, not
// part of the sequence's identity.
func (s Sequence) Equal(other Sequence) bool {
	if s.Prefix != other.Prefix || s.Suffix != other.Suffix || s.Padding != other.Padding {
		return false
	}
	if len(s.Ranges) != len(other.Ranges) {
		return false
	}
	for i, r := range s.Ranges {
		if r != other.Ranges[i] {
			return false
		}
	}
	return true
}

// Less orders sequences lexicographically by their standard pattern.
func (s Sequence) Less(other Sequence) bool {
	return s.StandardPattern() < other.StandardPattern()
}
