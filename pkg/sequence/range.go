package sequence

// Time is a signed frame index.
type Time = int64

// FrameRange is an arithmetic progression {First, First+Step, …, Last},
// both ends included, describing contiguous (or stepped) frames. Step must be >= 1 and
// (Last-First) must be a multiple of Step.
type FrameRange struct {
	First Time
	Last  Time
	Step  int64
}

// NbFrames returns the number of frames actually present in the range.
func (r FrameRange) NbFrames() int64 {
	if r.Step <= 0 {
		return 1
	}
	return (r.Last-r.First)/r.Step + 1
}

// Duration returns Last-First+1, the span the range covers including any
// missing frames.
func (r FrameRange) Duration() int64 {
	return r.Last - r.First + 1
}

// HasMissingFile reports whether the range skips frames (step > 1).
func (r FrameRange) HasMissingFile() bool {
	return r.Step > 1
}

// gcdInt64 returns the greatest common divisor of a and b (both > 0).
func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// extractStep computes the GCD of successive differences in a sorted
// slice of times, per spec's "extract step" rule. Returns 1 when fewer
// than two times are present.
func extractStep(times []Time) int64 {
	if len(times) < 2 {
		return 1
	}

	step := times[1] - times[0]
	for i := 2; i < len(times); i++ {
		diff := times[i] - times[i-1]
		step = gcdInt64(step, diff)
		if step == 1 {
			break
		}
	}

	if step <= 0 {
		return 1
	}

	return step
}
