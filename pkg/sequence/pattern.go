package sequence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joe/seqscan/pkg/seqerr"
)

// Flavor identifies one of the textual pattern conventions a Sequence can
// be rendered as or recognized from.
type Flavor uint8

// Exported constants.
const (
	FlavorNone Flavor = 0
	// FlavorStandard is prefix + "#"/"@" marks + suffix, e.g. "render.####.exr".
	FlavorStandard Flavor = 1 << iota
	// FlavorCStyle is prefix + "%0Nd"/"%d" + suffix, e.g. "render.%04d.exr".
	FlavorCStyle
	// FlavorFrame is a bare positive frame number embedded in the string.
	FlavorFrame
	// FlavorFrameNeg is FlavorFrame allowing a leading sign.
	FlavorFrameNeg

	// FlavorDefault is the precedence mask used when callers don't care
	// about signed bare-frame recognition.
	FlavorDefault = FlavorStandard | FlavorCStyle
	// FlavorAll accepts every flavor this package recognizes, mirroring
	// the original library's definition (which, like here, does not fold
	// FlavorFrame into "all" — signed detection implies the caller wants
	// FlavorFrameNeg specifically, not also the unsigned FlavorFrame).
	FlavorAll = FlavorStandard | FlavorCStyle | FlavorFrameNeg
)

var (
	standardPatternRe = regexp.MustCompile(`^(.*?)\[?([#@]+)\]?(.*)$`)
	cStylePatternRe   = regexp.MustCompile(`^(.*?)%(0(\d+))?d(.*)$`)
	digitRunRe        = regexp.MustCompile(`[+-]?\d+`)
)

// DetectPattern recognizes the flavor of a pattern string, per the
// precedence Standard -> C-style -> FrameNeg -> Frame, restricted to the
// flavors set in accept. It returns the decomposed prefix/suffix, the
// declared padding (0 = unpadded), whether padding is strict, and the
// flavor that matched.
func DetectPattern(pattern string, accept Flavor) (prefix, suffix string, padding int, strict bool, flavor Flavor, ok bool) {
	if accept&FlavorStandard != 0 {
		if prefix, suffix, padding, strict, ok = matchStandardPattern(pattern); ok {
			return prefix, suffix, padding, strict, FlavorStandard, true
		}
	}
	if accept&FlavorCStyle != 0 {
		if prefix, suffix, padding, ok = matchCStylePattern(pattern); ok {
			return prefix, suffix, padding, false, FlavorCStyle, true
		}
	}
	if accept&FlavorFrameNeg != 0 {
		if prefix, suffix, padding, ok = matchFramePattern(pattern, true); ok {
			return prefix, suffix, padding, false, FlavorFrameNeg, true
		}
	}
	if accept&FlavorFrame != 0 {
		if prefix, suffix, padding, ok = matchFramePattern(pattern, false); ok {
			return prefix, suffix, padding, false, FlavorFrame, true
		}
	}
	return "", "", 0, false, FlavorNone, false
}

// NewSequenceFromPattern constructs a Sequence directly from a caller-
// supplied pattern string (e.g. "render.####.exr", "render.%04d.exr") and
// an explicit frame range, mirroring the original library's
// Sequence::initFromPattern/retrieveInfosFromPattern. Per spec.md §7,
// a pattern matching none of the flavors in accept is reported to the
// caller as seqerr.PatternUnrecognized, not silently treated as a file.
func NewSequenceFromPattern(pattern string, first, last, step int64, accept Flavor) (*Sequence, error) {
	prefix, suffix, padding, strict, _, ok := DetectPattern(pattern, accept)
	if !ok {
		return nil, seqerr.PatternUnrecognized(pattern)
	}

	if step < 1 {
		step = 1
	}

	return &Sequence{
		Prefix:        prefix,
		Suffix:        suffix,
		Padding:       padding,
		StrictPadding: strict && padding > 0,
		Ranges:        []FrameRange{{First: first, Last: last, Step: step}},
	}, nil
}

func matchStandardPattern(pattern string) (prefix, suffix string, padding int, strict bool, ok bool) {
	m := standardPatternRe.FindStringSubmatch(pattern)
	if m == nil {
		return "", "", 0, false, false
	}
	marks := m[2]
	first := marks[0]
	for i := 1; i < len(marks); i++ {
		if marks[i] != first {
			return "", "", 0, false, false
		}
	}
	return m[1], m[3], len(marks), first == '#', true
}

func matchCStylePattern(pattern string) (prefix, suffix string, padding int, ok bool) {
	m := cStylePatternRe.FindStringSubmatch(pattern)
	if m == nil {
		return "", "", 0, false
	}
	padding = 0
	if m[3] != "" {
		padding, _ = strconv.Atoi(m[3])
	}
	return m[1], m[4], padding, true
}

// matchFramePattern finds a bare digit run embedded in pattern, preferring
// one bounded on both sides by '.' or '_' (the common VFX frame-number
// boundary), falling back to the rightmost digit run otherwise.
func matchFramePattern(pattern string, signed bool) (prefix, suffix string, padding int, ok bool) {
	locs := digitRunRe.FindAllStringIndex(pattern, -1)
	if len(locs) == 0 {
		return "", "", 0, false
	}

	pick := locs[len(locs)-1]
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		boundedLeft := start > 0 && (pattern[start-1] == '.' || pattern[start-1] == '_')
		boundedRight := end < len(pattern) && (pattern[end] == '.' || pattern[end] == '_')
		if boundedLeft && boundedRight {
			pick = loc
			break
		}
	}

	start, end := pick[0], pick[1]
	digits := pattern[start:end]
	if !signed && (digits[0] == '+' || digits[0] == '-') {
		// The unsigned flavor leaves the sign in the prefix and matches
		// the digits alone.
		digits = digits[1:]
		start++
	}
	if digits == "" {
		return "", "", 0, false
	}

	numDigits := len(digits)
	if digits[0] == '+' || digits[0] == '-' {
		numDigits--
	}
	if numDigits == 0 {
		return "", "", 0, false
	}

	padding = 0
	body := digits
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body[0] == '0' {
		padding = numDigits
	}

	return pattern[:start], pattern[end:], padding, true
}

// StandardPattern renders prefix/padding/suffix in standard ("#"/"@") style.
// The mark is '#' when padding > 0, '@' otherwise, per the rendering
// contract: strictness is a parsing concept, not a rendering one.
func StandardPattern(prefix, suffix string, padding int) string {
	mark := byte('@')
	n := padding
	if n > 0 {
		mark = '#'
	} else {
		n = 1
	}
	return prefix + strings.Repeat(string(mark), n) + suffix
}

// CStylePattern renders prefix/padding/suffix in printf ("%0Nd") style.
func CStylePattern(prefix, suffix string, padding int) string {
	if padding > 0 {
		return fmt.Sprintf("%s%%0%dd%s", prefix, padding, suffix)
	}
	return prefix + "%d" + suffix
}
