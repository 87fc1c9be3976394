package sequence

import "strconv"

// FileStrings is the ordered list of non-numeric fragments of a filename,
// including the empty string when two numeric fields are adjacent. Two
// filenames are candidate members of the same sequence iff their
// FileStrings are equal.
type FileStrings []string

// key returns a value usable as a Go map key, joining fragments with a
// separator that cannot itself appear inside a single fragment because
// fragments never contain NUL bytes (filenames that did would already be
// invalid on every filesystem this package targets).
func (fs FileStrings) key() string {
	out := make([]byte, 0, 16)
	for i, s := range fs {
		if i > 0 {
			out = append(out, 0)
		}
		out = append(out, s...)
	}
	return string(out)
}

// FileNumber is one numeric field interleaved between two FileStrings
// fragments.
type FileNumber struct {
	Raw       string // original substring, preserving sign and leading zeros
	Value     Time
	Padding   int // declared width if the digits have more than one digit and begin with '0', else 0
	NumDigits int // digit count, excluding any sign
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Decompose splits filename into its FileStrings skeleton and FileNumbers
// vector. ok is false when the filename carries no numeric field at all
// (spec's "no sequence" case — callers report it as a bare file).
//
// Concatenating strings[0] + numbers[0].Raw + strings[1] + … + strings[N]
// reproduces filename byte-for-byte.
func Decompose(filename string, opts Options) (strs FileStrings, nums []FileNumber, ok bool) {
	signed := opts.Has(Negative)

	n := len(filename)
	fragStart := 0
	i := 0

	for i < n {
		c := filename[i]

		signStart := signed && (c == '+' || c == '-') && i+1 < n && isDigit(filename[i+1]) &&
			(i == 0 || !isDigit(filename[i-1]))

		if !isDigit(c) && !signStart {
			i++
			continue
		}

		start := i
		if signStart {
			i++
		}
		digitsStart := i
		for i < n && isDigit(filename[i]) {
			i++
		}

		raw := filename[start:i]
		digits := filename[digitsStart:i]

		value, _ := strconv.ParseInt(raw, 10, 64)

		// A lone "0" isn't a *redundant* leading zero — there's nothing
		// preceding it for it to pad. Only digits[0]=='0' with more than
		// one digit signals genuine zero-padding.
		padding := 0
		if len(digits) > 1 && digits[0] == '0' {
			padding = len(digits)
		}

		strs = append(strs, filename[fragStart:start])
		nums = append(nums, FileNumber{
			Raw:       raw,
			Value:     value,
			Padding:   padding,
			NumDigits: len(digits),
		})
		fragStart = i
	}

	strs = append(strs, filename[fragStart:])

	if len(nums) == 0 {
		return nil, nil, false
	}
	return strs, nums, true
}
