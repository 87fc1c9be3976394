package sequence

import "sort"

// DetectSequences groups filenames sharing a numeric skeleton into
// Sequences, and returns every filename that didn't end up in a
// multi-member Sequence (no numeric field, a singleton bucket, or a
// sub-sequence downgraded to a single frame) as a plain file.
//
// This is the full spec.md §4.2-4.4 pipeline: decompose, group by
// skeleton, then split each group by varying column / padding class /
// step.
func DetectSequences(filenames []string, opts Options) (sequences []Sequence, files []string) {
	b := NewBuilder()
	for _, f := range filenames {
		if !b.Add(f, opts) {
			files = append(files, f)
		}
	}

	for _, g := range b.Groups() {
		seqs, singles := splitGroup(g)
		sequences = append(sequences, seqs...)
		files = append(files, singles...)
	}

	return sequences, files
}

// splitGroup implements spec.md §4.4 for one skeleton bucket.
func splitGroup(g group) (seqs []Sequence, singles []string) {
	if len(g.Members) == 1 {
		return nil, []string{g.Members[0].Filename}
	}

	numColumns := len(g.Skeleton) - 1
	varying := varyingColumns(g.Members, numColumns)

	if len(varying) == 0 {
		// Every column has a constant value: members differ at most in
		// the zero-padding of equal numbers, with no time axis to split on.
		for _, m := range g.Members {
			singles = append(singles, m.Filename)
		}
		return nil, singles
	}

	timeCol := varying[len(varying)-1]
	var otherColumns []int
	for col := 0; col < numColumns; col++ {
		if col != timeCol {
			otherColumns = append(otherColumns, col)
		}
	}

	for _, part := range partitionByOtherColumns(g.Members, otherColumns) {
		s, single := splitSingleColumn(g.Skeleton, part, timeCol)
		seqs = append(seqs, s...)
		singles = append(singles, single...)
	}

	return seqs, singles
}

// varyingColumns returns, in ascending order, every column index whose
// Value differs across members.
func varyingColumns(members []member, numColumns int) []int {
	var varying []int
	for col := 0; col < numColumns; col++ {
		first := members[0].Numbers[col].Value
		for _, m := range members[1:] {
			if m.Numbers[col].Value != first {
				varying = append(varying, col)
				break
			}
		}
	}
	return varying
}

// partitionByOtherColumns groups members by their raw values at every
// column other than the chosen time column, so that within each partition
// only the time column still varies and every other column has one raw
// text. Order follows first encounter.
func partitionByOtherColumns(members []member, otherColumns []int) [][]member {
	if len(otherColumns) == 0 {
		return [][]member{members}
	}

	index := make(map[string]int)
	var parts [][]member

	for _, m := range members {
		key := ""
		for _, c := range otherColumns {
			key += m.Numbers[c].Raw + "\x00"
		}
		if i, ok := index[key]; ok {
			parts[i] = append(parts[i], m)
			continue
		}
		index[key] = len(parts)
		parts = append(parts, []member{m})
	}

	return parts
}

// splitSingleColumn handles a partition where timeCol is the only
// varying column: partition further by padding class (strict-zero vs
// unpadded, and by exact width within the strict class, since a Sequence
// declares a single Padding value), per spec.md's "ALWAYS split rather
// than merge" policy.
func splitSingleColumn(skeleton FileStrings, members []member, timeCol int) (seqs []Sequence, singles []string) {
	if len(members) == 1 {
		return nil, []string{members[0].Filename}
	}

	type paddingClass struct {
		strict bool
		width  int
	}

	index := make(map[paddingClass]int)
	var classes []paddingClass
	var buckets [][]member

	for _, m := range members {
		num := m.Numbers[timeCol]
		c := paddingClass{strict: num.Padding > 0}
		if c.strict {
			c.width = num.NumDigits
		}
		if i, ok := index[c]; ok {
			buckets[i] = append(buckets[i], m)
			continue
		}
		index[c] = len(classes)
		classes = append(classes, c)
		buckets = append(buckets, []member{m})
	}

	for i, c := range classes {
		seq, single, ok := buildSequence(skeleton, buckets[i], timeCol, c.strict)
		if ok {
			seqs = append(seqs, seq)
		} else {
			singles = append(singles, single...)
		}
	}

	return seqs, singles
}

// buildSequence constructs one Sequence from a set of members varying
// only at timeCol and sharing the same strict/non-strict leading-zero
// class. Returns ok=false (and the member filenames as singles) when the
// result would be a single-frame sub-sequence — spec.md step 8's
// degenerate-output rejection.
//
// Padding is the members' common digit width at timeCol when every
// member shares it, else 0 (no fixed padding) — this applies whether or
// not the class is strict: four single-digit values like "f-2"/"f-1"/
// "f0"/"f1" share width 1 and render with Padding=1 even though none of
// them carries a redundant leading zero.
func buildSequence(skeleton FileStrings, members []member, timeCol int, strict bool) (seq Sequence, singles []string, ok bool) {
	times := make([]Time, 0, len(members))
	byTime := make(map[Time]string, len(members))
	for _, m := range members {
		t := m.Numbers[timeCol].Value
		if _, seen := byTime[t]; !seen {
			times = append(times, t)
		}
		byTime[t] = m.Filename
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	if len(times) == 1 {
		for _, m := range members {
			singles = append(singles, m.Filename)
		}
		return Sequence{}, singles, false
	}

	step := extractStep(times)
	ranges := []FrameRange{{First: times[0], Last: times[len(times)-1], Step: step}}
	prefix, suffix := buildPrefixSuffix(skeleton, members[0], timeCol)

	padding := commonWidth(members, timeCol)

	return Sequence{
		Prefix:        prefix,
		Suffix:        suffix,
		Padding:       padding,
		StrictPadding: strict && padding > 0,
		Ranges:        ranges,
	}, nil, true
}

// commonWidth returns the members' shared NumDigits at timeCol, or 0 if
// it varies across the set.
func commonWidth(members []member, timeCol int) int {
	width := members[0].Numbers[timeCol].NumDigits
	for _, m := range members[1:] {
		if m.Numbers[timeCol].NumDigits != width {
			return 0
		}
	}
	return width
}

// buildPrefixSuffix composes the fixed prefix/suffix around timeCol,
// splicing in the constant raw text of every other (fixed) numeric
// column, per spec.md §4.4 step 6.
func buildPrefixSuffix(skeleton FileStrings, sample member, timeCol int) (prefix, suffix string) {
	prefix = skeleton[0]
	for j := 0; j < timeCol; j++ {
		prefix += sample.Numbers[j].Raw + skeleton[j+1]
	}

	suffix = skeleton[timeCol+1]
	for j := timeCol + 1; j < len(sample.Numbers); j++ {
		suffix += sample.Numbers[j].Raw + skeleton[j+2]
	}

	return prefix, suffix
}
