package sequence

// Options is a bitmask of detection options that influence decomposition
// and listing (whether a leading sign is treated as part of a number,
// whether dot-files are visible). They do not select pattern flavors:
// DetectPattern and NewSequenceFromPattern use their Flavor mask alone.
type Options uint8

// Exported constants.
const (
	// DotFile makes filenames starting with '.' visible to the detector.
	DotFile Options = 1 << iota
	// Negative enables recognition of a leading '+'/'-' as part of a
	// numeric field during decomposition. It does not enable or disable
	// the FlavorFrameNeg pattern flavor, which is chosen by the Flavor mask.
	Negative
	// SequenceBasedOnFilename groups candidate members by their full
	// string skeleton (the default, and the only strategy this package
	// implements; kept as a named option so callers can express intent).
	SequenceBasedOnFilename
	// SequenceBasedOnNumbers groups candidate members more loosely, by
	// numeric field count alone, ignoring literal string content between
	// fields. Not implemented by the core splitter; reserved for callers
	// building their own grouping on top of Decompose.
	SequenceBasedOnNumbers
)

// Has reports whether all bits in want are set in o.
func (o Options) Has(want Options) bool {
	return o&want == want
}

// Mask selects which categories of FileObject a detector should return.
type Mask uint8

// Exported constants.
const (
	MaskFile Mask = 1 << iota
	MaskSequence
	MaskDirectory

	MaskAll = MaskFile | MaskSequence | MaskDirectory
)

// Has reports whether all bits in want are set in m.
func (m Mask) Has(want Mask) bool {
	return m&want == want
}
