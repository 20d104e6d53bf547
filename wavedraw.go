// Package wavedraw contains the domain types for a small waveform editor:
// tracks made of clips of floating point samples, addressable by time, and
// amplitude envelopes. The interactive editing logic lives in the editor
// package; this package only owns the sample storage and its time mapping.
package wavedraw

type (
	// SampleFormat tells how samples of a clip are represented when the
	// track is eventually written to disk. Edits carry a SampleFormat hint:
	// writing with NarrowestFormat means the written values are exact in any
	// format, so the clip keeps its current format and no dithering is ever
	// needed. Writing with a wider explicit format widens the clip format.
	SampleFormat int
)

const (
	// NarrowestFormat is not a real storage format; as a write hint it means
	// "lossless in the narrowest format", i.e. keep the clip format as is.
	NarrowestFormat SampleFormat = iota
	Int16Format
	Int24Format
	Float32Format
)

func (f SampleFormat) String() string {
	switch f {
	case Int16Format:
		return "16-bit"
	case Int24Format:
		return "24-bit"
	case Float32Format:
		return "32-bit float"
	}
	return "narrowest"
}

// Widen returns the wider of the two formats. NarrowestFormat never widens
// anything.
func (f SampleFormat) Widen(g SampleFormat) SampleFormat {
	if g > f {
		return g
	}
	return f
}
