package editor

import "math"

// Scale is the vertical mapping between sample amplitudes and display
// pixels: the display bounds chosen by vertical zooming, plus the choice
// between a linear and a signed-logarithmic (dB) amplitude axis.
type Scale struct {
	Min, Max float32 // display bounds; typically -1..1
	DB       bool    // false = linear amplitude axis
	DBRange  float64 // dynamic range of the dB axis, e.g. 60
}

// PixelY maps an amplitude, as rendered (envelope already applied), to a
// vertical pixel offset within a display rectangle of the given height.
// Pixel 0 shows Max and pixel height-1 shows Min.
func (s Scale) PixelY(value float32, height int) int {
	if height == 0 {
		return 0
	}
	if s.DB && value != 0 {
		sign := float32(1)
		if value < 0 {
			sign = -1
		}
		db := 20 * math.Log10(math.Abs(float64(value)))
		value = float32((db + s.DBRange) / s.DBRange)
		if value < 0 {
			value = 0
		}
		value *= sign
	}
	frac := (s.Max - value) / (s.Max - s.Min)
	return int(frac*float32(height-1) + 0.5)
}

// ValueOfPixel is the inverse of PixelY: it recovers the displayed level at
// a vertical pixel offset. The result is the level as rendered; dividing out
// the envelope is done separately by CorrectForEnvelope.
func (s Scale) ValueOfPixel(yy, height int) float32 {
	var v float32
	if height == 1 {
		v = (s.Min + s.Max) / 2
	} else {
		v = s.Max - float32(yy)/float32(height-1)*(s.Max-s.Min)
	}
	if s.DB {
		sign := float32(1)
		if v < 0 {
			sign = -1
		}
		db := (math.Abs(float64(v)) - 1) * s.DBRange
		v = float32(math.Pow(10, db/20)) * sign
	}
	return v
}

// CorrectForEnvelope divides a displayed level by the envelope scale at the
// edited time, recovering the raw sample value the user intends. A zero or
// negative envelope cannot be inverted, so the level collapses to 0. The
// result is always clamped to the legal sample range.
func CorrectForEnvelope(level float32, envValue float64) float32 {
	if envValue > 0 {
		level /= float32(envValue)
	} else {
		level = 0
	}
	return min(max(level, -1), 1)
}
