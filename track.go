package wavedraw

import "math"

type (
	// Track is an ordered set of non-overlapping clips on a common timeline.
	// Rate is the nominal sample rate of the track, used as the snapping grid
	// where no clip exists; clips may carry their own rate and stretch ratio.
	//
	// All accessors address samples by time, in seconds. Reads outside any
	// clip yield nothing; writes outside any clip are silently dropped, the
	// same way the original storage ignores them. Channel indices that a clip
	// does not have are treated as out of range.
	Track struct {
		Rate  float64
		Clips []*Clip
	}

	// Clip is a contiguous run of samples with a play start time. Rate is the
	// rate of the underlying samples; StretchRatio stretches them in time, so
	// one sample lasts StretchRatio/Rate seconds. Samples holds one slice per
	// channel, all of equal length.
	Clip struct {
		Start        float64
		Rate         float64
		StretchRatio float64
		Format       SampleFormat
		Samples      [][]float32
	}
)

// NewClip returns a clip with numChannels channels of length zero-filled
// samples, unstretched, in the given format.
func NewClip(start, rate float64, numChannels, length int, format SampleFormat) *Clip {
	samples := make([][]float32, numChannels)
	for i := range samples {
		samples[i] = make([]float32, length)
	}
	return &Clip{Start: start, Rate: rate, StretchRatio: 1, Format: format, Samples: samples}
}

// SampleDur returns the duration of one sample, accounting for stretching.
func (c *Clip) SampleDur() float64 {
	stretch := c.StretchRatio
	if stretch <= 0 {
		stretch = 1
	}
	return stretch / c.Rate
}

// Len returns the number of samples per channel.
func (c *Clip) Len() int {
	if len(c.Samples) == 0 {
		return 0
	}
	return len(c.Samples[0])
}

// End returns the time just after the last sample of the clip.
func (c *Clip) End() float64 { return c.Start + float64(c.Len())*c.SampleDur() }

// TimeToSamples converts a duration from the clip start to the index of the
// nearest sample.
func (c *Clip) TimeToSamples(d float64) int { return int(math.Round(d / c.SampleDur())) }

// SamplesToTime converts a sample index to its exact duration from the clip
// start.
func (c *Clip) SamplesToTime(i int) float64 { return float64(i) * c.SampleDur() }

// ClipAtTime returns the clip whose span contains the given time, or nil.
func (t *Track) ClipAtTime(time float64) *Clip {
	for _, c := range t.Clips {
		if time >= c.Start && time < c.End() {
			return c
		}
	}
	return nil
}

// SnapToSample rounds a time to the track's nominal sample grid. Clip-aware
// snapping, which accounts for clip offsets and stretch ratios, is done by
// the caller via ClipAtTime; this is the fallback grid.
func (t *Track) SnapToSample(time float64) float64 {
	return math.Round(time*t.Rate) / t.Rate
}

// Duration returns the end time of the last clip.
func (t *Track) Duration() float64 {
	var d float64
	for _, c := range t.Clips {
		if e := c.End(); e > d {
			d = e
		}
	}
	return d
}

// NumChannels returns the widest channel count over all clips.
func (t *Track) NumChannels() int {
	n := 0
	for _, c := range t.Clips {
		if len(c.Samples) > n {
			n = len(c.Samples)
		}
	}
	return n
}

// Copy deep-copies the track, for history snapshots.
func (t *Track) Copy() *Track {
	ret := &Track{Rate: t.Rate, Clips: make([]*Clip, len(t.Clips))}
	for i, c := range t.Clips {
		clip := *c
		clip.Samples = make([][]float32, len(c.Samples))
		for ch, s := range c.Samples {
			clip.Samples[ch] = append([]float32(nil), s...)
		}
		ret.Clips[i] = &clip
	}
	return ret
}

// Restore copies the contents of another track into this one, keeping the
// receiver pointer valid. Used when rolling back to a history snapshot.
func (t *Track) Restore(from *Track) {
	c := from.Copy()
	t.Rate = c.Rate
	t.Clips = c.Clips
}

// FloatAtTime reads the sample nearest to the given time. The second return
// value is false if no clip contains the time or the channel is missing.
func (t *Track) FloatAtTime(time float64, ch int) (float32, bool) {
	c := t.ClipAtTime(time)
	if c == nil || ch < 0 || ch >= len(c.Samples) {
		return 0, false
	}
	i := c.TimeToSamples(time - c.Start)
	if i < 0 || i >= c.Len() {
		return 0, false
	}
	return c.Samples[ch][i], true
}

// FloatsCenteredAroundTime fills buf, which must have length 2*radius+1, with
// the samples around the one nearest to time. It returns the half-open range
// [from, to) of buf indices that were actually filled; indices outside it are
// left untouched, as happens near clip boundaries.
func (t *Track) FloatsCenteredAroundTime(time float64, ch int, buf []float32, radius int) (from, to int) {
	c := t.ClipAtTime(time)
	if c == nil || ch < 0 || ch >= len(c.Samples) {
		return 0, 0
	}
	center := c.TimeToSamples(time - c.Start)
	for j := -radius; j <= radius; j++ {
		i := center + j
		if i < 0 || i >= c.Len() {
			continue
		}
		buf[j+radius] = c.Samples[ch][i]
		if from == to { // first valid index
			from = j + radius
		}
		to = j + radius + 1
	}
	return from, to
}

// SetFloatAtTime writes one sample at the time nearest to the given time.
func (t *Track) SetFloatAtTime(time float64, ch int, value float32, format SampleFormat) {
	c := t.ClipAtTime(time)
	if c == nil || ch < 0 || ch >= len(c.Samples) {
		return
	}
	i := c.TimeToSamples(time - c.Start)
	if i < 0 || i >= c.Len() {
		return
	}
	c.Samples[ch][i] = value
	c.Format = c.Format.Widen(format)
}

// SetFloatsCenteredAroundTime writes values, which must have length
// 2*radius+1, centered around the sample nearest to time. Values that would
// land outside the clip are dropped.
func (t *Track) SetFloatsCenteredAroundTime(time float64, ch int, values []float32, radius int, format SampleFormat) {
	c := t.ClipAtTime(time)
	if c == nil || ch < 0 || ch >= len(c.Samples) {
		return
	}
	center := c.TimeToSamples(time - c.Start)
	for j := -radius; j <= radius; j++ {
		i := center + j
		if i < 0 || i >= c.Len() {
			continue
		}
		c.Samples[ch][i] = values[j+radius]
	}
	c.Format = c.Format.Widen(format)
}

// SetFloatsWithinTimeRange evaluates fn at every exact sample time within
// [t0, t1], inclusive of both ends, and writes the results. The range may
// span outside the clip; only samples that exist are written.
func (t *Track) SetFloatsWithinTimeRange(t0, t1 float64, ch int, fn func(time float64) float32, format SampleFormat) {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	for _, c := range t.Clips {
		if ch < 0 || ch >= len(c.Samples) {
			continue
		}
		dur := c.SampleDur()
		// Half-sample tolerance keeps the endpoints included when t0 and t1
		// are themselves snapped sample times.
		first := int(math.Ceil((t0 - c.Start - dur/2) / dur))
		last := int(math.Floor((t1 - c.Start + dur/2) / dur))
		if first < 0 {
			first = 0
		}
		if last > c.Len()-1 {
			last = c.Len() - 1
		}
		if first > last {
			continue
		}
		for i := first; i <= last; i++ {
			c.Samples[ch][i] = fn(c.Start + c.SamplesToTime(i))
		}
		c.Format = c.Format.Widen(format)
	}
}
