// Package editor implements direct manipulation of individual track samples:
// translating pointer positions into sample times and amplitudes, redrawing
// samples across a drag gesture, smoothing a local neighborhood, and the
// click/drag/release state machine that keeps the edits transactional.
package editor

import (
	"math"

	"github.com/wavedraw/wavedraw"
)

type (
	// View is the horizontal mapping between display pixels and time. Pixel 0
	// shows Start; an unwarped pixel covers 1/Zoom seconds. Warps describe
	// display regions where the zoom deviates from the base zoom, as happens
	// over stretched clips. The view is queried per event and treated as a
	// snapshot; the editor never mutates it.
	View struct {
		Start float64 // time at pixel 0, seconds
		Zoom  float64 // pixels per second outside warped regions
		Warps []Warp  // sorted by FromPixel, non-overlapping
	}

	// Warp multiplies the base zoom by Factor within [FromPixel, ToPixel).
	Warp struct {
		FromPixel, ToPixel int
		Factor             float64
	}

	// ZoomInterval is one maximal run of pixels sharing a constant zoom.
	// Position is the first pixel of the run.
	ZoomInterval struct {
		Position    int
		AverageZoom float64 // pixels per second for this run
	}
)

// PixelToTime converts a pixel position to time, subtracting the origin of
// the display rectangle first.
func (v *View) PixelToTime(x, originX int) float64 {
	px := x - originX
	if px <= 0 {
		return v.Start + float64(px)/v.Zoom
	}
	t := v.Start
	cur := 0
	for _, w := range v.Warps {
		if px <= w.FromPixel {
			break
		}
		if w.FromPixel > cur {
			seg := min(px, w.FromPixel) - cur
			t += float64(seg) / v.Zoom
			cur += seg
		}
		if px <= cur {
			break
		}
		if seg := min(px, w.ToPixel) - cur; seg > 0 {
			t += float64(seg) / (v.Zoom * w.Factor)
			cur += seg
		}
	}
	return t + float64(px-cur)/v.Zoom
}

// TimeToPixel is the inverse of PixelToTime with a zero origin.
func (v *View) TimeToPixel(time float64) int {
	t := v.Start
	cur := 0
	for _, w := range v.Warps {
		segT := float64(w.FromPixel-cur) / v.Zoom
		if time < t+segT {
			return cur + int(math.Round((time-t)*v.Zoom))
		}
		cur, t = w.FromPixel, t+segT
		z := v.Zoom * w.Factor
		segT = float64(w.ToPixel-cur) / z
		if time < t+segT {
			return cur + int(math.Round((time-t)*z))
		}
		cur, t = w.ToPixel, t+segT
	}
	return cur + int(math.Round((time-t)*v.Zoom))
}

// FindIntervals partitions the first width pixels into maximal constant-zoom
// runs. The first interval always starts at position 0.
func (v *View) FindIntervals(width int) []ZoomInterval {
	ret := []ZoomInterval{{Position: 0, AverageZoom: v.Zoom}}
	for _, w := range v.Warps {
		if w.FromPixel >= width || w.ToPixel <= 0 {
			continue
		}
		z := v.Zoom * w.Factor
		if w.FromPixel <= 0 {
			ret[0].AverageZoom = z
		} else {
			ret = append(ret, ZoomInterval{Position: w.FromPixel, AverageZoom: z})
		}
		if w.ToPixel < width {
			ret = append(ret, ZoomInterval{Position: w.ToPixel, AverageZoom: v.Zoom})
		}
	}
	return ret
}

// adjustTime rounds a time to an exact sample time. Within a clip the clip's
// own offset and stretch ratio decide the grid; elsewhere the track's nominal
// rate does. Snapping an already snapped time returns it unchanged.
func adjustTime(t *wavedraw.Track, time float64) float64 {
	clip := t.ClipAtTime(time)
	if clip == nil {
		return t.SnapToSample(time)
	}
	off := clip.TimeToSamples(time - clip.Start)
	return clip.SamplesToTime(off) + clip.Start
}

// sampleResolutionTest reports whether the sample nearest to the pointer is
// spread over enough pixels for per-sample editing: the zoom run containing
// the pointer must exceed three pixels per sample. Without a clip at the
// time there is nothing to edit, so the test passes trivially.
func sampleResolutionTest(view *View, t *wavedraw.Track, time float64, width int) bool {
	xx := max(0, view.TimeToPixel(time))
	clip := t.ClipAtTime(time)
	if clip == nil {
		return true
	}
	stretch := clip.StretchRatio
	if stretch <= 0 {
		stretch = 1
	}
	rate := clip.Rate / stretch
	intervals := view.FindIntervals(width)
	prev := intervals[0]
	for _, it := range intervals[1:] {
		if it.Position > xx {
			break
		}
		prev = it
	}
	// three times as many pixels per second, as samples
	return prev.AverageZoom > 3*rate
}
