package gioui

import (
	"image"
	"math"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/viterin/vek/vek32"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/editor"
)

type (
	// WaveView draws one channel of a track and routes pointer gestures to
	// the editing session. Holding alt while clicking smooths instead of
	// drawing; holding shift locks the drag horizontally.
	WaveView struct {
		track   *wavedraw.Track
		channel int
		view    *editor.View
		scale   editor.Scale
		env     wavedraw.Envelope
		session *editor.Session

		hoverPos  image.Point
		hoverMods key.Modifiers
		hovering  bool
		lastSize  image.Point
	}
)

const minZoom = 1
const maxZoom = 1e7

// dotThreshold is the per-sample pixel spacing from which individual samples
// are drawn as dots on top of the min/max columns. Same threshold the editing
// session uses for allowing sample edits.
const dotThreshold = 3

func NewWaveView(track *wavedraw.Track, channel int, view *editor.View, scale editor.Scale, env wavedraw.Envelope, session *editor.Session) *WaveView {
	return &WaveView{track: track, channel: channel, view: view, scale: scale, env: env, session: session}
}

func (v *WaveView) Layout(gtx C) D {
	s := gtx.Constraints.Max
	if s.X <= 1 || s.Y <= 1 {
		return D{}
	}
	v.lastSize = s
	defer clip.Rect(image.Rectangle{Max: s}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, v)
	v.update(gtx, s)

	midY := v.scale.PixelY(0, s.Y)
	paint.ColorOp{Color: centerLineColor}.Add(gtx.Ops)
	fillRect(gtx, clip.Rect{Min: image.Pt(0, midY), Max: image.Pt(s.X, midY+1)})

	v.drawColumns(gtx, s)
	v.drawSampleDots(gtx, s)
	v.setCursor(gtx, s)
	return D{Size: s}
}

// Status returns the hint line for the status bar, based on the current hover
// position.
func (v *WaveView) Status() string {
	if !v.hovering {
		return ""
	}
	message, _ := v.session.Preview(v.pointerEvent(v.hoverPos, v.hoverMods, v.lastSize))
	return message
}

func (v *WaveView) envAt(time float64) float32 {
	if v.env == nil {
		return 1
	}
	return float32(v.env.ValueAt(time))
}

// drawColumns paints the classic per-pixel min/max waveform. Each screen
// column covers a time range; the column is a vertical bar from the lowest to
// the highest sample in it, scaled by the envelope.
func (v *WaveView) drawColumns(gtx C, s image.Point) {
	paint.ColorOp{Color: waveformColor}.Add(gtx.Ops)
	right := v.view.PixelToTime(0, 0)
	for sx := 0; sx < s.X; sx++ {
		left := right
		right = v.view.PixelToTime(sx+1, 0)
		c := v.track.ClipAtTime(left)
		if c == nil || v.channel >= len(c.Samples) {
			continue
		}
		i0 := c.TimeToSamples(left - c.Start)
		i1 := c.TimeToSamples(right - c.Start)
		if i0 < 0 {
			i0 = 0
		}
		if i1 <= i0 {
			i1 = i0 + 1
		}
		if i1 > c.Len() {
			i1 = c.Len()
		}
		if i0 >= i1 {
			continue
		}
		sub := c.Samples[v.channel][i0:i1]
		e := v.envAt((left + right) / 2)
		y1 := v.scale.PixelY(vek32.Max(sub)*e, s.Y)
		y2 := v.scale.PixelY(vek32.Min(sub)*e, s.Y)
		fillRect(gtx, clip.Rect{Min: image.Pt(sx, min(y1, y2)), Max: image.Pt(sx+1, max(y1, y2)+1)})
	}
}

// drawSampleDots marks the individual samples once they are spaced far enough
// apart to be edited one by one.
func (v *WaveView) drawSampleDots(gtx C, s image.Point) {
	paint.ColorOp{Color: sampleDotColor}.Add(gtx.Ops)
	for _, c := range v.track.Clips {
		if v.channel >= len(c.Samples) {
			continue
		}
		if v.view.Zoom*c.SampleDur() < dotThreshold {
			continue
		}
		first := c.TimeToSamples(v.view.PixelToTime(0, 0) - c.Start)
		if first < 0 {
			first = 0
		}
		for i := first; i < c.Len(); i++ {
			t := c.Start + c.SamplesToTime(i)
			x := v.view.TimeToPixel(t)
			if x >= s.X {
				break
			}
			if x < 0 {
				continue
			}
			y := v.scale.PixelY(c.Samples[v.channel][i]*v.envAt(t), s.Y)
			fillRect(gtx, clip.Rect{Min: image.Pt(x-1, y-1), Max: image.Pt(x+2, y+2)})
		}
	}
}

func (v *WaveView) pointerEvent(pos image.Point, mods key.Modifiers, s image.Point) editor.PointerEvent {
	return editor.PointerEvent{
		X:        pos.X,
		Y:        pos.Y,
		Rect:     image.Rectangle{Max: s},
		Smooth:   mods.Contain(key.ModAlt),
		LockTime: mods.Contain(key.ModShift),
	}
}

func (v *WaveView) update(gtx C, s image.Point) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel |
				pointer.Move | pointer.Leave | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pos := image.Pt(int(e.Position.X), int(e.Position.Y))
		switch e.Kind {
		case pointer.Press:
			if e.Buttons&pointer.ButtonPrimary != 0 {
				v.session.Click(v.pointerEvent(pos, e.Modifiers, s))
			}
		case pointer.Drag:
			v.hoverPos = pos
			v.session.Drag(v.pointerEvent(pos, e.Modifiers, s))
		case pointer.Release:
			v.session.Release(v.pointerEvent(pos, e.Modifiers, s))
		case pointer.Cancel:
			v.session.Cancel()
		case pointer.Scroll:
			v.zoomAround(pos.X, e.Scroll.Y)
		case pointer.Move:
			v.hoverPos = pos
			v.hoverMods = e.Modifiers
			v.hovering = true
		case pointer.Leave:
			v.hovering = false
		}
	}
}

// zoomAround rescales the view so the time under the pointer stays put.
func (v *WaveView) zoomAround(x int, scrollY float32) {
	t := v.view.PixelToTime(x, 0)
	factor := math.Pow(1.1, float64(-scrollY))
	zoom := v.view.Zoom * factor
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	v.view.Zoom = zoom
	v.view.Start = t - float64(x)/zoom
}

func (v *WaveView) setCursor(gtx C, s image.Point) {
	if !v.hovering {
		return
	}
	_, cursor := v.session.Preview(v.pointerEvent(v.hoverPos, v.hoverMods, s))
	switch cursor {
	case editor.SmoothCursor:
		pointer.CursorGrab.Add(gtx.Ops)
	case editor.DisabledCursor:
		pointer.CursorNotAllowed.Add(gtx.Ops)
	default:
		pointer.CursorCrosshair.Add(gtx.Ops)
	}
}

func fillRect(gtx C, rect clip.Rect) {
	stack := rect.Push(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	stack.Pop()
}
