package editor

import (
	"image"

	"github.com/wavedraw/wavedraw"
)

type (
	// AudioState reports whether audio playback or recording is running.
	// Sample editing is refused while it is, so the engine never observes a
	// buffer mutating under it.
	AudioState interface {
		IsAudioActive() bool
	}

	// Host groups the collaborators the session drives but does not own.
	Host struct {
		Audio   AudioState
		History History
		Alerts  *Alerts
	}

	// PointerEvent is one pointer sample in the coordinates of the window.
	// Rect is the display rectangle of the track cell; Smooth and LockTime
	// are the states of the smoothing and horizontal-lock modifier keys.
	PointerEvent struct {
		X, Y     int
		Rect     image.Rectangle
		Smooth   bool
		LockTime bool
	}

	// Result tells the host view what to refresh after an event.
	Result int

	// State is the gesture state. Committed and Cancelled are reported by
	// the transition that ends a gesture; the session itself is back in
	// Idle when the event call returns.
	State int

	// Session owns one pointer gesture at a time over a single channel of a
	// track. All methods are called on the event-processing goroutine; the
	// session never blocks. The gesture holds the track exclusively from
	// Click until the gesture's track reference is cleared on Release or
	// Cancel; after that, any further event is a no-op.
	Session struct {
		track   *wavedraw.Track
		channel int
		view    *View
		scale   Scale
		env     wavedraw.Envelope
		host    Host
		prefs   EditingPreferences

		state         State
		gestureTrack  *wavedraw.Track // nil when no gesture owns the buffer
		rect          image.Rectangle // snapshotted at click
		smoothing     bool            // fixed at click time
		startPixel    int
		lastDragPixel int
		lastDragValue float32
	}

	// Cursor is the pointer shape a hover preview asks for.
	Cursor int
)

const (
	RefreshNone Result = 0
	RefreshCell Result = 1 << 0
	Cancelled   Result = 1 << 1
)

const (
	Idle State = iota
	Drawing
	Smoothing
)

const (
	PencilCursor Cursor = iota
	SmoothCursor
	DisabledCursor
)

const (
	editHintMessage = "Click and drag to edit the samples"
	zoomInMessage   = "To edit samples, zoom in further until you can see the individual samples."
)

// NewSession returns an idle session editing one channel of the track, under
// the given horizontal and vertical mappings. env may be nil.
func NewSession(track *wavedraw.Track, channel int, view *View, scale Scale, env wavedraw.Envelope, host Host, prefs EditingPreferences) *Session {
	return &Session{
		track:   track,
		channel: channel,
		view:    view,
		scale:   scale,
		env:     env,
		host:    host,
		prefs:   prefs,
	}
}

func (s *Session) State() State { return s.state }

// envValueAt returns the envelope scale at the given time, 1 without an
// envelope.
func (s *Session) envValueAt(time float64) float64 {
	if s.env == nil {
		return 1
	}
	return s.env.ValueAt(time)
}

// findEditingLevel converts the vertical pointer position to the raw sample
// value the user intends at the given time: inverse of the display scale,
// then envelope correction.
func (s *Session) findEditingLevel(y int, time float64) float32 {
	level := s.scale.ValueOfPixel(y-s.rect.Min.Y, s.rect.Dy())
	return CorrectForEnvelope(level, s.envValueAt(time))
}

// HitTest reports whether a pointer position lands on an editable sample:
// the zoom must pass the resolution test and the pointer must be vertically
// within the hit tolerance of the sample as rendered.
func (s *Session) HitTest(x, y int, rect image.Rectangle) bool {
	time := s.view.PixelToTime(x, rect.Min.X)
	tt := adjustTime(s.track, time)
	if !sampleResolutionTest(s.view, s.track, tt, rect.Dx()) {
		return false
	}
	oneSample, ok := s.track.FloatAtTime(tt, s.channel)
	if !ok {
		return false
	}
	rendered := oneSample * float32(s.envValueAt(tt))
	yValue := s.scale.PixelY(rendered, rect.Dy()) + rect.Min.Y
	return abs(yValue-y) < s.prefs.HitTolerance
}

// Preview is the non-mutating hover query: the status line message and the
// cursor shape for the current pointer state.
func (s *Session) Preview(ev PointerEvent) (message string, cursor Cursor) {
	switch {
	case s.host.Audio.IsAudioActive():
		cursor = DisabledCursor
	case ev.Smooth:
		cursor = SmoothCursor
	default:
		cursor = PencilCursor
	}
	return editHintMessage, cursor
}

// isEditingPossible runs the resolution test for a committing event. On
// failure during a click it raises the zoom-in alert; mid-gesture failures
// stay silent because the gesture is about to roll back anyway.
func (s *Session) isEditingPossible(x int, rect image.Rectangle, announce bool) bool {
	time := adjustTime(s.track, s.view.PixelToTime(x, rect.Min.X))
	if sampleResolutionTest(s.view, s.track, time, rect.Dx()) {
		return true
	}
	if announce {
		s.host.Alerts.Add(zoomInMessage, Warning)
	}
	return false
}

// Click starts a gesture. With the smoothing modifier held it smooths the
// neighborhood of the clicked sample once; otherwise it writes the sample
// under the pointer and arms drag drawing.
func (s *Session) Click(ev PointerEvent) Result {
	if s.host.Audio.IsAudioActive() {
		return Cancelled
	}
	if !s.isEditingPossible(ev.X, ev.Rect, true) {
		return Cancelled
	}

	t0 := s.view.PixelToTime(ev.X, ev.Rect.Min.X)
	s.gestureTrack = s.track
	s.rect = ev.Rect
	s.startPixel = s.view.TimeToPixel(t0)
	s.smoothing = ev.Smooth

	if ev.Smooth {
		s.state = Smoothing
		s.smoothOnce(t0)
		// lastDragValue will not be used
	} else {
		s.state = Drawing
		newLevel := s.findEditingLevel(ev.Y, t0)
		s.track.SetFloatAtTime(t0, s.channel, newLevel, wavedraw.NarrowestFormat)
		s.lastDragValue = newLevel
	}
	s.lastDragPixel = s.startPixel
	return RefreshCell
}

// smoothOnce reads the kernel-plus-brush neighborhood around the clicked
// time, smooths it and writes the brush-wide result back in one operation.
func (s *Session) smoothOnce(t0 float64) {
	region := make([]float32, 1+2*(smoothingKernelRadius+smoothingBrushRadius))
	from, to := s.track.FloatsCenteredAroundTime(
		t0, s.channel, region, smoothingKernelRadius+smoothingBrushRadius)
	out := smoothRegion(region, from, to)
	s.track.SetFloatsCenteredAroundTime(
		t0, s.channel, out, smoothingBrushRadius, wavedraw.NarrowestFormat)
}

// Drag continues a drawing gesture, filling every sample between the last
// drag position and the pointer with a linear ramp. Smoothing gestures
// ignore drags. If audio started or the zoom no longer suffices, the whole
// gesture rolls back.
func (s *Session) Drag(ev PointerEvent) Result {
	if s.gestureTrack == nil {
		return RefreshNone
	}
	unsafe := s.host.Audio.IsAudioActive()
	if unsafe || !s.isEditingPossible(ev.X, s.rect, false) {
		return s.Cancel() | Cancelled
	}
	if s.smoothing {
		return RefreshNone
	}

	t0 := s.view.PixelToTime(s.lastDragPixel, 0)
	t1 := s.view.PixelToTime(ev.X, s.rect.Min.X)
	x1 := s.view.TimeToPixel(t1)
	if ev.LockTime {
		x1 = s.startPixel
		if !s.prefs.LockRedrawsFromClick {
			// Freeze the horizontal position entirely: the segment endpoint
			// stays at the click column, so only the clicked sample moves.
			t1 = s.view.PixelToTime(s.startPixel, 0)
		}
	}
	newLevel := s.findEditingLevel(ev.Y, t1)
	interp := interpolator(t0, t1, s.lastDragValue, newLevel)
	s.track.SetFloatsWithinTimeRange(
		min(t0, t1), max(t0, t1), s.channel, interp, wavedraw.NarrowestFormat)

	s.lastDragPixel = x1
	s.lastDragValue = newLevel
	return RefreshCell
}

// Release commits the gesture as one consolidated history checkpoint. If
// audio became active, the gesture is cancelled instead.
func (s *Session) Release(ev PointerEvent) Result {
	if s.gestureTrack == nil {
		return RefreshNone
	}
	if s.host.Audio.IsAudioActive() {
		return s.Cancel()
	}
	s.gestureTrack = nil // catches improper drag events from here on
	s.state = Idle
	s.host.History.PushState("Moved Samples", true)
	// the drag already drew the final state
	return RefreshNone
}

// Cancel abandons the gesture and rolls the track back to the state before
// the click.
func (s *Session) Cancel() Result {
	if s.gestureTrack == nil && s.state == Idle {
		return RefreshNone
	}
	s.gestureTrack = nil
	s.state = Idle
	s.host.History.Rollback()
	return RefreshCell
}
