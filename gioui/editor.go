// Package gioui is the graphical front end of the sample editor: a waveform
// view that routes pointer gestures to an editor.Session, a status bar and a
// small set of global keybindings.
package gioui

import (
	"image"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/editor"
)

type (
	// Player is the audio side the editor needs: starting and stopping
	// playback, and knowing whether it runs right now.
	Player interface {
		Play()
		Pause()
		IsAudioActive() bool
	}

	Editor struct {
		Theme    *material.Theme
		WaveView *WaveView
		Alerts   *AlertsView

		history *editor.TrackHistory
		alerts  *editor.Alerts
		player  Player
		save    func() error

		preferences editor.Preferences
		window      *app.Window
		quitted     bool
	}
)

// NewEditor wires a track, its display mappings and the collaborators into a
// ready-to-run editor window. save may be nil when there is nowhere to save
// to; the Save action then only raises an alert.
func NewEditor(track *wavedraw.Track, channel int, view *editor.View, scale editor.Scale,
	env wavedraw.Envelope, player Player, preferences editor.Preferences, save func() error) *Editor {

	history := editor.NewTrackHistory(track)
	alerts := editor.NewAlerts()
	host := editor.Host{Audio: player, History: history, Alerts: alerts}
	session := editor.NewSession(track, channel, view, scale, env, host, preferences.Editing)

	e := &Editor{
		Theme:       material.NewTheme(),
		WaveView:    NewWaveView(track, channel, view, scale, env, session),
		Alerts:      NewAlertsView(alerts),
		history:     history,
		alerts:      alerts,
		player:      player,
		save:        save,
		preferences: preferences,
	}
	e.Theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	if preferences.YmlError != nil {
		alerts.Add("preferences.yml: "+preferences.YmlError.Error(), editor.Warning)
	}
	return e
}

func (e *Editor) Main(title string) {
	w := new(app.Window)
	w.Option(app.Title(title), app.Size(
		unit.Dp(e.preferences.Window.Width),
		unit.Dp(e.preferences.Window.Height)))
	if e.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	e.window = w
	var ops op.Ops
	for {
		switch ev := w.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			e.Layout(gtx)
			ev.Frame(gtx.Ops)
			if e.quitted {
				w.Perform(system.ActionClose)
			}
		}
	}
}

func (e *Editor) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, backgroundColor)

	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, e.WaveView.Layout),
		layout.Rigid(e.layoutStatusBar),
	)
	e.Alerts.Layout(gtx, e.Theme)
	e.handleKeys(gtx)
}

func (e *Editor) layoutStatusBar(gtx C) D {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(24))
	paint.FillShape(gtx.Ops, statusBarColor, clip.Rect{Max: size}.Op())
	gtx.Constraints = layout.Exact(size)
	label := material.Label(e.Theme, statusFontSize, e.WaveView.Status())
	label.Color = statusTextColor
	layout.UniformInset(unit.Dp(4)).Layout(gtx, label.Layout)
	return D{Size: size}
}

// handleKeys is the top level input handler; it maps global key presses to
// actions through the keybindings table.
func (e *Editor) handleKeys(gtx C) {
	for {
		ev, ok := gtx.Event(key.Filter{
			Name:     "",
			Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModCtrl | key.ModSuper,
		})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			if action, ok := keyBindingMap[ke]; ok {
				e.doAction(action)
			}
		}
	}
}

func (e *Editor) doAction(action string) {
	switch action {
	case "Undo":
		e.history.Undo()
	case "Redo":
		e.history.Redo()
	case "PlayStop":
		if e.player.IsAudioActive() {
			e.player.Pause()
		} else {
			e.player.Play()
		}
	case "Save":
		if e.save == nil {
			e.alerts.Add("No file to save to", editor.Warning)
			return
		}
		if err := e.save(); err != nil {
			e.alerts.Add(err.Error(), editor.Error)
			return
		}
		e.alerts.Add("Saved", editor.Info)
	case "Quit":
		e.quitted = true
	}
}
