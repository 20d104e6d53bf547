package gioui

import (
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/wavedraw/wavedraw/editor"
)

// AlertsView shows the highest-priority live alert as a strip at the bottom
// of the window.
type AlertsView struct {
	alerts *editor.Alerts
}

var alertMargin = layout.UniformInset(unit.Dp(6))
var alertInset = layout.UniformInset(unit.Dp(6))

func NewAlertsView(alerts *editor.Alerts) *AlertsView {
	return &AlertsView{alerts: alerts}
}

func (a *AlertsView) Layout(gtx C, th *material.Theme) D {
	alert, ok := a.alerts.Current()
	if !ok {
		return D{}
	}
	// repaint until the alert expires
	gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(100 * time.Millisecond)})

	bg, fg := alertColors(alert.Priority)
	label := material.Label(th, statusFontSize, alert.Message)
	label.Color = fg
	return alertMargin.Layout(gtx, func(gtx C) D {
		return layout.S.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Stack{Alignment: layout.Center}.Layout(gtx,
				layout.Expanded(func(gtx C) D {
					paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
					return D{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx C) D {
					return alertInset.Layout(gtx, label.Layout)
				}),
			)
		})
	})
}

func alertColors(priority editor.AlertPriority) (bg, fg color.NRGBA) {
	switch priority {
	case editor.Warning:
		return alertWarningColor, color.NRGBA{A: 255}
	case editor.Error:
		return alertErrorColor, color.NRGBA{A: 255}
	default:
		return alertInfoColor, white
	}
}
