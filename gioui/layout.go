package gioui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
)

type C = layout.Context
type D = layout.Dimensions

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var waveformColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}
var centerLineColor = color.NRGBA{R: 255, G: 255, B: 255, A: 32}
var sampleDotColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}

var statusBarColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}
var statusTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}

var alertInfoColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var alertWarningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var alertErrorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}

var statusFontSize = unit.Sp(14)
