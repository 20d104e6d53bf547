package editor

import "testing"

func TestDefaultPreferences(t *testing.T) {
	p := loadDefaultPreferences()
	if p.Editing.HitTolerance != 10 {
		t.Errorf("HitTolerance = %d, want 10", p.Editing.HitTolerance)
	}
	if !p.Editing.LockRedrawsFromClick {
		t.Error("LockRedrawsFromClick should default to true")
	}
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		t.Errorf("window size %dx%d, want positive defaults", p.Window.Width, p.Window.Height)
	}
}
