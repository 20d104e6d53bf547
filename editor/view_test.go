package editor

import (
	"math"
	"testing"

	"github.com/wavedraw/wavedraw"
)

func testTrack(rate float64, length int) *wavedraw.Track {
	clip := wavedraw.NewClip(0, rate, 1, length, wavedraw.Int16Format)
	return &wavedraw.Track{Rate: rate, Clips: []*wavedraw.Clip{clip}}
}

func TestPixelTimeRoundTrip(t *testing.T) {
	views := []*View{
		{Start: 0, Zoom: 1000},
		{Start: 1.5, Zoom: 44100 * 4},
		{Start: 0, Zoom: 500, Warps: []Warp{{FromPixel: 100, ToPixel: 300, Factor: 2}}},
		{Start: 0.25, Zoom: 800, Warps: []Warp{
			{FromPixel: 50, ToPixel: 150, Factor: 0.5},
			{FromPixel: 400, ToPixel: 500, Factor: 4},
		}},
	}
	for _, v := range views {
		for _, px := range []int{0, 1, 49, 50, 99, 100, 150, 299, 300, 450, 799} {
			time := v.PixelToTime(px, 0)
			if got := v.TimeToPixel(time); got != px {
				t.Errorf("view %+v: TimeToPixel(PixelToTime(%d)) = %d", v, px, got)
			}
		}
	}
}

func TestPixelToTimeOrigin(t *testing.T) {
	v := &View{Start: 2, Zoom: 100}
	if got, want := v.PixelToTime(150, 50), 3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("PixelToTime(150, 50) = %v, want %v", got, want)
	}
}

func TestFindIntervals(t *testing.T) {
	v := &View{Start: 0, Zoom: 500, Warps: []Warp{{FromPixel: 100, ToPixel: 300, Factor: 2}}}
	got := v.FindIntervals(800)
	want := []ZoomInterval{{0, 500}, {100, 1000}, {300, 500}}
	if len(got) != len(want) {
		t.Fatalf("FindIntervals returned %d intervals, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interval %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if got[0].Position != 0 {
		t.Error("first interval must start at position 0")
	}
}

func TestAdjustTimeIdempotent(t *testing.T) {
	track := &wavedraw.Track{Rate: 44100}
	clip := wavedraw.NewClip(0.5, 8000, 1, 4000, wavedraw.Int16Format)
	clip.StretchRatio = 1.25
	track.Clips = []*wavedraw.Clip{clip}

	for _, time := range []float64{0.5, 0.5001, 0.63, 0.9999, 0.123, 1.7} {
		once := adjustTime(track, time)
		twice := adjustTime(track, once)
		if once != twice {
			t.Errorf("adjustTime(%v): %v != %v after second application", time, once, twice)
		}
	}
}

func TestAdjustTimeOutsideClipUsesTrackGrid(t *testing.T) {
	track := testTrack(100, 100) // clip covers [0, 1)
	got := adjustTime(track, 2.003)
	if want := 2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("adjustTime(2.003) = %v, want %v", got, want)
	}
}

func TestSampleResolutionTest(t *testing.T) {
	const rate = 100.0
	track := testTrack(rate, 100)
	for _, tc := range []struct {
		zoom float64
		want bool
	}{
		{2.9 * rate, false},
		{3.0 * rate, false}, // strictly more than 3 pixels per sample
		{3.1 * rate, true},
	} {
		v := &View{Start: 0, Zoom: tc.zoom}
		if got := sampleResolutionTest(v, track, 0.5, 800); got != tc.want {
			t.Errorf("zoom %v×rate: sampleResolutionTest = %v, want %v", tc.zoom/rate, got, tc.want)
		}
	}
}

func TestSampleResolutionTestNoClip(t *testing.T) {
	track := testTrack(100, 100)
	v := &View{Start: 0, Zoom: 1} // hopelessly zoomed out
	if !sampleResolutionTest(v, track, 50, 800) {
		t.Error("resolution test should pass where no clip exists")
	}
}

func TestSampleResolutionTestStretchedClip(t *testing.T) {
	const rate = 100.0
	track := testTrack(rate, 100)
	track.Clips[0].StretchRatio = 2 // effective rate halves
	v := &View{Start: 0, Zoom: 1.6 * rate}
	if !sampleResolutionTest(v, track, 0.5, 800) {
		t.Error("stretching should relax the zoom requirement")
	}
}
