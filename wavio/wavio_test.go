package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavedraw/wavedraw"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	clip := wavedraw.NewClip(0, 8000, 2, 64, wavedraw.Int16Format)
	for i := 0; i < clip.Len(); i++ {
		phase := 2 * math.Pi * float64(i) / 32
		clip.Samples[0][i] = float32(math.Sin(phase)) * 0.8
		clip.Samples[1][i] = float32(math.Cos(phase)) * 0.5
	}
	track := &wavedraw.Track{Rate: 8000, Clips: []*wavedraw.Clip{clip}}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	if err := Save(path, track); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Rate != 8000 {
		t.Errorf("rate = %v, want 8000", loaded.Rate)
	}
	if len(loaded.Clips) != 1 {
		t.Fatalf("clips = %d, want 1", len(loaded.Clips))
	}
	got := loaded.Clips[0]
	if got.Format != wavedraw.Int16Format {
		t.Errorf("format = %v, want Int16Format", got.Format)
	}
	if got.Len() != clip.Len() || len(got.Samples) != 2 {
		t.Fatalf("loaded %d samples x %d channels, want %d x 2", got.Len(), len(got.Samples), clip.Len())
	}
	const tolerance = 1.0 / 32768 // one 16-bit quantization step
	for ch := range clip.Samples {
		for i := range clip.Samples[ch] {
			want := clip.Samples[ch][i]
			if diff := math.Abs(float64(got.Samples[ch][i] - want)); diff > tolerance {
				t.Fatalf("channel %d sample %d = %v, want %v within %v",
					ch, i, got.Samples[ch][i], want, tolerance)
			}
		}
	}
}

func TestSaveClampsOverrange(t *testing.T) {
	clip := wavedraw.NewClip(0, 8000, 1, 4, wavedraw.Int16Format)
	clip.Samples[0] = []float32{1.5, -1.5, 1, -1}
	track := &wavedraw.Track{Rate: 8000, Clips: []*wavedraw.Clip{clip}}

	path := filepath.Join(t.TempDir(), "clamp.wav")
	if err := Save(path, track); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	samples := loaded.Clips[0].Samples[0]
	if samples[0] <= 0.99 || samples[0] > 1 {
		t.Errorf("overrange sample = %v, want it clamped near 1", samples[0])
	}
	if samples[1] >= -0.99 || samples[1] < -1 {
		t.Errorf("overrange sample = %v, want it clamped near -1", samples[1])
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-wav.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("loading a non-WAV file should fail")
	}
}
