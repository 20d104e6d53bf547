// Package wavio loads and saves tracks as WAV files.
package wavio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wavedraw/wavedraw"
)

// Load reads a WAV file into a track with a single clip starting at time 0.
// The source bit depth is kept on the clip format so a later save does not
// silently widen or narrow the file.
func Load(path string) (*wavedraw.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()
	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid WAV file", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	bitDepth := int(decoder.SampleBitDepth())
	format, err := sampleFormat(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	numChannels := buf.Format.NumChannels
	if numChannels <= 0 {
		return nil, fmt.Errorf("%s has no channels", path)
	}
	rate := float64(buf.Format.SampleRate)
	length := len(buf.Data) / numChannels
	clip := wavedraw.NewClip(0, rate, numChannels, length, format)
	factor := float32(math.Pow(2, float64(bitDepth-1)))
	for i := 0; i < length; i++ {
		for ch := 0; ch < numChannels; ch++ {
			clip.Samples[ch][i] = float32(buf.Data[i*numChannels+ch]) / factor
		}
	}
	return &wavedraw.Track{Rate: rate, Clips: []*wavedraw.Clip{clip}}, nil
}

// Save writes the first clip of the track as a WAV file, at the bit depth the
// clip format asks for. Float32Format clips are written as 32-bit integer
// samples; everything narrower goes out at its native depth.
func Save(path string, track *wavedraw.Track) error {
	if len(track.Clips) == 0 {
		return fmt.Errorf("cannot save %s: track has no clips", path)
	}
	clip := track.Clips[0]
	bitDepth := bitDepthOf(clip.Format)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()
	numChannels := len(clip.Samples)
	rate := int(clip.Rate)
	enc := wav.NewEncoder(f, rate, bitDepth, numChannels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           make([]int, clip.Len()*numChannels),
		SourceBitDepth: bitDepth,
	}
	factor := math.Pow(2, float64(bitDepth-1)) - 1
	for i := 0; i < clip.Len(); i++ {
		for ch := 0; ch < numChannels; ch++ {
			buf.Data[i*numChannels+ch] = clampedInt(clip.Samples[ch][i], factor)
		}
	}
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("cannot finish %s: %w", path, err)
	}
	return nil
}

func sampleFormat(bitDepth int) (wavedraw.SampleFormat, error) {
	switch bitDepth {
	case 16:
		return wavedraw.Int16Format, nil
	case 24:
		return wavedraw.Int24Format, nil
	case 32:
		return wavedraw.Float32Format, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}
}

func bitDepthOf(format wavedraw.SampleFormat) int {
	switch format {
	case wavedraw.Int24Format:
		return 24
	case wavedraw.Float32Format:
		return 32
	default:
		return 16
	}
}

func clampedInt(v float32, factor float64) int {
	s := math.Round(float64(v) * factor)
	if s > factor {
		s = factor
	}
	if s < -factor {
		s = -factor
	}
	return int(s)
}
