// Package oto plays tracks through the system audio device. The editor only
// needs to know whether playback is running; TrackPlayer implements the
// editor.AudioState interface for that.
package oto

import (
	"fmt"
	"io"
	"math"

	"github.com/ebitengine/oto/v3"

	"github.com/wavedraw/wavedraw"
)

type (
	// Context wraps the audio device context. There can be only one per
	// process; create it once and hand out players from it.
	Context struct {
		context *oto.Context
	}

	// TrackPlayer streams one channel of a track to the audio device. It
	// reads the live track, so the editor must refuse edits while
	// IsAudioActive reports true.
	TrackPlayer struct {
		player *oto.Player
		reader *trackReader
	}

	trackReader struct {
		track    *wavedraw.Track
		channel  int
		rate     float64
		position int // in samples on the track's nominal grid
	}
)

func NewContext(sampleRate int) (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context}, nil
}

// NewTrackPlayer returns a paused player over one channel of the track. The
// context sample rate should match the track rate; no resampling is done.
func (c *Context) NewTrackPlayer(track *wavedraw.Track, channel int) *TrackPlayer {
	reader := &trackReader{track: track, channel: channel, rate: track.Rate}
	return &TrackPlayer{player: c.context.NewPlayer(reader), reader: reader}
}

// Play starts or resumes playback from the current position, rewinding first
// if the previous playback ran to the end.
func (p *TrackPlayer) Play() {
	if p.reader.atEnd() {
		p.reader.position = 0
	}
	p.player.Play()
}

func (p *TrackPlayer) Pause() { p.player.Pause() }

// IsAudioActive implements editor.AudioState.
func (p *TrackPlayer) IsAudioActive() bool { return p.player.IsPlaying() }

func (p *TrackPlayer) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

func (r *trackReader) atEnd() bool {
	return float64(r.position)/r.rate >= r.track.Duration()
}

func (r *trackReader) Read(p []byte) (int, error) {
	if r.atEnd() {
		return 0, io.EOF
	}
	n := 0
	for n+1 < len(p) && !r.atEnd() {
		v, _ := r.track.FloatAtTime(float64(r.position)/r.rate, r.channel)
		s := floatTo16Bit(v)
		p[n] = byte(s)
		p[n+1] = byte(s >> 8)
		n += 2
		r.position++
	}
	return n, nil
}

// floatTo16Bit converts one sample to a signed 16-bit value, clamping instead
// of wrapping on overrange samples.
func floatTo16Bit(v float32) int16 {
	if v < -1 {
		return -math.MaxInt16
	}
	if v > 1 {
		return math.MaxInt16
	}
	return int16(v * math.MaxInt16)
}
