package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"gioui.org/app"

	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/editor"
	"github.com/wavedraw/wavedraw/gioui"
	"github.com/wavedraw/wavedraw/oto"
	"github.com/wavedraw/wavedraw/version"
	"github.com/wavedraw/wavedraw/wavio"
)

var showVersion = flag.Bool("version", false, "print version and exit")
var channel = flag.Int("channel", 0, "the channel to edit")
var useDB = flag.Bool("db", false, "use a decibel amplitude axis")
var dbRange = flag.Float64("dbrange", 60, "range of the decibel axis, in dB")

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}

	var track *wavedraw.Track
	var save func() error
	title := "Wavedraw"
	if a := flag.Args(); len(a) > 0 {
		path := a[0]
		var err error
		track, err = wavio.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		save = func() error { return wavio.Save(path, track) }
		title = fmt.Sprintf("Wavedraw - %s", path)
	} else {
		track = defaultTrack()
	}

	if *channel < 0 || *channel >= track.NumChannels() {
		log.Fatalf("track has no channel %d", *channel)
	}

	var player gioui.Player = noAudio{}
	if audioContext, err := oto.NewContext(int(track.Rate)); err == nil {
		player = audioContext.NewTrackPlayer(track, *channel)
	} else {
		log.Printf("audio disabled: %v", err)
	}

	view := &editor.View{Start: 0, Zoom: initialZoom(track)}
	scale := editor.Scale{Min: -1, Max: 1, DB: *useDB, DBRange: *dbRange}
	ui := gioui.NewEditor(track, *channel, view, scale, nil, player, editor.MakePreferences(), save)

	go func() {
		ui.Main(title)
		os.Exit(0)
	}()
	app.Main()
}

// defaultTrack gives something to draw on when no file is given: a second of
// a quiet 220 Hz sine at 8 kHz.
func defaultTrack() *wavedraw.Track {
	const rate = 8000
	clip := wavedraw.NewClip(0, rate, 1, rate, wavedraw.Float32Format)
	for i := range clip.Samples[0] {
		clip.Samples[0][i] = float32(0.5 * math.Sin(2*math.Pi*220*float64(i)/rate))
	}
	return &wavedraw.Track{Rate: rate, Clips: []*wavedraw.Clip{clip}}
}

// initialZoom fits the whole track into a nominal window width.
func initialZoom(track *wavedraw.Track) float64 {
	duration := track.Duration()
	if duration <= 0 {
		return 1000
	}
	return 1024 / duration
}

// noAudio is used when no audio device could be opened; editing still works.
type noAudio struct{}

func (noAudio) Play()               {}
func (noAudio) Pause()              {}
func (noAudio) IsAudioActive() bool { return false }
