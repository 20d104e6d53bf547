package editor

import (
	"testing"

	"github.com/wavedraw/wavedraw"
)

func historyTrack() *wavedraw.Track {
	return testTrack(100, 8)
}

func setSample(track *wavedraw.Track, index int, value float32) {
	track.Clips[0].Samples[0][index] = value
}

func sample(track *wavedraw.Track, index int) float32 {
	return track.Clips[0].Samples[0][index]
}

func TestHistoryRollbackDropsUncommittedWrites(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	setSample(track, 0, 0.5)
	h.Rollback()
	if got := sample(track, 0); got != 0 {
		t.Errorf("sample 0 = %v after rollback, want 0", got)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	setSample(track, 0, 0.5)
	h.PushState("first", false)
	setSample(track, 1, -0.5)
	h.PushState("second", false)

	if got := h.UndoDepth(); got != 2 {
		t.Fatalf("undo depth = %d, want 2", got)
	}
	h.Undo()
	if sample(track, 0) != 0.5 || sample(track, 1) != 0 {
		t.Error("undo should revert only the second edit")
	}
	h.Undo()
	if sample(track, 0) != 0 {
		t.Error("second undo should revert the first edit")
	}
	h.Redo()
	h.Redo()
	if sample(track, 0) != 0.5 || sample(track, 1) != -0.5 {
		t.Error("redoing twice should restore both edits")
	}
}

func TestHistoryConsolidatesSameLabel(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	setSample(track, 0, 0.1)
	h.PushState("Moved Samples", true)
	setSample(track, 0, 0.2)
	h.PushState("Moved Samples", true)
	setSample(track, 0, 0.3)
	h.PushState("Moved Samples", true)

	if got := h.UndoDepth(); got != 1 {
		t.Fatalf("undo depth = %d, want 1 consolidated step", got)
	}
	h.Undo()
	if got := sample(track, 0); got != 0 {
		t.Errorf("sample 0 = %v after undo, want the original 0", got)
	}
	h.Redo()
	if got := sample(track, 0); got != 0.3 {
		t.Errorf("sample 0 = %v after redo, want the last consolidated value", got)
	}
}

func TestHistoryUndoBreaksConsolidation(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	setSample(track, 0, 0.1)
	h.PushState("Moved Samples", true)
	h.Undo()
	h.Redo()
	setSample(track, 0, 0.2)
	h.PushState("Moved Samples", true)
	if got := h.UndoDepth(); got != 2 {
		t.Errorf("undo depth = %d, want 2; edits after an undo are separate steps", got)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	setSample(track, 0, 0.1)
	h.PushState("first", false)
	h.Undo()
	setSample(track, 0, 0.9)
	h.PushState("other", false)
	h.Redo()
	if got := sample(track, 0); got != 0.9 {
		t.Errorf("sample 0 = %v, a push must invalidate the redo stack", got)
	}
}

func TestHistoryBounded(t *testing.T) {
	track := historyTrack()
	h := NewTrackHistory(track)
	for i := 0; i < maxUndo+10; i++ {
		setSample(track, 0, float32(i))
		h.PushState("step", false)
	}
	if got := h.UndoDepth(); got != maxUndo {
		t.Errorf("undo depth = %d, want it capped at %d", got, maxUndo)
	}
}
