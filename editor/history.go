package editor

import "github.com/wavedraw/wavedraw"

type (
	// History is the undo collaborator the session drives: one consolidated
	// checkpoint per finished gesture, or a rollback to the state before the
	// gesture when it is cancelled.
	History interface {
		// PushState records the current track contents as a checkpoint.
		// When consolidate is true and the previous checkpoint carries the
		// same label, the previous checkpoint is replaced instead of a new
		// undo step being added.
		PushState(label string, consolidate bool)
		// Rollback restores the track to the last checkpoint, dropping any
		// uncommitted writes.
		Rollback()
	}

	// TrackHistory keeps bounded undo/redo stacks of track snapshots. The
	// baseline snapshot always mirrors the last committed state, so a
	// rollback needs no bookkeeping from the caller.
	TrackHistory struct {
		track     *wavedraw.Track
		committed *wavedraw.Track
		undoStack []*wavedraw.Track
		redoStack []*wavedraw.Track
		prevLabel string
	}
)

const maxUndo = 64

func NewTrackHistory(track *wavedraw.Track) *TrackHistory {
	return &TrackHistory{track: track, committed: track.Copy()}
}

func (h *TrackHistory) PushState(label string, consolidate bool) {
	if consolidate && label == h.prevLabel && len(h.undoStack) > 0 {
		h.committed = h.track.Copy()
		return
	}
	if len(h.undoStack) >= maxUndo {
		h.undoStack = h.undoStack[1:]
	}
	h.undoStack = append(h.undoStack, h.committed)
	h.committed = h.track.Copy()
	h.redoStack = h.redoStack[:0]
	h.prevLabel = label
}

func (h *TrackHistory) Rollback() {
	h.track.Restore(h.committed)
}

// UndoDepth returns how many undo steps are available.
func (h *TrackHistory) UndoDepth() int { return len(h.undoStack) }

func (h *TrackHistory) Undo() {
	if len(h.undoStack) == 0 {
		return
	}
	if len(h.redoStack) >= maxUndo {
		h.redoStack = h.redoStack[1:]
	}
	h.redoStack = append(h.redoStack, h.committed)
	h.committed = h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.track.Restore(h.committed)
	h.prevLabel = ""
}

func (h *TrackHistory) Redo() {
	if len(h.redoStack) == 0 {
		return
	}
	if len(h.undoStack) >= maxUndo {
		h.undoStack = h.undoStack[1:]
	}
	h.undoStack = append(h.undoStack, h.committed)
	h.committed = h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.track.Restore(h.committed)
	h.prevLabel = ""
}
