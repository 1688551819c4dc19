// Package focus captures the identity of the foreground window when a
// recording starts and decides how to deliver text once transcription
// finishes, possibly seconds later, when the user may have moved on.
package focus

// Snapshot identifies the window/application that should receive the
// transcribed text. Immutable once captured; empty fields mean the query
// failed at capture time.
type Snapshot struct {
	PID    int32
	Window int
	Title  string
}

// Valid reports whether the snapshot identifies a process at all.
func (s Snapshot) Valid() bool {
	return s.PID != 0
}

// Change classifies how the live focus relates to a snapshot.
type Change int

const (
	// Same means the snapshot's window is still focused.
	Same Change = iota
	// DifferentWindowSameApp means the app is frontmost but a different
	// window or field has focus. Pasting blind risks the wrong control.
	DifferentWindowSameApp
	// DifferentApp means another application took focus. The snapshot's
	// app can be re-activated and still expects the text.
	DifferentApp
	// Unknown means either side of the comparison could not be read.
	Unknown
)

// String returns the change name for logs.
func (c Change) String() string {
	switch c {
	case Same:
		return "same"
	case DifferentWindowSameApp:
		return "different-window-same-app"
	case DifferentApp:
		return "different-app"
	default:
		return "unknown"
	}
}

// Compare classifies live against the snapshot taken at recording start.
// A failed query on either side yields Unknown, which delivery treats
// conservatively (clipboard only, no paste).
func Compare(snap, live Snapshot) Change {
	if !snap.Valid() || !live.Valid() {
		return Unknown
	}
	if snap.PID != live.PID {
		return DifferentApp
	}
	if snap.Window != live.Window {
		return DifferentWindowSameApp
	}
	return Same
}

// Tracker reads and manipulates the system focus state.
type Tracker interface {
	// Capture returns a best-effort snapshot of the current focus.
	// Fields are zero when the query fails; it never returns an error.
	Capture() Snapshot
	// Restore activates the snapshot's application, best effort.
	Restore(Snapshot)
}
