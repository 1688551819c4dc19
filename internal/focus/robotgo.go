package focus

import "github.com/go-vgo/robotgo"

// SystemTracker queries and restores the foreground window via robotgo.
type SystemTracker struct{}

// NewSystemTracker returns the robotgo-backed Tracker.
func NewSystemTracker() *SystemTracker {
	return &SystemTracker{}
}

// Capture reads the frontmost process, window handle and title.
// Failures leave the corresponding fields zero.
func (t *SystemTracker) Capture() Snapshot {
	return Snapshot{
		PID:    robotgo.GetPid(),
		Window: robotgo.GetHandle(),
		Title:  robotgo.GetTitle(),
	}
}

// Restore brings the snapshot's application back to the foreground.
// Errors are swallowed: restoration is strictly best effort.
func (t *SystemTracker) Restore(s Snapshot) {
	if !s.Valid() {
		return
	}
	_ = robotgo.ActivePid(s.PID)
}
