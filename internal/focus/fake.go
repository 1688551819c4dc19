package focus

import "sync"

// FakeTracker is an in-memory Tracker for tests. Set Live to control
// what Capture returns; Restored records restore calls.
type FakeTracker struct {
	mu       sync.Mutex
	Live     Snapshot
	Restored []Snapshot
}

// Capture returns the configured live snapshot.
func (f *FakeTracker) Capture() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Live
}

// Restore records the snapshot and makes it the live focus.
func (f *FakeTracker) Restore(s Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Restored = append(f.Restored, s)
	f.Live = s
}

// SetLive updates the snapshot Capture will return.
func (f *FakeTracker) SetLive(s Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Live = s
}

// RestoreCount returns how many times Restore was called.
func (f *FakeTracker) RestoreCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Restored)
}
