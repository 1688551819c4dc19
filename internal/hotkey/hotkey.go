// Package hotkey provides a global push-to-talk hotkey using gohook.
// "hold" mode maps key-down to start and key-up to stop; "toggle" mode
// starts on one press and stops on the next.
package hotkey

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// EventType indicates whether recording should start or stop.
type EventType int

const (
	// EventStart signals that the hotkey was activated.
	EventStart EventType = iota
	// EventStop signals that the hotkey was deactivated.
	EventStop
)

// Event is emitted on the channel returned by Events.
type Event struct {
	Type EventType
}

// Listener manages a global hotkey and emits start/stop events.
type Listener struct {
	keys []string
	mode string // "hold" or "toggle"
	ch   chan Event
	done chan struct{}
	once sync.Once

	mu   sync.Mutex
	held bool // suppresses OS key auto-repeat in hold mode
}

// NewListener creates a Listener for the given key combo and mode.
// keys are lowercase key names (e.g. ["ctrl", "shift", "r"]).
func NewListener(keys []string, mode string) *Listener {
	return &Listener{
		keys: keys,
		mode: mode,
		ch:   make(chan Event, 16),
		done: make(chan struct{}),
	}
}

// Events returns the channel that receives hotkey events.
// The channel is closed when the listener shuts down.
func (l *Listener) Events() <-chan Event {
	return l.ch
}

// Start begins listening for the global hotkey. It blocks until Stop is
// called; run it in a goroutine.
func (l *Listener) Start() {
	switch l.mode {
	case "toggle":
		l.registerToggle()
	default: // "hold"
		l.registerHold()
	}

	evChan := hook.Start()
	go func() {
		<-l.done
		hook.End()
	}()
	<-hook.Process(evChan)
	close(l.ch)
}

// registerHold wires push-to-talk: key-down starts, key-up stops.
// Holding a key makes the OS re-emit key-down events; only the first
// one before a key-up may start a recording.
func (l *Listener) registerHold() {
	hook.Register(hook.KeyDown, l.keys, func(e hook.Event) {
		l.mu.Lock()
		repeat := l.held
		l.held = true
		l.mu.Unlock()
		if repeat {
			return
		}
		l.emit(EventStart)
	})

	hook.Register(hook.KeyUp, l.keys, func(e hook.Event) {
		l.mu.Lock()
		wasHeld := l.held
		l.held = false
		l.mu.Unlock()
		if !wasHeld {
			return
		}
		l.emit(EventStop)
	})
}

// registerToggle wires press-on/press-off.
func (l *Listener) registerToggle() {
	recording := false

	hook.Register(hook.KeyDown, l.keys, func(e hook.Event) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if recording {
			l.emit(EventStop)
		} else {
			l.emit(EventStart)
		}
		recording = !recording
	})
}

// emit sends without blocking; a full channel drops the event rather
// than stalling the hook thread.
func (l *Listener) emit(t EventType) {
	select {
	case l.ch <- Event{Type: t}:
	default:
	}
}

// Stop terminates the hotkey listener. Safe to call multiple times.
func (l *Listener) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}
