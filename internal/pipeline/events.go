package pipeline

import "time"

// Events is the callback surface the pipeline emits to. All fields are
// optional; callbacks may be invoked from pipeline goroutines and must
// not block for long.
type Events struct {
	// LiveText fires after each successful chunk merge with the full
	// accumulated text so far.
	LiveText func(text string)
	// QueueDepth fires whenever the number of queued or in-flight
	// jobs changes.
	QueueDepth func(n int)
	// Delivered fires after a job's final text reached the user
	// (pasted, or clipboard-only when the focus policy forbade pasting).
	Delivered func(text string)
	// NoSpeech fires when a job produced no text.
	NoSpeech func()
	// TooShort fires when a recording is below the minimum duration
	// and is discarded without transcription.
	TooShort func(d time.Duration)
	// Failed fires when a job's final transcription or delivery fails.
	// The job is dropped; the queue moves on.
	Failed func(err error)
}

func (e Events) liveText(text string) {
	if e.LiveText != nil {
		e.LiveText(text)
	}
}

func (e Events) queueDepth(n int) {
	if e.QueueDepth != nil {
		e.QueueDepth(n)
	}
}

func (e Events) delivered(text string) {
	if e.Delivered != nil {
		e.Delivered(text)
	}
}

func (e Events) noSpeech() {
	if e.NoSpeech != nil {
		e.NoSpeech()
	}
}

func (e Events) tooShort(d time.Duration) {
	if e.TooShort != nil {
		e.TooShort(d)
	}
}

func (e Events) failed(err error) {
	if e.Failed != nil {
		e.Failed(err)
	}
}
