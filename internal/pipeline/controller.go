package pipeline

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/soliblue/dictate/internal/audio"
	"github.com/soliblue/dictate/internal/focus"
	"github.com/soliblue/dictate/internal/transcribe"
	"github.com/soliblue/dictate/internal/transcript"
)

// Deliverer sends final text to the user. Copy places it on the
// clipboard only; Deliver also pastes or types it into the focused
// control. Satisfied by inject.Injector.
type Deliverer interface {
	Copy(text string) error
	Deliver(text string) error
}

// Persister stores finished transcripts. Satisfied by store.Store.
type Persister interface {
	Save(text string) (int64, error)
}

// Options configures a Controller.
type Options struct {
	Transcriber transcribe.Transcriber
	Tracker     focus.Tracker
	Deliverer   Deliverer
	Store       Persister // optional; nil disables persistence

	SampleRate     float64 // capture rate of incoming samples
	ChunkSeconds   float64 // period and size of live chunks
	OverlapSeconds float64 // audio re-included at each chunk edge
	MinSeconds     float64 // recordings shorter than this are dropped

	// TickInterval overrides the chunk scheduling period. Zero means
	// ChunkSeconds, which is what production uses.
	TickInterval time.Duration

	// RestoreDelay is how long to wait after re-activating an
	// application before pasting into it. Zero means 100ms.
	RestoreDelay time.Duration

	Events Events
}

// Controller owns recording state and orchestrates the pipeline:
// hotkey edges start and stop sessions, the scheduler produces live
// text while the key is held, and stopped recordings become queue jobs
// that are transcribed, merged and delivered strictly in order.
type Controller struct {
	opts  Options
	buf   *audio.SampleBuffer
	sched *Scheduler
	queue *Queue
	ev    Events

	mu        sync.Mutex
	session   uint64
	recording bool
	snap      focus.Snapshot
	startedAt time.Time
	stopTick  chan struct{}
}

// NewController wires up a pipeline. Call Close to drain the queue on
// shutdown.
func NewController(opts Options) *Controller {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Duration(opts.ChunkSeconds * float64(time.Second))
	}
	if opts.RestoreDelay <= 0 {
		opts.RestoreDelay = 100 * time.Millisecond
	}

	c := &Controller{
		opts: opts,
		buf:  audio.NewSampleBuffer(opts.SampleRate),
		ev:   opts.Events,
	}
	c.sched = NewScheduler(opts.Transcriber, opts.ChunkSeconds, opts.OverlapSeconds, c.ev.liveText)
	c.queue = NewQueue(c.processJob, c.ev.queueDepth)
	return c
}

// AppendSamples feeds captured audio into the active session. Samples
// arriving while no recording is active are dropped. Safe to call from
// the capture callback.
func (c *Controller) AppendSamples(samples []float32) {
	c.mu.Lock()
	recording := c.recording
	c.mu.Unlock()
	if recording {
		c.buf.Append(samples)
	}
}

// IsRecording reports whether a session is active.
func (c *Controller) IsRecording() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recording
}

// StartRecording begins a new session: bumps the session id (stale
// chunk results of the previous session are discarded from here on),
// resets the buffer, snapshots the focused window, and starts the
// chunk ticker. A start while already recording is a no-op.
func (c *Controller) StartRecording() {
	c.mu.Lock()
	if c.recording {
		c.mu.Unlock()
		return
	}
	c.session++
	c.recording = true
	c.startedAt = time.Now()
	c.snap = c.opts.Tracker.Capture()
	c.buf.Reset()
	session := c.session
	stop := make(chan struct{})
	c.stopTick = stop
	c.mu.Unlock()

	c.sched.Begin(session, c.buf)

	go func() {
		ticker := time.NewTicker(c.opts.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sched.Tick()
			case <-stop:
				return
			}
		}
	}()
}

// StopRecording ends the active session and enqueues a job with the
// untranscribed tail, the accumulated live text and the focus snapshot.
// Empty recordings are dropped silently; recordings shorter than the
// minimum produce a TooShort event and no job.
func (c *Controller) StopRecording() {
	c.mu.Lock()
	if !c.recording {
		c.mu.Unlock()
		return
	}
	c.recording = false
	close(c.stopTick)
	c.stopTick = nil
	session := c.session
	snap := c.snap
	c.mu.Unlock()

	tailStart, accumulated := c.sched.End()

	total := c.buf.Len()
	if total == 0 {
		return
	}

	duration := time.Duration(float64(total) / c.opts.SampleRate * float64(time.Second))
	if duration.Seconds() < c.opts.MinSeconds {
		c.ev.tooShort(duration)
		return
	}

	c.queue.Enqueue(Job{
		Session:     session,
		Samples:     c.buf.Range(tailStart, total),
		Rate:        c.opts.SampleRate,
		Accumulated: accumulated,
		Focus:       snap,
	})
}

// Close stops any active recording's ticker and drains the queue.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.stopTick != nil {
		close(c.stopTick)
		c.stopTick = nil
	}
	c.recording = false
	c.mu.Unlock()
	c.queue.Close()
}

// processJob is the queue worker: final transcription, merge, persist,
// focus policy, delivery. Runs for one job at a time.
func (c *Controller) processJob(job Job) {
	text := job.Accumulated
	if len(job.Samples) > 0 {
		tail, err := c.opts.Transcriber.Transcribe(audio.Resample(job.Samples, job.Rate))
		if err != nil {
			c.ev.failed(err)
			return
		}
		text = transcript.Merge(job.Accumulated, tail)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.ev.noSpeech()
		return
	}

	if c.opts.Store != nil {
		if _, err := c.opts.Store.Save(text); err != nil {
			// Persistence is best-effort; the text still gets delivered.
			log.Printf("WARN: saving transcript: %v", err)
		}
	}

	if err := c.deliver(job.Focus, text); err != nil {
		c.ev.failed(err)
		return
	}
	c.ev.delivered(text)
}

// deliver applies the focus policy. Pasting is only safe when we know
// where the text will land: into the same window, or into the saved
// app after re-activating it. A different window of the same app, or
// an unreadable focus state, gets clipboard-only.
func (c *Controller) deliver(snap focus.Snapshot, text string) error {
	switch focus.Compare(snap, c.opts.Tracker.Capture()) {
	case focus.Same:
		return c.opts.Deliverer.Deliver(text)
	case focus.DifferentApp:
		c.opts.Tracker.Restore(snap)
		// Give the window server time to raise the app.
		time.Sleep(c.opts.RestoreDelay)
		return c.opts.Deliverer.Deliver(text)
	default: // DifferentWindowSameApp, Unknown
		return c.opts.Deliverer.Copy(text)
	}
}
