package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/soliblue/dictate/internal/focus"
)

// Job is one stopped recording awaiting final transcription and
// delivery: the untranscribed audio tail, the live text accumulated
// while recording, and the focus target captured at recording start.
// A Job is owned exclusively by the queue from Enqueue until its
// processing returns.
type Job struct {
	Session     uint64
	Samples     []float32
	Rate        float64
	Accumulated string
	Focus       focus.Snapshot
}

// Queue processes Jobs strictly in submission order with at most one in
// flight. The user can start a new recording immediately after stopping
// one; a fast job never overtakes a slow one stopped earlier.
type Queue struct {
	jobs    chan Job
	depth   atomic.Int32
	process func(Job)
	onDepth func(int)

	wg   sync.WaitGroup
	once sync.Once
}

// NewQueue starts the queue's single worker. process handles one job to
// completion (success or failure); onDepth may be nil.
func NewQueue(process func(Job), onDepth func(int)) *Queue {
	q := &Queue{
		jobs:    make(chan Job, 64),
		process: process,
		onDepth: onDepth,
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// Enqueue appends a job. Must not be called after Close.
func (q *Queue) Enqueue(job Job) {
	q.notify(int(q.depth.Add(1)))
	q.jobs <- job
}

// Depth returns the number of queued plus in-flight jobs.
func (q *Queue) Depth() int {
	return int(q.depth.Load())
}

// Close stops accepting jobs and waits for the worker to drain the
// ones already enqueued.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.jobs)
	})
	q.wg.Wait()
}

func (q *Queue) run() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.process(job)
		q.notify(int(q.depth.Add(-1)))
	}
}

func (q *Queue) notify(n int) {
	if q.onDepth != nil {
		q.onDepth(n)
	}
}
