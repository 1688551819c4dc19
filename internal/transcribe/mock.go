package transcribe

import (
	"sync"
	"time"
)

// Mock is a scripted Transcriber for tests. Each call pops the next
// Result; when the script runs out, calls return the last result.
// An optional per-result Delay simulates model latency.
type Mock struct {
	mu      sync.Mutex
	script  []MockResult
	calls   [][]float32
	nextIdx int
}

// MockResult is one scripted transcription outcome.
type MockResult struct {
	Text  string
	Err   error
	Delay time.Duration
}

// NewMock creates a Mock that plays back the given results in order.
func NewMock(script ...MockResult) *Mock {
	return &Mock{script: script}
}

// Transcribe records the call and returns the next scripted result.
func (m *Mock) Transcribe(samples []float32) (string, error) {
	m.mu.Lock()
	cp := make([]float32, len(samples))
	copy(cp, samples)
	m.calls = append(m.calls, cp)

	var res MockResult
	if len(m.script) > 0 {
		idx := m.nextIdx
		if idx >= len(m.script) {
			idx = len(m.script) - 1
		}
		res = m.script[idx]
		m.nextIdx++
	}
	m.mu.Unlock()

	if res.Delay > 0 {
		time.Sleep(res.Delay)
	}
	return res.Text, res.Err
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }

// Calls returns the sample slices passed to Transcribe so far.
func (m *Mock) Calls() [][]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]float32, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Transcribe was invoked.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
