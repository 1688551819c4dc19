package transcribe

import (
	"errors"
	"testing"
)

func TestMockPlaysScriptInOrder(t *testing.T) {
	boom := errors.New("boom")
	m := NewMock(
		MockResult{Text: "first"},
		MockResult{Err: boom},
		MockResult{Text: "last"},
	)

	if text, err := m.Transcribe(nil); err != nil || text != "first" {
		t.Errorf("call 1 = (%q, %v), want (first, nil)", text, err)
	}
	if _, err := m.Transcribe(nil); !errors.Is(err, boom) {
		t.Errorf("call 2 error = %v, want boom", err)
	}
	if text, _ := m.Transcribe(nil); text != "last" {
		t.Errorf("call 3 = %q, want last", text)
	}

	// Past the end of the script the last result repeats.
	if text, _ := m.Transcribe(nil); text != "last" {
		t.Errorf("call 4 = %q, want last", text)
	}

	if m.CallCount() != 4 {
		t.Errorf("CallCount() = %d, want 4", m.CallCount())
	}
}

func TestMockRecordsSamples(t *testing.T) {
	m := NewMock(MockResult{Text: "ok"})

	in := []float32{1, 2, 3}
	if _, err := m.Transcribe(in); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	calls := m.Calls()
	if len(calls) != 1 || len(calls[0]) != 3 {
		t.Fatalf("Calls() = %v, want one call with 3 samples", calls)
	}

	// The recorded slice must be a copy.
	in[0] = 99
	if calls[0][0] != 1 {
		t.Error("Mock should copy the samples it records")
	}
}
