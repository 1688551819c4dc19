package models

import (
	"bytes"
	"testing"
)

func TestProgressWriterCountsBytes(t *testing.T) {
	var buf bytes.Buffer
	pw := &progressWriter{writer: &buf, total: 100, label: "test.bin"}

	chunks := [][]byte{
		bytes.Repeat([]byte{0xAB}, 40),
		bytes.Repeat([]byte{0xCD}, 60),
	}
	for _, c := range chunks {
		n, err := pw.Write(c)
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != len(c) {
			t.Errorf("Write() = %d, want %d", n, len(c))
		}
	}

	if pw.written != 100 {
		t.Errorf("written = %d, want 100", pw.written)
	}
	if buf.Len() != 100 {
		t.Errorf("underlying writer received %d bytes, want 100", buf.Len())
	}
}

func TestProgressWriterUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	pw := &progressWriter{writer: &buf, total: -1, label: "test.bin"}

	if _, err := pw.Write([]byte("data")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if pw.written != 4 {
		t.Errorf("written = %d, want 4", pw.written)
	}
}
