package ui

import (
	"io"
	"testing"
	"time"
)

func TestAudioRingBuffer_WrapAround(t *testing.T) {
	rb := NewAudioRingBuffer(8)
	rb.Write([]byte{1, 2, 3, 4, 5, 6})

	p := make([]byte, 4)
	if n, _ := rb.Read(p); n != 4 {
		t.Fatalf("read %d bytes, want 4", n)
	}
	rb.Write([]byte{7, 8, 9, 10})

	p = make([]byte, 16)
	n, err := rb.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []byte{5, 6, 7, 8, 9, 10}
	if string(p[:n]) != string(want) {
		t.Errorf("got %v, want %v", p[:n], want)
	}
}

func TestAudioRingBuffer_OverflowDropsOldest(t *testing.T) {
	rb := NewAudioRingBuffer(4)
	rb.Write([]byte{1, 2, 3})
	rb.Write([]byte{4, 5, 6})

	if rb.Buffered() != 4 {
		t.Fatalf("buffered %d, want 4", rb.Buffered())
	}
	p := make([]byte, 4)
	n, _ := rb.Read(p)
	if string(p[:n]) != string([]byte{3, 4, 5, 6}) {
		t.Errorf("got %v, want [3 4 5 6]", p[:n])
	}

	rb.Write([]byte{1, 2, 3, 4, 5, 6, 7})
	n, _ = rb.Read(p)
	if string(p[:n]) != string([]byte{4, 5, 6, 7}) {
		t.Errorf("oversized write: got %v, want [4 5 6 7]", p[:n])
	}
}

func TestAudioRingBuffer_CloseUnblocksReader(t *testing.T) {
	rb := NewAudioRingBuffer(4)
	done := make(chan error, 1)
	go func() {
		_, err := rb.Read(make([]byte, 2))
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	rb.Close()

	select {
	case err := <-done:
		if err != io.EOF {
			t.Errorf("got %v, want io.EOF", err)
		}
	case <-time.After(time.Second):
		t.Fatal("reader still blocked after Close")
	}

	rb.Write([]byte{1})
	if rb.Buffered() != 0 {
		t.Error("write after Close was buffered")
	}
}

func TestAudioRingBuffer_Clear(t *testing.T) {
	rb := NewAudioRingBuffer(4)
	rb.Write([]byte{1, 2})
	rb.Clear()
	if rb.Buffered() != 0 {
		t.Errorf("buffered %d after Clear", rb.Buffered())
	}
}

func TestAppendSamples(t *testing.T) {
	got := appendSamples(nil, []int16{0x0102, -1})
	want := []byte{0x02, 0x01, 0xFF, 0xFF}
	if string(got) != string(want) {
		t.Errorf("got % X, want % X", got, want)
	}
}
