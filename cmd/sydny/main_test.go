package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sydny/internal/audio"
)

type stubReader struct{}

func (stubReader) ReadChunk() ([]float32, error) {
	time.Sleep(time.Millisecond)
	return make([]float32, audio.ChunkSize), nil
}

type stubEngine struct {
	phrases []string
}

func (e *stubEngine) Accept([]float32) (string, bool) {
	if len(e.phrases) == 0 {
		return "", false
	}
	p := e.phrases[0]
	e.phrases = e.phrases[1:]
	return p, true
}

func (*stubEngine) Close() error { return nil }

func TestCaptureLoopForwardsPhrases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan string, 1)
	go captureLoop(ctx, stubReader{}, &stubEngine{phrases: []string{"open notepad"}}, "", out)

	select {
	case text := <-out:
		assert.Equal(t, "open notepad", text)
	case <-time.After(2 * time.Second):
		t.Fatal("no phrase forwarded")
	}
}

// Teardown relies on the capture goroutine leaving ReadChunk on its own
// after cancellation, so the recorder is only closed once nobody reads it.
func TestCaptureLoopReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		captureLoop(ctx, stubReader{}, &stubEngine{}, "", make(chan string))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("capture loop kept running after cancellation")
	}
}

func TestFirstOf(t *testing.T) {
	assert.Equal(t, "a", firstOf("a", "b", "c"))
	assert.Equal(t, "b", firstOf("", "b", "c"))
	assert.Equal(t, "", firstOf("", "", ""))
}
