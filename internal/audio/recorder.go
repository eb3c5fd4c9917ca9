// Package audio owns microphone capture: a mono 16 kHz portaudio stream
// read in fixed 20 ms chunks. The reads block on hardware I/O; phrase
// segmentation happens downstream in the recognizer.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 16000
	// ChunkSize is 20 ms of audio at SampleRate.
	ChunkSize = 320
)

type Recorder struct {
	stream *portaudio.Stream
	buf    []float32
}

func NewRecorder() *Recorder {
	return &Recorder{buf: make([]float32, ChunkSize)}
}

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

// Open acquires the default input device. Failing here is a setup fault;
// the caller aborts startup.
func (r *Recorder) Open() error {
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(SampleRate), len(r.buf), r.buf)
	if err != nil {
		return fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start input stream: %w", err)
	}
	r.stream = stream
	return nil
}

// ReadChunk blocks until one chunk of samples is available. The returned
// slice is only valid until the next call.
func (r *Recorder) ReadChunk() ([]float32, error) {
	if err := r.stream.Read(); err != nil {
		return nil, fmt.Errorf("read input stream: %w", err)
	}
	return r.buf, nil
}

func (r *Recorder) Close() {
	if r.stream != nil {
		r.stream.Stop()
		r.stream.Close()
		r.stream = nil
	}
	portaudio.Terminate()
}
