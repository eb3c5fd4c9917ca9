package stt

import (
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// Whisper is the production Engine: RMS endpointing in front of a
// whisper.cpp model. A missing model file is a setup fault.
type Whisper struct {
	model whisper.Model
	seg   *Segmenter
	lang  string
}

func NewWhisper(modelPath, language string) (*Whisper, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model: %w", err)
	}
	if language == "" {
		language = "en"
	}
	return &Whisper{
		model: model,
		seg:   NewSegmenter(20),
		lang:  language,
	}, nil
}

func (w *Whisper) Accept(chunk []float32) (string, bool) {
	pcm, done := w.seg.Feed(chunk)
	if !done {
		return "", false
	}

	text, err := w.transcribe(pcm)
	if err != nil {
		// a bad phrase never kills the loop
		log.Error("Failed to transcribe phrase", "samples", len(pcm), "err", err)
		return "", true
	}
	return strings.TrimSpace(text), true
}

func (w *Whisper) transcribe(pcm []float32) (string, error) {
	wctx, err := w.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("new context: %w", err)
	}
	if err := wctx.SetLanguage(w.lang); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(runtime.NumCPU()))

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process: %w", err)
	}

	var text string
	for {
		s, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("next segment: %w", err)
		}
		if text == "" {
			text = s.Text
		} else {
			text += " " + s.Text
		}
	}
	return text, nil
}

func (w *Whisper) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}
