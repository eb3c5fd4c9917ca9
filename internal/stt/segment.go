package stt

import "math"

const (
	sampleRate = 16000

	// Endpointing: speech starts above this RMS, 600 ms below it ends the
	// phrase, and no phrase runs longer than 10 s.
	silenceThreshRMS = 0.015
	silenceMs        = 600
	maxPhraseSeconds = 10
)

// Segmenter assembles capture chunks into phrases using RMS endpointing.
// It buffers once speech is heard and cuts the phrase after a run of
// silent chunks or at the length cap.
type Segmenter struct {
	speaking  bool
	silent    int // consecutive silent chunks while speaking
	chunkMs   int
	silenceAt int // silent chunks that end a phrase
	max       int // sample cap per phrase
	buf       []float32
}

// NewSegmenter takes the chunk duration in milliseconds (20 for the
// default recorder chunk).
func NewSegmenter(chunkMs int) *Segmenter {
	if chunkMs <= 0 {
		chunkMs = 20
	}
	return &Segmenter{
		chunkMs:   chunkMs,
		silenceAt: silenceMs / chunkMs,
		max:       maxPhraseSeconds * sampleRate,
	}
}

// Feed consumes one chunk. When a phrase completes it returns the buffered
// samples and true, and resets for the next phrase.
func (s *Segmenter) Feed(chunk []float32) ([]float32, bool) {
	rms := frameRMS(chunk)

	if rms > silenceThreshRMS {
		s.speaking = true
		s.silent = 0
		s.buf = append(s.buf, chunk...)
	} else if s.speaking {
		s.silent++
		s.buf = append(s.buf, chunk...)
		if s.silent >= s.silenceAt {
			return s.flush(), true
		}
	}

	if s.speaking && len(s.buf) >= s.max {
		return s.flush(), true
	}
	return nil, false
}

func (s *Segmenter) flush() []float32 {
	out := s.buf
	s.buf = nil
	s.speaking = false
	s.silent = 0
	return out
}

func frameRMS(f []float32) float64 {
	if len(f) == 0 {
		return 0
	}
	var sum float64
	for _, x := range f {
		sum += float64(x * x)
	}
	return math.Sqrt(sum / float64(len(f)))
}
