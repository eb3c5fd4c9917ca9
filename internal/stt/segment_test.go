package stt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loudChunk(n int) []float32 {
	c := make([]float32, n)
	for i := range c {
		if i%2 == 0 {
			c[i] = 0.5
		} else {
			c[i] = -0.5
		}
	}
	return c
}

func quietChunk(n int) []float32 {
	return make([]float32, n)
}

func TestSegmenterSilenceOnlyNeverCompletes(t *testing.T) {
	seg := NewSegmenter(20)
	for i := 0; i < 200; i++ {
		_, done := seg.Feed(quietChunk(320))
		assert.False(t, done)
	}
}

func TestSegmenterCutsPhraseAfterTrailingSilence(t *testing.T) {
	seg := NewSegmenter(20)

	for i := 0; i < 10; i++ {
		_, done := seg.Feed(loudChunk(320))
		require.False(t, done)
	}

	// 600 ms of silence at 20 ms per chunk = 30 chunks
	var phrase []float32
	var done bool
	for i := 0; i < 30; i++ {
		require.False(t, done, "phrase completed early at silent chunk %d", i)
		phrase, done = seg.Feed(quietChunk(320))
	}
	require.True(t, done)

	// speech plus the trailing silence ends up in the buffer
	assert.Equal(t, 40*320, len(phrase))
}

func TestSegmenterResetsBetweenPhrases(t *testing.T) {
	seg := NewSegmenter(20)

	speakPhrase := func() []float32 {
		for i := 0; i < 5; i++ {
			seg.Feed(loudChunk(320))
		}
		for {
			if phrase, done := seg.Feed(quietChunk(320)); done {
				return phrase
			}
		}
	}

	first := speakPhrase()
	second := speakPhrase()
	assert.Equal(t, len(first), len(second))
}

func TestSegmenterLengthCap(t *testing.T) {
	seg := NewSegmenter(20)

	// continuous speech must be cut at the 10 s cap
	var done bool
	var phrase []float32
	for i := 0; i < 1000 && !done; i++ {
		phrase, done = seg.Feed(loudChunk(320))
	}
	require.True(t, done)
	assert.LessOrEqual(t, len(phrase), 10*sampleRate+320)
}

func TestFrameRMS(t *testing.T) {
	assert.Zero(t, frameRMS(nil))
	assert.Zero(t, frameRMS(quietChunk(320)))
	assert.InDelta(t, 0.5, frameRMS(loudChunk(320)), 1e-6)
}
