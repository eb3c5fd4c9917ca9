package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestTranscriptAppends(t *testing.T) {
	m := New(nil)
	m = apply(t, m, TranscriptMsg("You: hello"))
	m = apply(t, m, TranscriptMsg("SYDNY: hi"))

	view := m.View()
	assert.Contains(t, view, "You: hello")
	assert.Contains(t, view, "SYDNY: hi")
}

func TestTranscriptCapped(t *testing.T) {
	m := New(nil)
	for i := 0; i < maxTranscript+50; i++ {
		m = apply(t, m, TranscriptMsg("line"))
	}
	assert.Len(t, m.transcript, maxTranscript)
}

func TestStatusTransitions(t *testing.T) {
	m := New(nil)
	assert.Contains(t, m.View(), "SYDNY")

	m = apply(t, m, ListeningMsg(true))
	assert.Contains(t, m.View(), "LISTENING")

	m = apply(t, m, SpeakingMsg(true))
	assert.Contains(t, m.View(), "SPEAKING")

	m = apply(t, m, SpeakingMsg(false))
	assert.Contains(t, m.View(), "SYDNY")
}

func TestConfirmControls(t *testing.T) {
	m := New(nil)
	assert.NotContains(t, m.View(), "CONFIRM")

	m = apply(t, m, ShowConfirmMsg("Are you sure you want to shut down?"))
	view := m.View()
	assert.Contains(t, view, "CONFIRM")
	assert.Contains(t, view, "CANCEL")
	assert.Contains(t, view, "Are you sure you want to shut down?")

	m = apply(t, m, HideConfirmMsg{})
	assert.NotContains(t, m.View(), "CONFIRM")
}

func TestConfirmKeysForwardDecision(t *testing.T) {
	var got []bool
	m := New(func(v bool) { got = append(got, v) })

	// keys outside a confirmation are ignored
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Empty(t, got)

	m = apply(t, m, ShowConfirmMsg("Sure?"))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, []bool{true, false}, got)
}

func TestCloseQuits(t *testing.T) {
	m := New(nil)
	_, cmd := m.Update(CloseMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestGlowPulsesOnlyWhileSpeaking(t *testing.T) {
	m := New(nil)
	base := m.glow

	m = apply(t, m, tickMsg{})
	assert.Equal(t, base, m.glow)

	m = apply(t, m, SpeakingMsg(true))
	m = apply(t, m, tickMsg{})
	assert.NotEqual(t, base, m.glow)
}

func TestViewContainsEye(t *testing.T) {
	m := New(nil)
	assert.True(t, strings.Contains(m.View(), "@"))
}
