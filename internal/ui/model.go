// Package ui renders the decorative eye, the status line and the
// conversation transcript in the terminal, and feeds confirm/cancel key
// presses back to the assistant.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxTranscript = 200
	shownLines    = 12
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	decide func(bool)

	status     string
	transcript []string
	speaking   bool
	listening  bool

	confirming bool
	prompt     string

	glow    int // 0..glowSteps-1, drives the eye pulse
	glowDir int

	width  int
	height int
}

const glowSteps = 8

func New(decide func(bool)) Model {
	if decide == nil {
		decide = func(bool) {}
	}
	return Model{
		decide:  decide,
		status:  "SYDNY",
		glow:    glowSteps / 2,
		glowDir: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "y", "enter":
			if m.confirming {
				m.decide(true)
			}
		case "n", "esc":
			if m.confirming {
				m.decide(false)
			}
		}

	case tickMsg:
		if m.speaking {
			m.glow += m.glowDir
			if m.glow >= glowSteps-1 {
				m.glowDir = -1
			} else if m.glow <= 1 {
				m.glowDir = 1
			}
		} else {
			m.glow = glowSteps / 2
		}
		return m, tick()

	case StatusMsg:
		m.status = string(msg)

	case TranscriptMsg:
		m.transcript = append(m.transcript, string(msg))
		if len(m.transcript) > maxTranscript {
			m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
		}

	case ListeningMsg:
		m.listening = bool(msg)
		if m.listening && !m.confirming {
			m.status = "LISTENING"
		}

	case SpeakingMsg:
		m.speaking = bool(msg)
		if m.speaking {
			m.status = "SPEAKING"
		} else if !m.confirming {
			m.status = "SYDNY"
		}

	case ShowConfirmMsg:
		m.confirming = true
		m.prompt = string(msg)
		m.status = string(msg)

	case HideConfirmMsg:
		m.confirming = false
		m.prompt = ""
		m.status = "SYDNY"

	case CloseMsg:
		return m, tea.Quit
	}

	return m, nil
}

// eyeShape is the ring; the core rows get recolored with the glow pulse.
var eyeShape = []string{
	"      .::::::.      ",
	"    .::::::::::.    ",
	"   ::::::::::::::   ",
	"  :::::::@@:::::::  ",
	"  ::::::@@@@::::::  ",
	"  :::::::@@:::::::  ",
	"   ::::::::::::::   ",
	"    '::::::::::'    ",
	"      '::::::'      ",
}

func (m Model) renderEye() string {
	glowColor := eyeDim
	switch {
	case m.glow >= glowSteps-2:
		glowColor = eyeBright
	case m.glow >= glowSteps/2:
		glowColor = eyeMid
	}

	iris := lipgloss.NewStyle().Foreground(glowColor)
	core := lipgloss.NewStyle().Foreground(eyeCore)
	ring := lipgloss.NewStyle().Foreground(ringGray)

	var b strings.Builder
	for i, row := range eyeShape {
		for _, r := range row {
			switch r {
			case '@':
				b.WriteString(core.Render(string(r)))
			case ':':
				b.WriteString(iris.Render(string(r)))
			default:
				b.WriteString(ring.Render(string(r)))
			}
		}
		if i < len(eyeShape)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderTranscript() string {
	lines := m.transcript
	if len(lines) > shownLines {
		lines = lines[len(lines)-shownLines:]
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = " "
	}
	return transcriptStyle.Render(body)
}

func (m Model) renderControls() string {
	if !m.confirming {
		return "q quit"
	}
	return promptStyle.Render(m.prompt) + "  " +
		confirmStyle.Render("[y] CONFIRM") + "  " +
		cancelStyle.Render("[n] CANCEL")
}

func (m Model) View() string {
	parts := []string{
		m.renderEye(),
		statusStyle.Render(m.status),
		m.renderTranscript(),
		m.renderControls(),
	}
	view := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}
