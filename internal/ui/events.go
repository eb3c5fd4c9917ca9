package ui

// The assistant talks to the rendering side through this closed set of
// events. They double as bubbletea messages, so the TUI consumes them
// directly via Program.Send; the websocket bus serializes the same set.

// StatusMsg replaces the status line under the eye.
type StatusMsg string

// TranscriptMsg appends one line to the conversation pane.
type TranscriptMsg string

// ListeningMsg toggles the listening indicator.
type ListeningMsg bool

// SpeakingMsg toggles the speaking indicator and drives the eye glow.
type SpeakingMsg bool

// ShowConfirmMsg displays the confirm/cancel controls with a prompt.
type ShowConfirmMsg string

// HideConfirmMsg removes the confirm/cancel controls.
type HideConfirmMsg struct{}

// CloseMsg asks the rendering surface to shut down.
type CloseMsg struct{}
