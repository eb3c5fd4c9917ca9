// Package bus mirrors the assistant's UI events to a remote hub over a
// websocket, so an external surface can render status and transcript
// without running in-process.
package bus

import (
	"encoding/json"
	log "log/slog"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"sydny/internal/ui"
)

// Frame is the wire form of one UI event.
type Frame struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	On   bool   `json:"on,omitempty"`
}

type Bus struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func Dial(wsURL string) (*Bus, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}

	log.Info("Connected to event hub", "url", wsURL)
	return &Bus{conn: conn}, nil
}

// Emit forwards one UI event. Unknown message types are ignored; write
// failures are logged and dropped, the assistant does not depend on the
// mirror being healthy.
func (b *Bus) Emit(msg any) {
	frame, ok := frameFor(msg)
	if !ok {
		return
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Warn("Failed to mirror event", "kind", frame.Kind, "err", err)
	}
}

func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.Close()
}

func frameFor(msg any) (Frame, bool) {
	switch m := msg.(type) {
	case ui.StatusMsg:
		return Frame{Kind: "status", Text: string(m)}, true
	case ui.TranscriptMsg:
		return Frame{Kind: "transcript", Text: string(m)}, true
	case ui.ListeningMsg:
		return Frame{Kind: "listening", On: bool(m)}, true
	case ui.SpeakingMsg:
		return Frame{Kind: "speaking", On: bool(m)}, true
	case ui.ShowConfirmMsg:
		return Frame{Kind: "confirm_show", Text: string(m)}, true
	case ui.HideConfirmMsg:
		return Frame{Kind: "confirm_hide"}, true
	case ui.CloseMsg:
		return Frame{Kind: "close"}, true
	}
	return Frame{}, false
}
