package ipc

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndReceive(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "ctl.sock")
	got := make(chan ControlMessage, 4)

	require.NoError(t, StartServer(sock, func(m ControlMessage) { got <- m }))

	require.NoError(t, Send(sock, ControlMessage{Cmd: "confirm"}))
	require.NoError(t, Send(sock, ControlMessage{Cmd: "say", Arg: "open notepad"}))

	recv := func() ControlMessage {
		select {
		case m := <-got:
			return m
		case <-time.After(5 * time.Second):
			t.Fatal("no message received")
			return ControlMessage{}
		}
	}

	assert.Equal(t, ControlMessage{Cmd: "confirm"}, recv())
	assert.Equal(t, ControlMessage{Cmd: "say", Arg: "open notepad"}, recv())
}

func TestSendWithoutServer(t *testing.T) {
	err := Send(filepath.Join(t.TempDir(), "missing.sock"), ControlMessage{Cmd: "exit"})
	assert.Error(t, err)
}
