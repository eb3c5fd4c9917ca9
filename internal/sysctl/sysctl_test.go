package sysctl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Announce-only mode must describe the action without touching the OS.
func TestAnnounceOnly(t *testing.T) {
	c := New(Config{AnnounceOnly: true, Home: t.TempDir()})
	ctx := context.Background()

	calls := []struct {
		name string
		call func() (string, error)
		want string
	}{
		{"volume", func() (string, error) { return c.SetVolume(ctx, 50) }, "Would set volume to 50 percent"},
		{"mute", func() (string, error) { return c.Mute(ctx) }, "Would mute audio"},
		{"unmute", func() (string, error) { return c.Unmute(ctx) }, "Would unmute audio"},
		{"shutdown", func() (string, error) { return c.Shutdown(ctx) }, "Would shut down the system"},
		{"restart", func() (string, error) { return c.Restart(ctx) }, "Would restart the system"},
		{"sleep", func() (string, error) { return c.Sleep(ctx) }, "Would put the system to sleep"},
		{"open app", func() (string, error) { return c.OpenApp(ctx, "notepad") }, "Would open notepad"},
		{"close app", func() (string, error) { return c.CloseApp(ctx, "notepad") }, "Would close notepad"},
		{"open file", func() (string, error) { return c.OpenFile(ctx, "/tmp/x.txt") }, "Would open x.txt"},
		{"delete file", func() (string, error) { return c.DeleteFile("/tmp/x.txt") }, "Would delete x.txt"},
		{"move file", func() (string, error) { return c.MoveFile("/tmp/x.txt", "/tmp/y") }, "Would move x.txt to /tmp/y"},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetVolumeRange(t *testing.T) {
	c := New(Config{AnnounceOnly: true})
	ctx := context.Background()

	_, err := c.SetVolume(ctx, -1)
	assert.Error(t, err)
	_, err = c.SetVolume(ctx, 101)
	assert.Error(t, err)
	_, err = c.SetVolume(ctx, 0)
	assert.NoError(t, err)
	_, err = c.SetVolume(ctx, 100)
	assert.NoError(t, err)
}

func TestUnknownApp(t *testing.T) {
	// unknown app names answer with an explanation even outside
	// announce-only mode
	c := New(Config{})
	ctx := context.Background()

	got, err := c.OpenApp(ctx, "photoshop")
	require.NoError(t, err)
	assert.Equal(t, "I don't know how to open photoshop yet", got)

	got, err = c.CloseApp(ctx, "photoshop")
	require.NoError(t, err)
	assert.Equal(t, "I don't know how to close photoshop yet", got)
}

func TestSearchFile(t *testing.T) {
	home := t.TempDir()
	docs := filepath.Join(home, "Documents")
	require.NoError(t, os.MkdirAll(docs, 0o755))

	write := func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	write(filepath.Join(docs, "report.txt"))
	write(filepath.Join(docs, "report-final.txt"))
	write(filepath.Join(home, "report.old"))
	write(filepath.Join(home, "notes.txt"))

	// a directory whose name matches must not count
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "report-drafts"), 0o755))

	c := New(Config{Home: home})

	matches := c.SearchFile("report")
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Contains(t, filepath.Base(m), "report")
	}
	// Documents is searched before the home directory itself
	assert.Equal(t, docs, filepath.Dir(matches[0]))

	assert.Empty(t, c.SearchFile("missing"))
	assert.Empty(t, c.SearchFile(""))
}

func TestSearchFileCap(t *testing.T) {
	home := t.TempDir()
	for _, name := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7"} {
		require.NoError(t, os.WriteFile(filepath.Join(home, name+".txt"), []byte("x"), 0o644))
	}

	c := New(Config{Home: home})
	assert.Len(t, c.SearchFile("n"), 5)
}

func TestDeleteAndMoveFile(t *testing.T) {
	c := New(Config{Home: t.TempDir()})
	dir := t.TempDir()

	path := filepath.Join(dir, "junk.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	got, err := c.DeleteFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Deleted junk.txt", got)
	assert.NoFileExists(t, path)

	_, err = c.DeleteFile(path)
	assert.Error(t, err)

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	_, err = c.MoveFile(src, dst)
	require.NoError(t, err)
	assert.FileExists(t, dst)
	assert.NoFileExists(t, src)
}
