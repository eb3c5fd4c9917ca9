package sysctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Spoken app names mapped to executables. Unsupported names are answered
// with an explanation rather than an error.
var appRegistry = map[string]string{
	"notepad":      "gedit",
	"editor":       "gedit",
	"browser":      "firefox",
	"firefox":      "firefox",
	"terminal":     "x-terminal-emulator",
	"files":        "nautilus",
	"file manager": "nautilus",
	"calculator":   "gnome-calculator",
}

func lookupApp(name string) (string, bool) {
	exe, ok := appRegistry[strings.ToLower(strings.TrimSpace(name))]
	return exe, ok
}

func (c *Controller) OpenApp(ctx context.Context, name string) (string, error) {
	exe, ok := lookupApp(name)
	if !ok {
		return fmt.Sprintf("I don't know how to open %s yet", name), nil
	}
	if c.announceOnly {
		return fmt.Sprintf("Would open %s", name), nil
	}

	cmd := exec.CommandContext(ctx, exe)
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start %s: %w", exe, err)
	}
	// The app outlives the assistant; reap it in the background.
	go cmd.Wait()

	return fmt.Sprintf("Opening %s", name), nil
}

func (c *Controller) CloseApp(ctx context.Context, name string) (string, error) {
	exe, ok := lookupApp(name)
	if !ok {
		return fmt.Sprintf("I don't know how to close %s yet", name), nil
	}
	if c.announceOnly {
		return fmt.Sprintf("Would close %s", name), nil
	}

	err := exec.CommandContext(ctx, "pkill", "-x", exe).Run()
	if err != nil {
		var exitErr *exec.ExitError
		// pkill exits 1 when no process matched
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return fmt.Sprintf("%s is not running", name), nil
		}
		return "", fmt.Errorf("pkill %s: %w", exe, err)
	}
	return fmt.Sprintf("Closed %s", name), nil
}
