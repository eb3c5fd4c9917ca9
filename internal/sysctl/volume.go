package sysctl

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

const defaultSink = "@DEFAULT_SINK@"

// SetVolume sets the default sink volume to a 0-100 percentage.
func (c *Controller) SetVolume(ctx context.Context, level int) (string, error) {
	if level < 0 || level > 100 {
		return "", fmt.Errorf("volume %d out of range 0-100", level)
	}
	if c.announceOnly {
		return fmt.Sprintf("Would set volume to %d percent", level), nil
	}

	arg := strconv.Itoa(level) + "%"
	cmd := exec.CommandContext(ctx, "pactl", "set-sink-volume", defaultSink, arg)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pactl set-sink-volume: %w", err)
	}
	return fmt.Sprintf("Volume set to %d percent", level), nil
}

func (c *Controller) Mute(ctx context.Context) (string, error) {
	if c.announceOnly {
		return "Would mute audio", nil
	}
	if err := exec.CommandContext(ctx, "pactl", "set-sink-mute", defaultSink, "1").Run(); err != nil {
		return "", fmt.Errorf("pactl set-sink-mute: %w", err)
	}
	return "Audio muted", nil
}

func (c *Controller) Unmute(ctx context.Context) (string, error) {
	if c.announceOnly {
		return "Would unmute audio", nil
	}
	if err := exec.CommandContext(ctx, "pactl", "set-sink-mute", defaultSink, "0").Run(); err != nil {
		return "", fmt.Errorf("pactl set-sink-mute: %w", err)
	}
	return "Audio unmuted", nil
}
