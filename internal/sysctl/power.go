package sysctl

import (
	"context"
	"fmt"
	"os/exec"
)

func (c *Controller) Shutdown(ctx context.Context) (string, error) {
	if c.announceOnly {
		return "Would shut down the system", nil
	}
	if err := exec.CommandContext(ctx, "systemctl", "poweroff").Run(); err != nil {
		return "", fmt.Errorf("systemctl poweroff: %w", err)
	}
	return "Shutting down the system", nil
}

func (c *Controller) Restart(ctx context.Context) (string, error) {
	if c.announceOnly {
		return "Would restart the system", nil
	}
	if err := exec.CommandContext(ctx, "systemctl", "reboot").Run(); err != nil {
		return "", fmt.Errorf("systemctl reboot: %w", err)
	}
	return "Restarting the system", nil
}

func (c *Controller) Sleep(ctx context.Context) (string, error) {
	if c.announceOnly {
		return "Would put the system to sleep", nil
	}
	if err := exec.CommandContext(ctx, "systemctl", "suspend").Run(); err != nil {
		return "", fmt.Errorf("systemctl suspend: %w", err)
	}
	return "Putting the system to sleep", nil
}
