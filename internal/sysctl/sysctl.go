// Package sysctl wraps the OS-level primitives the assistant drives:
// volume, power, applications and user files. Every mutating call honours
// announce-only mode, in which it performs no real action and returns a
// "Would ..." description instead.
package sysctl

import "os"

type Config struct {
	// AnnounceOnly disables every OS-mutating call.
	AnnounceOnly bool

	// Home overrides the user home directory used for file search.
	// Empty means os.UserHomeDir.
	Home string
}

type Controller struct {
	announceOnly bool
	home         string
}

func New(cfg Config) *Controller {
	home := cfg.Home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return &Controller{
		announceOnly: cfg.AnnounceOnly,
		home:         home,
	}
}

func (c *Controller) AnnounceOnly() bool { return c.announceOnly }
