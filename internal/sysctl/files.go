package sysctl

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const maxSearchMatches = 5

// searchDirs returns the well-known user directories the assistant looks
// through. Only existing ones are returned; the search never recurses.
func (c *Controller) searchDirs() []string {
	candidates := []string{
		filepath.Join(c.home, "Desktop"),
		filepath.Join(c.home, "Documents"),
		filepath.Join(c.home, "Downloads"),
		c.home,
	}
	dirs := make([]string, 0, len(candidates))
	for _, d := range candidates {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// SearchFile looks for files whose name contains fragment and returns up
// to five absolute paths, in directory order.
func (c *Controller) SearchFile(fragment string) []string {
	if fragment == "" {
		return nil
	}

	var matches []string
	for _, dir := range c.searchDirs() {
		hits, err := filepath.Glob(filepath.Join(dir, "*"+fragment+"*"))
		if err != nil {
			continue
		}
		for _, h := range hits {
			if info, err := os.Stat(h); err != nil || info.IsDir() {
				continue
			}
			matches = append(matches, h)
			if len(matches) >= maxSearchMatches {
				return matches
			}
		}
	}
	return matches
}

// OpenFile opens a file with its default application.
func (c *Controller) OpenFile(ctx context.Context, path string) (string, error) {
	if c.announceOnly {
		return fmt.Sprintf("Would open %s", filepath.Base(path)), nil
	}

	if err := statFile(path); err != nil {
		return "", err
	}
	if err := exec.CommandContext(ctx, "xdg-open", path).Start(); err != nil {
		return "", fmt.Errorf("xdg-open: %w", err)
	}
	return fmt.Sprintf("Opening %s", filepath.Base(path)), nil
}

func (c *Controller) DeleteFile(path string) (string, error) {
	if c.announceOnly {
		return fmt.Sprintf("Would delete %s", filepath.Base(path)), nil
	}

	if err := statFile(path); err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("delete %s: %w", path, err)
	}
	return fmt.Sprintf("Deleted %s", filepath.Base(path)), nil
}

func (c *Controller) MoveFile(src, dst string) (string, error) {
	if c.announceOnly {
		return fmt.Sprintf("Would move %s to %s", filepath.Base(src), dst), nil
	}

	if err := statFile(src); err != nil {
		return "", err
	}
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("move %s: %w", src, err)
	}
	return fmt.Sprintf("Moved %s to %s", filepath.Base(src), dst), nil
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("not a file: %s", path)
	}
	return nil
}
