package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RejectSymlinkPath returns an error if the path or any existing ancestor is a
// symlink. Used before opening the JSONL log file so a planted link cannot
// redirect writes elsewhere.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	volume := filepath.VolumeName(abs)
	rest := strings.TrimLeft(abs[len(volume):], string(os.PathSeparator))

	current := volume + string(os.PathSeparator)
	for _, part := range strings.Split(rest, string(os.PathSeparator)) {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		info, err := os.Lstat(current)
		if err != nil {
			// Components past the deepest existing directory cannot be links.
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing to write to symlink path: %s (symlink detected at %s)", abs, current)
		}
		if isReparse, err := isReparsePoint(current); err != nil {
			return fmt.Errorf("failed to check reparse point: %w", err)
		} else if isReparse {
			return fmt.Errorf("refusing to write to symlink path: %s (reparse point detected at %s)", abs, current)
		}
	}
	return nil
}
