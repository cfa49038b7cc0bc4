//go:build !windows

package files

// Reparse points are a Windows concept; Lstat covers symlinks elsewhere.
func isReparsePoint(string) (bool, error) {
	return false, nil
}
