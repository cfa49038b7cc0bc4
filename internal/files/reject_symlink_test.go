package files

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRejectSymlinkPath_Target(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target.jsonl")
	if err := os.WriteFile(target, []byte("{}"), 0600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "log.jsonl")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := RejectSymlinkPath(link); err == nil {
		t.Fatalf("expected symlink rejection")
	}
}

func TestRejectSymlinkPath_AncestorDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	realDir := filepath.Join(tmp, "real", "nested")
	if err := os.MkdirAll(realDir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	linkDir := filepath.Join(tmp, "link")
	if err := os.Symlink(filepath.Join(tmp, "real"), linkDir); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}
	path := filepath.Join(linkDir, "nested", "log.jsonl")

	if err := RejectSymlinkPath(path); err == nil {
		t.Fatalf("expected ancestor symlink rejection")
	}
}

func TestRejectSymlinkPath_MissingLeafIsFine(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "new", "log.jsonl")
	if err := RejectSymlinkPath(path); err != nil {
		t.Fatalf("fresh path rejected: %v", err)
	}
}

func TestRejectSymlinkPath_Empty(t *testing.T) {
	if err := RejectSymlinkPath("  "); err == nil {
		t.Fatalf("expected empty path rejection")
	}
}
