package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

func TestLocalSnapshotFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSnapshotFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "top.png"), "top")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.png"), "child")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.png")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "top.png")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSnapshotFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "top.png"), "top")

		nestedDir := filepath.Join(root, "en", "tools_views")
		if err := os.MkdirAll(nestedDir, 0o755); err != nil {
			t.Fatalf("failed to create nested dir: %v", err)
		}
		child := filepath.Join(nestedDir, "child.png")
		writeTestFile(t, child, "child")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSnapshotFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "report.html")
	content := "<html><body>{{.Content}}</body></html>"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSnapshotFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "screen.png")
	content := []byte("not really a png, but the hash does not care")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}

	t.Run("missing file propagates the error", func(t *testing.T) {
		if _, err := adapter.HashFile(m.Path(filepath.Join(root, "absent.png"))); err == nil {
			t.Fatalf("HashFile() expected error for missing file")
		}
	})
}

func TestLocalSnapshotFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "screen.png")
	writeTestFile(t, path, "x")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}

	if _, err := adapter.FileInfo(m.Path(filepath.Join(root, "missing"))); !os.IsNotExist(err) {
		t.Fatalf("FileInfo() for missing path: err = %v, want not-exist", err)
	}
}

func TestLocalSnapshotFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	src := t.TempDir()
	dst := t.TempDir()

	srcFile := filepath.Join(src, "en", "tools_views", "View.png")
	if err := os.MkdirAll(filepath.Dir(srcFile), 0o755); err != nil {
		t.Fatalf("failed to create source dirs: %v", err)
	}
	writeTestBytes(t, srcFile, []byte{0x89, 'P', 'N', 'G', 1, 2, 3})

	dstFile := filepath.Join(dst, "before", "en", "tools_views", "View.png")
	if err := adapter.CopyFile(m.Path(srcFile), m.Path(dstFile)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	want, err := os.ReadFile(srcFile)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}

	got, err := os.ReadFile(dstFile)
	if err != nil {
		t.Fatalf("CopyFile() did not create destination: %v", err)
	}

	if string(got) != string(want) {
		t.Fatalf("CopyFile() content mismatch: got %q, want %q", got, want)
	}

	t.Run("overwrites existing destination", func(t *testing.T) {
		writeTestBytes(t, srcFile, []byte("second version"))

		if err := adapter.CopyFile(m.Path(srcFile), m.Path(dstFile)); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}

		got, err := os.ReadFile(dstFile)
		if err != nil {
			t.Fatalf("failed to read destination: %v", err)
		}

		if string(got) != "second version" {
			t.Fatalf("CopyFile() did not overwrite, got %q", got)
		}
	})

	t.Run("missing source propagates the error", func(t *testing.T) {
		err := adapter.CopyFile(m.Path(filepath.Join(src, "absent.png")), m.Path(filepath.Join(dst, "absent.png")))
		if err == nil {
			t.Fatalf("CopyFile() expected error for missing source")
		}
	})
}

func TestLocalSnapshotFSAdapter_MkdirAllAndWriteFile(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	root := t.TempDir()
	nested := filepath.Join(root, "out", "before", "en")

	if err := adapter.MkdirAll(m.Path(nested), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	// Creating the same tree again must not fail.
	if err := adapter.MkdirAll(m.Path(nested), 0o750); err != nil {
		t.Fatalf("MkdirAll() second call error = %v", err)
	}

	target := filepath.Join(nested, "index.html")
	if err := adapter.WriteFile(m.Path(target), []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if fi, err := os.Stat(target); err != nil || fi.IsDir() {
		t.Fatalf("WriteFile() did not create file, stat err=%v", err)
	}
}

func TestLocalSnapshotFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSnapshotFSAdapter()

	joined := adapter.JoinPath("/tmp", "out", "before", "en/tools_views/View.png")
	if string(joined) != filepath.Join("/tmp", "out", "before", "en/tools_views/View.png") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
