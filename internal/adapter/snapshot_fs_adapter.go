// Package adapter contains filesystem adapters for the snapdiff CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

// SnapshotFSAdapter abstracts the filesystem operations the pipeline relies
// on when scanning snapshot trees and writing report artifacts. It hides
// direct `os` access so the workflow and renderer logic can be tested without
// touching the disk.
type SnapshotFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256 hex) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// CopyFile copies a single file, creating destination directories as needed.
	CopyFile(src, dst m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSnapshotFSAdapter is the disk-backed implementation of
// SnapshotFSAdapter.
type LocalSnapshotFSAdapter struct{}

// NewLocalSnapshotFSAdapter constructs a LocalSnapshotFSAdapter ready to be
// wired into the workflow.
func NewLocalSnapshotFSAdapter() *LocalSnapshotFSAdapter {
	return &LocalSnapshotFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSnapshotFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSnapshotFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path. The
// file is streamed through the hash in bounded chunks and closed before the
// function returns.
func (a *LocalSnapshotFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSnapshotFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates a directory along with any missing parents.
func (a *LocalSnapshotFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// CopyFile copies a single file, creating destination directories as needed.
// The copy keeps the source file's permissions.
func (a *LocalSnapshotFSAdapter) CopyFile(src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	// #nosec G304 - src comes from scanning the caller-supplied input trees
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst lives under the caller-supplied output directory
	destFile, err := os.Create(string(dst))
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(string(dst), info.Mode())
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSnapshotFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSnapshotFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
