// Package model defines the data structures shared across the snapdiff pipeline.
package model

// Path represents a file system path.
type Path string

// Screenshot is a single discovered screenshot file.
type Screenshot struct {
	Key    ScreenshotKey
	Origin Path   // path the file was discovered at
	Hash   string // sha256 hex digest of the file contents
}
