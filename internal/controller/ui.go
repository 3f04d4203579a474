// Package controller provides output adapters for displaying screenshot diff results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

// UI defines the interface for presenting diff progress and summaries.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDiffFound(ctx context.Context, status m.DiffStatus, key m.ScreenshotKey)
	Summarize(ctx context.Context, result m.DiffResult) error
	DisplayReportLocation(ctx context.Context, report m.Path)
}

// NewUI selects the UI implementation for the command's output stream.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
