package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiffFound prints a progress line for a single difference.
func (s *SimpleUI) DisplayDiffFound(ctx context.Context, status m.DiffStatus, key m.ScreenshotKey) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch status {
	case m.StatusRemoved:
		s.printf("Screenshot only in before: %s\n", key)
	case m.StatusAdded:
		s.printf("Screenshot only in after: %s\n", key)
	case m.StatusChanged:
		s.printf("Screenshot different: %s\n", key)
	}
}

// Summarize prints the diff result as a table, or a notice when there is
// nothing to report.
func (s *SimpleUI) Summarize(ctx context.Context, result m.DiffResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result.Empty() {
		s.printf("No differences found\n")
		return nil
	}

	s.printf("\n%s", renderSummaryTable(result))

	return nil
}

func renderSummaryTable(result m.DiffResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Screenshot"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, entry := range result.Entries() {
		table.Append([]string{string(entry.Status), string(entry.Key)})
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", result.Total()),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayReportLocation prints where the report page was written.
func (s *SimpleUI) DisplayReportLocation(ctx context.Context, report m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report written to %s\n", report)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
