// Package domain implements the screenshot diff workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"snapdiff.dev/pkg/snapdiff/internal/adapter"
	"snapdiff.dev/pkg/snapdiff/internal/controller"
	m "snapdiff.dev/pkg/snapdiff/internal/model"
	"snapdiff.dev/pkg/snapdiff/internal/render"
)

// ReportArgs contains the arguments for building a diff report.
type ReportArgs struct {
	BeforeDir m.Path
	AfterDir  m.Path
	OutputDir m.Path
	Mode      m.RenderMode
	Template  m.Path
}

// CompareArgs contains the arguments for comparing two screenshot trees.
type CompareArgs struct {
	BeforeDir m.Path
	AfterDir  m.Path
}

// Workflow defines the interface for the screenshot diff workflow.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) (m.DiffResult, error)
	Compare(ctx context.Context, args CompareArgs) (m.DiffResult, error)
}

type workflow struct {
	adapter.SnapshotFSAdapter
	render.Renderer
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SnapshotFSAdapter, renderer render.Renderer, ui controller.UI) Workflow {
	return &workflow{
		SnapshotFSAdapter: fsAdapter,
		Renderer:          renderer,
		UI:                ui,
	}
}

// Report diffs the two trees, writes the HTML report page and copies the
// referenced screenshots next to it.
func (w *workflow) Report(ctx context.Context, args ReportArgs) (m.DiffResult, error) {
	result, err := w.compare(ctx, args.BeforeDir, args.AfterDir)
	if err != nil {
		return m.DiffResult{}, err
	}

	report, err := w.Render(render.Args{
		BeforeDir: args.BeforeDir,
		AfterDir:  args.AfterDir,
		OutputDir: args.OutputDir,
		Mode:      args.Mode,
		Template:  args.Template,
	}, result)
	if err != nil {
		return m.DiffResult{}, fmt.Errorf("render report: %w", err)
	}

	if err := w.Summarize(ctx, result); err != nil {
		return m.DiffResult{}, fmt.Errorf("display summary: %w", err)
	}

	w.DisplayReportLocation(ctx, report)

	return result, nil
}

// Compare diffs the two trees without writing a report.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) (m.DiffResult, error) {
	result, err := w.compare(ctx, args.BeforeDir, args.AfterDir)
	if err != nil {
		return m.DiffResult{}, err
	}

	if err := w.Summarize(ctx, result); err != nil {
		return m.DiffResult{}, fmt.Errorf("display summary: %w", err)
	}

	return result, nil
}

func (w *workflow) compare(ctx context.Context, beforeDir, afterDir m.Path) (m.DiffResult, error) {
	slog.Info("Collecting before screenshots", "root", beforeDir)

	before, err := w.collectScreenshots(beforeDir)
	if err != nil {
		return m.DiffResult{}, fmt.Errorf("scan before tree: %w", err)
	}

	slog.Info("Diffing after screenshots", "root", afterDir, "collected", len(before))

	result, err := w.diffScreenshots(ctx, before, afterDir)
	if err != nil {
		return m.DiffResult{}, fmt.Errorf("diff after tree: %w", err)
	}

	return result, nil
}
