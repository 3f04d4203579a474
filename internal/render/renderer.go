// Package render copies diff artifacts into the output tree and writes the
// static HTML report describing them.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"path/filepath"
	"strings"

	"snapdiff.dev/pkg/snapdiff/internal/adapter"
	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

//go:embed templates assets
var resources embed.FS

// pageTemplates holds the embedded page documents. The assembled fragment
// string is substituted into their Content placeholder.
var pageTemplates = template.Must(template.ParseFS(resources, "templates/*.html"))

const (
	styledReportName  = "index.html"
	minimalReportName = "diffs.html"

	styledTemplateName  = "report.html"
	minimalTemplateName = "minimal.html"

	stylesheetName = "report.css"

	beforeSubdir = "before"
	afterSubdir  = "after"

	outputDirPerm = 0o750
	reportPerm    = 0o644
)

// Args carries everything the renderer needs for one report, assembled at
// the workflow boundary.
type Args struct {
	BeforeDir m.Path
	AfterDir  m.Path
	OutputDir m.Path
	Mode      m.RenderMode

	// Template optionally points at an external page template; empty selects
	// the embedded template for the mode.
	Template m.Path
}

// Renderer emits the report artifacts for a diff result and returns the path
// of the written HTML page.
type Renderer interface {
	Render(args Args, result m.DiffResult) (m.Path, error)
}

// HTMLRenderer writes static HTML reports through a SnapshotFSAdapter.
type HTMLRenderer struct {
	fs adapter.SnapshotFSAdapter
}

// NewHTMLRenderer creates an HTMLRenderer backed by the given filesystem
// adapter.
func NewHTMLRenderer(fsAdapter adapter.SnapshotFSAdapter) *HTMLRenderer {
	return &HTMLRenderer{fs: fsAdapter}
}

// Render copies every reported screenshot into the output tree, assembles
// the HTML fragments and writes the report page. Rerunning with identical
// inputs overwrites the same files with identical bytes.
func (r *HTMLRenderer) Render(args Args, result m.DiffResult) (m.Path, error) {
	for _, subdir := range []string{beforeSubdir, afterSubdir} {
		if err := r.fs.MkdirAll(r.fs.JoinPath(string(args.OutputDir), subdir), outputDirPerm); err != nil {
			return "", fmt.Errorf("create output tree: %w", err)
		}
	}

	content, err := r.buildContent(args, result)
	if err != nil {
		return "", err
	}

	return r.writePage(args, content)
}

// buildContent walks the diff buckets in sorted order, copying each artifact
// and appending its fragment. An empty result yields the single
// no-differences fragment.
func (r *HTMLRenderer) buildContent(args Args, result m.DiffResult) (template.HTML, error) {
	fragments := styledFragments
	if args.Mode == m.ModeMinimal {
		fragments = minimalFragments
	}

	var b strings.Builder

	if result.Empty() {
		if err := fragments.ExecuteTemplate(&b, "empty", nil); err != nil {
			return "", fmt.Errorf("render empty fragment: %w", err)
		}

		return template.HTML(b.String()), nil
	}

	for _, key := range result.OnlyBefore {
		if err := r.copyArtifact(args.BeforeDir, args.OutputDir, beforeSubdir, key); err != nil {
			return "", err
		}

		if err := appendFragment(fragments, "removed", key, &b); err != nil {
			return "", err
		}
	}

	for _, key := range result.OnlyAfter {
		if err := r.copyArtifact(args.AfterDir, args.OutputDir, afterSubdir, key); err != nil {
			return "", err
		}

		if err := appendFragment(fragments, "added", key, &b); err != nil {
			return "", err
		}
	}

	for _, key := range result.Changed {
		if err := r.copyArtifact(args.BeforeDir, args.OutputDir, beforeSubdir, key); err != nil {
			return "", err
		}

		if err := r.copyArtifact(args.AfterDir, args.OutputDir, afterSubdir, key); err != nil {
			return "", err
		}

		if err := appendFragment(fragments, "changed", key, &b); err != nil {
			return "", err
		}
	}

	return template.HTML(b.String()), nil
}

func appendFragment(fragments *template.Template, name string, key m.ScreenshotKey, b *strings.Builder) error {
	locale, bareName, err := key.Split()
	if err != nil {
		return err
	}

	data := fragment{
		Locale: strings.ToUpper(locale),
		Name:   bareName,
		Before: path.Join(beforeSubdir, filepath.ToSlash(string(key))),
		After:  path.Join(afterSubdir, filepath.ToSlash(string(key))),
	}

	if err := fragments.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("render %s fragment for %s: %w", name, key, err)
	}

	return nil
}

func (r *HTMLRenderer) copyArtifact(root, outputDir m.Path, subdir string, key m.ScreenshotKey) error {
	src := r.fs.JoinPath(string(root), string(key))
	dst := r.fs.JoinPath(string(outputDir), subdir, string(key))

	if err := r.fs.CopyFile(src, dst); err != nil {
		return fmt.Errorf("copy %s artifact %s: %w", subdir, key, err)
	}

	return nil
}

func (r *HTMLRenderer) writePage(args Args, content template.HTML) (m.Path, error) {
	tmpl := pageTemplates.Lookup(pageTemplateName(args.Mode))

	if args.Template != "" {
		custom, err := r.loadPageTemplate(args.Template)
		if err != nil {
			return "", err
		}

		tmpl = custom
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{Content: content}); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}

	reportPath := r.fs.JoinPath(string(args.OutputDir), reportFileName(args.Mode))
	if err := r.fs.WriteFile(reportPath, buf.Bytes(), reportPerm); err != nil {
		return "", fmt.Errorf("write report page: %w", err)
	}

	if args.Mode == m.ModeStyled {
		if err := r.copyStylesheet(args.OutputDir); err != nil {
			return "", err
		}
	}

	return reportPath, nil
}

// loadPageTemplate reads and parses an external page template. A missing or
// unparsable template terminates the run.
func (r *HTMLRenderer) loadPageTemplate(templatePath m.Path) (*template.Template, error) {
	raw, err := r.fs.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("load page template %s: %w", templatePath, err)
	}

	tmpl, err := template.New(filepath.Base(string(templatePath))).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page template %s: %w", templatePath, err)
	}

	return tmpl, nil
}

// copyStylesheet writes the embedded stylesheet next to the report page,
// byte for byte.
func (r *HTMLRenderer) copyStylesheet(outputDir m.Path) error {
	data, err := resources.ReadFile("assets/" + stylesheetName)
	if err != nil {
		return fmt.Errorf("read embedded stylesheet: %w", err)
	}

	if err := r.fs.WriteFile(r.fs.JoinPath(string(outputDir), stylesheetName), data, reportPerm); err != nil {
		return fmt.Errorf("copy stylesheet: %w", err)
	}

	return nil
}

func pageTemplateName(mode m.RenderMode) string {
	if mode == m.ModeMinimal {
		return minimalTemplateName
	}

	return styledTemplateName
}

func reportFileName(mode m.RenderMode) string {
	if mode == m.ModeMinimal {
		return minimalReportName
	}

	return styledReportName
}
