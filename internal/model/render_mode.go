package model

import "fmt"

// RenderMode selects the report flavor written by the renderer.
type RenderMode string

const (
	// ModeStyled writes index.html from the styled page template and copies
	// the stylesheet asset alongside it.
	ModeStyled RenderMode = "styled"
	// ModeMinimal writes diffs.html with bare markup and no stylesheet.
	ModeMinimal RenderMode = "minimal"
)

// ParseRenderMode validates a mode value coming from a flag or config key.
func ParseRenderMode(value string) (RenderMode, error) {
	switch RenderMode(value) {
	case ModeStyled:
		return ModeStyled, nil
	case ModeMinimal:
		return ModeMinimal, nil
	}

	return "", fmt.Errorf("unknown render mode %q (want %q or %q)", value, ModeStyled, ModeMinimal)
}
