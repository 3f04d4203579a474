package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// keySegments is the number of trailing path segments that form a screenshot key.
const keySegments = 3

// ErrPathShape reports a walked file whose path cannot form a screenshot key.
var ErrPathShape = errors.New("path does not reduce to a locale/category/name key")

// ErrKeyShape reports a key that is not an exact locale/category/name triple.
var ErrKeyShape = errors.New("key is not a locale/category/name triple")

// ScreenshotKey is the 3-segment relative path that identifies a screenshot
// across both snapshot trees: {locale}/{category}/{name}.png. The same key is
// expected to appear in the before and after directories regardless of how
// deeply those roots are nested.
type ScreenshotKey string

// NewScreenshotKey reduces a file path to its trailing three segments, joined
// by the platform separator. Paths with fewer than three segments cannot be
// matched across trees and are rejected.
func NewScreenshotKey(path Path) (ScreenshotKey, error) {
	segments := splitPath(string(path))
	if len(segments) < keySegments {
		return "", fmt.Errorf("%w: %q", ErrPathShape, path)
	}

	tail := segments[len(segments)-keySegments:]

	return ScreenshotKey(strings.Join(tail, string(filepath.Separator))), nil
}

// Split returns the locale and the bare screenshot name (final segment with
// everything from the first dot stripped). It requires the key to be an exact
// three-segment triple and is only needed where locale labeling matters.
func (k ScreenshotKey) Split() (locale string, name string, err error) {
	segments := splitPath(string(k))
	if len(segments) != keySegments {
		return "", "", fmt.Errorf("%w: %q", ErrKeyShape, k)
	}

	name = segments[len(segments)-1]
	if base, _, found := strings.Cut(name, "."); found {
		name = base
	}

	return segments[0], name, nil
}

func splitPath(path string) []string {
	return strings.Split(path, string(filepath.Separator))
}
