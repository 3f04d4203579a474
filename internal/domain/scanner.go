package domain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

const screenshotExt = ".png"

// walkScreenshots visits every screenshot under root in lexical order and
// calls fn with the normalized key and the full path. A missing root is
// treated as an empty tree.
func (w *workflow) walkScreenshots(root m.Path, fn func(key m.ScreenshotKey, path m.Path) error) error {
	info, err := w.FileInfo(root)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Screenshot root does not exist", "root", root)
			return nil
		}

		return err
	}

	if !info.IsDir() {
		return nil
	}

	return w.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != screenshotExt {
			return nil
		}

		key, err := m.NewScreenshotKey(m.Path(path))
		if err != nil {
			return err
		}

		return fn(key, m.Path(path))
	})
}

// collectScreenshots fingerprints every screenshot under root, keyed by the
// normalized key. When deep trees truncate to the same key the last one wins.
func (w *workflow) collectScreenshots(root m.Path) (map[m.ScreenshotKey]m.Screenshot, error) {
	screenshots := make(map[m.ScreenshotKey]m.Screenshot)

	err := w.walkScreenshots(root, func(key m.ScreenshotKey, path m.Path) error {
		hash, err := w.HashFile(path)
		if err != nil {
			return fmt.Errorf("fingerprint %s: %w", path, err)
		}

		screenshots[key] = m.Screenshot{
			Key:    key,
			Origin: path,
			Hash:   hash,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return screenshots, nil
}
