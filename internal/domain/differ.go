package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

// diffScreenshots walks the after tree and buckets every key into the diff
// result. After screenshots are only fingerprinted when the key also exists
// in the before collection.
func (w *workflow) diffScreenshots(
	ctx context.Context,
	before map[m.ScreenshotKey]m.Screenshot,
	afterRoot m.Path,
) (m.DiffResult, error) {
	result := m.DiffResult{}
	seen := make(map[m.ScreenshotKey]bool, len(before))

	err := w.walkScreenshots(afterRoot, func(key m.ScreenshotKey, path m.Path) error {
		seen[key] = true

		prior, ok := before[key]
		if !ok {
			result.OnlyAfter = append(result.OnlyAfter, key)
			w.reportFound(ctx, m.StatusAdded, key)

			return nil
		}

		hash, err := w.HashFile(path)
		if err != nil {
			return fmt.Errorf("fingerprint %s: %w", path, err)
		}

		if hash != prior.Hash {
			result.Changed = append(result.Changed, key)
			w.reportFound(ctx, m.StatusChanged, key)
		}

		return nil
	})
	if err != nil {
		return m.DiffResult{}, err
	}

	removed := make([]m.ScreenshotKey, 0)

	for key := range before {
		if !seen[key] {
			removed = append(removed, key)
		}
	}

	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })

	for _, key := range removed {
		result.OnlyBefore = append(result.OnlyBefore, key)
		w.reportFound(ctx, m.StatusRemoved, key)
	}

	result.Sort()

	return result, nil
}

func (w *workflow) reportFound(ctx context.Context, status m.DiffStatus, key m.ScreenshotKey) {
	slog.Info("Difference found", "status", status, "screenshot", key)
	w.DisplayDiffFound(ctx, status, key)
}
