package model

import "sort"

// DiffStatus classifies a screenshot key after comparing both trees.
type DiffStatus string

const (
	// StatusRemoved marks keys present only in the before tree.
	StatusRemoved DiffStatus = "removed"
	// StatusAdded marks keys present only in the after tree.
	StatusAdded DiffStatus = "added"
	// StatusChanged marks keys present in both trees with differing content.
	StatusChanged DiffStatus = "changed"
)

// DiffEntry pairs a screenshot key with its classification.
type DiffEntry struct {
	Key    ScreenshotKey
	Status DiffStatus
}

// DiffResult holds the three reported diff buckets. Keys present in both
// trees with identical content are unchanged and never listed; every other
// key lands in exactly one bucket.
type DiffResult struct {
	OnlyBefore []ScreenshotKey
	OnlyAfter  []ScreenshotKey
	Changed    []ScreenshotKey
}

// Empty reports whether no differences were found.
func (r DiffResult) Empty() bool {
	return len(r.OnlyBefore) == 0 && len(r.OnlyAfter) == 0 && len(r.Changed) == 0
}

// Total returns the number of reported keys across all buckets.
func (r DiffResult) Total() int {
	return len(r.OnlyBefore) + len(r.OnlyAfter) + len(r.Changed)
}

// Sort orders every bucket lexicographically so consumers produce
// deterministic output.
func (r *DiffResult) Sort() {
	sortKeys(r.OnlyBefore)
	sortKeys(r.OnlyAfter)
	sortKeys(r.Changed)
}

// Entries flattens the buckets into status-tagged entries ordered by key.
func (r DiffResult) Entries() []DiffEntry {
	entries := make([]DiffEntry, 0, r.Total())

	for _, key := range r.OnlyBefore {
		entries = append(entries, DiffEntry{Key: key, Status: StatusRemoved})
	}

	for _, key := range r.OnlyAfter {
		entries = append(entries, DiffEntry{Key: key, Status: StatusAdded})
	}

	for _, key := range r.Changed {
		entries = append(entries, DiffEntry{Key: key, Status: StatusChanged})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}

func sortKeys(keys []ScreenshotKey) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
}
