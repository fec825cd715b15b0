package catalog

import (
	"sort"
	"time"

	"plumbing_estimator/internal/domain/entities"
)

// Entry is the latest known price for a normalized description.
type Entry struct {
	Description string
	Price       float64
	Unit        string
	Date        time.Time
}

// Index maps normalized descriptions to their most recent catalog entry.
// It is read-only once built.
type Index struct {
	entries map[string]Entry
}

// Build derives the index for one supplier's records. For equal dates the
// record seen last wins.
func Build(records []entities.CatalogRecord) Index {
	entries := make(map[string]Entry, len(records))
	for _, rec := range records {
		key := Normalize(rec.Description)
		if key == "" {
			continue
		}
		if existing, ok := entries[key]; ok && rec.Date.Before(existing.Date) {
			continue
		}
		entries[key] = Entry{
			Description: rec.Description,
			Price:       rec.UnitPrice,
			Unit:        rec.Unit,
			Date:        rec.Date,
		}
	}
	return Index{entries: entries}
}

func (ix Index) Lookup(description string) (Entry, bool) {
	key := Normalize(description)
	if key == "" || ix.entries == nil {
		return Entry{}, false
	}
	e, ok := ix.entries[key]
	return e, ok
}

func (ix Index) Len() int {
	return len(ix.entries)
}

// Suggestions lists one description per indexed product, sorted
// case-insensitively.
func (ix Index) Suggestions() []string {
	out := make([]string, 0, len(ix.entries))
	for _, e := range ix.entries {
		out = append(out, e.Description)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := Normalize(out[i]), Normalize(out[j])
		if a == b {
			return out[i] < out[j]
		}
		return a < b
	})
	return out
}
