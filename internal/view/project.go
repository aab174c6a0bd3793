// Package view derives read-only orderings and the progress summary from a
// snapshot of the list. Nothing here mutates its input.
package view

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/faraway/internal/debug"
	"github.com/idilsaglam/faraway/internal/model"
)

// Project returns items ordered for display under mode. The result is always
// a new slice; items itself is left untouched. Unknown modes fall back to input order.
func Project(items []model.Item, mode model.SortMode) []model.Item {
	start := time.Now()
	out := slices.Clone(items)
	switch mode {
	case model.SortDescription:
		// Collator carries scratch buffers, so one per call.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return col.CompareString(a.Description, b.Description)
		})
	case model.SortPacked:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return packedRank(a) - packedRank(b)
		})
	}
	debug.LogTiming("view: project "+string(mode), time.Since(start))
	return out
}

func packedRank(it model.Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
