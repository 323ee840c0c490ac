// Package report assembles the final output views: the sorted actuals
// table, the resource dictionary derived from it, and the narrative BoE
// notes per (bid-item, activity) pair.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/pkg/format"
)

// descriptionPrefixes label each Resource File description by cost type.
var descriptionPrefixes = map[model.CostType]string{
	model.CostTypeAFUDC:      "Actls. - AFUDC - ",
	model.CostTypeContracts:  "Actls. - Cont. - ",
	model.CostTypeLabor:      "Actls. - Labr. - ",
	model.CostTypeLaborAlloc: "Actls. - L.OH. - ",
}

// defaultPrefix labels cost types without a dedicated prefix.
const defaultPrefix = "Actls. - Other. - "

// resourceTypeMarker is the leading type marker stripped from labor
// resource codes for display.
const resourceTypeMarker = "6"

// overheadResourceFragment identifies synthesized overhead resources, which
// never appear in notes.
const overheadResourceFragment = "Labor OH"

// noteLineFormat is one labor resource's line in a BoE note.
const noteLineFormat = "%s: %s MH Actuals to date, Projected an additional 0 MH for the remainder of the Activity"

// Sort orders the actuals by bid-item ascending, then activity, cost type,
// and resource code. The sort is stable, so ties keep first-seen order and
// output is byte-reproducible across runs on identical input.
func Sort(lines []model.Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.BidItem != b.BidItem {
			return a.BidItem < b.BidItem
		}
		if a.Activity != b.Activity {
			return a.Activity < b.Activity
		}
		if a.CostType != b.CostType {
			return a.CostType < b.CostType
		}
		return a.Resource < b.Resource
	})
}

// Resources derives the resource dictionary: one entry per distinct
// resource code, first occurrence winning on ties. Labor descriptions are
// the resource code without its type marker; everything else keeps the
// line's free-text description. Both are prefixed by the cost-type label.
func Resources(lines []model.Line) []model.ResourceEntry {
	seen := make(map[string]bool)
	var entries []model.ResourceEntry
	for _, line := range lines {
		if seen[line.Resource] {
			continue
		}
		seen[line.Resource] = true

		description := line.Description
		if line.CostType == model.CostTypeLabor {
			description = strings.TrimPrefix(line.Resource, resourceTypeMarker)
		}
		prefix, ok := descriptionPrefixes[line.CostType]
		if !ok {
			prefix = defaultPrefix
		}
		entries = append(entries, model.ResourceEntry{
			Code:        line.Resource,
			Description: prefix + description,
		})
	}
	return entries
}

// Notes derives the narrative BoE entries for every (bid-item, activity)
// group containing at least one labor line. Lines must already be sorted;
// groups are taken as consecutive runs. The clock is injected so note
// headers are reproducible under test.
func Notes(lines []model.Line, now time.Time) []model.NoteEntry {
	var entries []model.NoteEntry
	for start := 0; start < len(lines); {
		end := start
		for end < len(lines) &&
			lines[end].BidItem == lines[start].BidItem &&
			lines[end].Activity == lines[start].Activity {
			end++
		}
		if entry, ok := noteForGroup(lines[start:end], now); ok {
			entries = append(entries, entry)
		}
		start = end
	}
	return entries
}

func noteForGroup(group []model.Line, now time.Time) (model.NoteEntry, bool) {
	hasLabor := false
	for _, line := range group {
		if line.CostType == model.CostTypeLabor {
			hasLabor = true
			break
		}
	}
	if !hasLabor {
		return model.NoteEntry{}, false
	}

	noteLines := []string{format.NoteDate(now) + ": "}
	for _, line := range group {
		if line.CostType != model.CostTypeLabor {
			continue
		}
		if strings.Contains(line.Resource, overheadResourceFragment) {
			continue
		}
		code := strings.TrimPrefix(line.Resource, resourceTypeMarker)
		noteLines = append(noteLines, fmt.Sprintf(noteLineFormat, code, format.Quantity(line.Quantity)))
	}
	return model.NoteEntry{
		BidItem:  group[0].BidItem,
		Activity: group[0].Activity,
		Notes:    strings.Join(noteLines, "\n"),
	}, true
}
