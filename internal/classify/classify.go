// Package classify derives a short resource code and a cost-type
// classification for each distinct (cost element, partner cost center) pair.
//
// Both derivations are modeled as an ordered chain of resolver strategies
// tried in sequence. Each tier either answers or passes to the next, which
// keeps the fallback policy auditable and testable per tier. Classification
// is pure, deterministic, and total: unknown inputs degrade to best-effort
// codes rather than erroring, since the output is human-reviewed before use.
package classify

import (
	"strconv"
	"strings"

	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/refdata"
)

// resourcePrefix is the leading type marker on every resource code.
const resourcePrefix = "6"

// Cost-element code families recognized by the prefix tier.
const (
	laborCodePrefix    = "660"
	contractCodePrefix = "50"
)

// abbrevResolver is one tier of the resource-code chain. It returns the
// abbreviation for a cost element, or false when the tier cannot resolve it.
type abbrevResolver func(code int, name string, elements refdata.CostElements) (string, bool)

// abbrevResolvers is the ordered resource-code fallback chain. The final
// tier synthesizes from the display name and never misses.
var abbrevResolvers = []abbrevResolver{
	abbrevFromReferenceText,
	abbrevFromStaticTable,
	abbrevFromName,
}

// costTypeResolver is one tier of the cost-type chain.
type costTypeResolver func(code int, elements refdata.CostElements) (model.CostType, bool)

// costTypeResolvers is the ordered cost-type fallback chain; anything that
// falls through every tier classifies as Other.
var costTypeResolvers = []costTypeResolver{
	costTypeFromReferenceGrouping,
	costTypeFromStaticTable,
	costTypeFromCodePrefix,
}

// Classify resolves both the resource code and the cost type for one
// aggregated (cost element, partner center) group.
func Classify(code, partnerCenter int, name string, ref *refdata.Reference) (string, model.CostType) {
	return ResourceCode(code, partnerCenter, name, ref.CostElements),
		ResolveCostType(code, ref.CostElements)
}

// ResourceCode builds the resource code: the "6" type marker, the resolved
// abbreviation, and the partner center digits when one is present. A partner
// center of zero means "no partner center".
func ResourceCode(code, partnerCenter int, name string, elements refdata.CostElements) string {
	var abbrev string
	for _, resolve := range abbrevResolvers {
		if a, ok := resolve(code, name, elements); ok {
			abbrev = a
			break
		}
	}
	if partnerCenter > 0 {
		return resourcePrefix + abbrev + strconv.Itoa(partnerCenter)
	}
	return resourcePrefix + abbrev
}

// ResolveCostType classifies a cost element through the cost-type chain.
func ResolveCostType(code int, elements refdata.CostElements) model.CostType {
	for _, resolve := range costTypeResolvers {
		if costType, ok := resolve(code, elements); ok {
			return costType
		}
	}
	return model.CostTypeOther
}

// firstWordAbbreviations maps well-known leading words of cost-element text
// to their established abbreviations.
var firstWordAbbreviations = map[string]string{
	"consulting":    "Consult",
	"consult":       "Consult",
	"engineering":   "Engr",
	"engineer":      "Engr",
	"environmental": "Environ",
	"environment":   "Environ",
	"construction":  "Constr",
	"contract":      "Contract",
	"meals":         "Meals",
	"reimbursed":    "Reimburs",
}

// abbrevSuffixes are stripped from a leading word before truncation. Only
// the first matching suffix is removed.
var abbrevSuffixes = []string{"services", "service", "svc", "svcs"}

// abbrevFromReferenceText derives an abbreviation from the cost element's
// descriptive text in the reference workbook.
func abbrevFromReferenceText(code int, _ string, elements refdata.CostElements) (string, bool) {
	if code == 0 {
		return "", false
	}
	entry, ok := elements[code]
	if !ok || entry.Text == "" {
		return "", false
	}
	words := strings.Fields(entry.Text)
	if len(words) == 0 {
		return "", false
	}

	first := strings.ToLower(words[0])
	if abbrev, ok := firstWordAbbreviations[first]; ok {
		return abbrev, true
	}

	clean := first
	for _, suffix := range abbrevSuffixes {
		if strings.HasSuffix(clean, suffix) {
			clean = strings.TrimSuffix(clean, suffix)
			break
		}
	}
	if clean == "" {
		// The word was nothing but a suffix; fall back to the word itself.
		clean = first
	}
	return capitalize(truncate(clean, 8)), true
}

// abbrevFromStaticTable consults the built-in code -> abbreviation table.
func abbrevFromStaticTable(code int, _ string, _ refdata.CostElements) (string, bool) {
	if code == 0 {
		return "", false
	}
	return refdata.Abbreviation(code)
}

// abbrevFromName synthesizes an abbreviation from the cost element's display
// name. This tier is total.
func abbrevFromName(_ int, name string, _ refdata.CostElements) (string, bool) {
	parts := strings.Fields(strings.ToUpper(name))
	if len(parts) >= 2 {
		return truncate(parts[0], 3) + truncate(parts[1], 3), true
	}
	return truncate(strings.ToUpper(name), 6), true
}

// groupingCostTypes maps the reference workbook's classification tags to
// output cost types.
var groupingCostTypes = map[string]model.CostType{
	"Contract":  model.CostTypeContracts,
	"Labor":     model.CostTypeLabor,
	"OverHeads": model.CostTypeLaborAlloc,
	"Materials": model.CostTypeOther,
}

// costTypeFromReferenceGrouping classifies via the reference workbook's
// level-1 group or grouping tag.
func costTypeFromReferenceGrouping(code int, elements refdata.CostElements) (model.CostType, bool) {
	if code == 0 {
		return "", false
	}
	entry, ok := elements[code]
	if !ok {
		return "", false
	}
	if costType, ok := groupingCostTypes[entry.Level1Group]; ok {
		return costType, true
	}
	if costType, ok := groupingCostTypes[entry.Grouping]; ok {
		return costType, true
	}
	return "", false
}

// costTypeFromStaticTable consults the built-in code -> cost-type table.
func costTypeFromStaticTable(code int, _ refdata.CostElements) (model.CostType, bool) {
	if code == 0 {
		return "", false
	}
	return refdata.StaticCostType(code)
}

// costTypeFromCodePrefix classifies by code family: 660xxxx is labor,
// 50xxxxx is contracts.
func costTypeFromCodePrefix(code int, _ refdata.CostElements) (model.CostType, bool) {
	if code == 0 {
		return "", false
	}
	digits := strconv.Itoa(code)
	switch {
	case strings.HasPrefix(digits, laborCodePrefix):
		return model.CostTypeLabor, true
	case strings.HasPrefix(digits, contractCodePrefix):
		return model.CostTypeContracts, true
	}
	return "", false
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// capitalize upper-cases the first rune and lower-cases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
