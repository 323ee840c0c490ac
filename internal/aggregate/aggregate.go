// Package aggregate groups the cleaned ledger records by (operation, cost
// element, partner cost center), sums quantities and monetary values, and
// materializes the normalized actuals lines. It also captures the
// pre-exclusion totals (capitalized interest, labor overhead per operation)
// that the derived-row synthesizer consumes.
package aggregate

import (
	"strings"

	"go.uber.org/zap"

	"github.com/shaunpsauer/Actuals/internal/classify"
	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/refdata"
)

// CapitalInterestOperation is the sentinel operation whose postings carry
// the capitalized-interest values. Its rows never appear as ordinary lines;
// they feed the AFUDC totals instead.
const CapitalInterestOperation = 1

// Cost elements of the capitalized-interest postings.
const (
	CostElementAFUDCBorrowed = 5590030
	CostElementAFUDCEquity   = 5590031
)

// overheadCodePrefix marks the overhead-source cost-element family. Those
// rows are summed per operation and excluded from ordinary aggregation.
const overheadCodePrefix = "6010"

// Totals carries the sums captured before exclusion filtering discards the
// originating rows. The synthesizer receives these as explicit inputs and
// must not recompute them from the already-filtered line set.
type Totals struct {
	AFUDCBorrowed       float64
	AFUDCEquity         float64
	OverheadByOperation map[int]float64
}

// groupKey is the composite aggregation key. The partner center uses 0 as
// the "absent" sentinel so null-vs-zero artifacts of the source
// representation cannot split a group.
type groupKey struct {
	operation     int
	costElement   string
	partnerCenter int
	name          string
}

type groupSums struct {
	code     int
	quantity float64
	value    float64
}

// Run aggregates the cleaned records into actuals lines with cost-type
// normalization applied, and returns the pre-exclusion totals alongside.
// Group materialization follows first-seen order so output is reproducible
// across runs on identical input.
func Run(logger *zap.Logger, records []model.LedgerRecord, ref *refdata.Reference) ([]model.Line, Totals) {
	if logger == nil {
		logger = zap.NewNop()
	}

	totals := Totals{OverheadByOperation: make(map[int]float64)}
	groups := make(map[groupKey]*groupSums)
	var keyOrder []groupKey

	for _, record := range records {
		if record.Operation == CapitalInterestOperation {
			switch record.CostElement {
			case CostElementAFUDCBorrowed:
				totals.AFUDCBorrowed += record.Value
			case CostElementAFUDCEquity:
				totals.AFUDCEquity += record.Value
			}
			continue
		}
		if strings.HasPrefix(record.CostElementKey(), overheadCodePrefix) {
			totals.OverheadByOperation[record.Operation] += record.Value
			continue
		}

		key := groupKey{
			operation:     record.Operation,
			costElement:   record.CostElementKey(),
			partnerCenter: record.PartnerCostCenter,
			name:          record.CostElementName,
		}
		group, ok := groups[key]
		if !ok {
			group = &groupSums{code: record.CostElement}
			groups[key] = group
			keyOrder = append(keyOrder, key)
		}
		group.quantity += record.Quantity
		group.value += record.Value
	}

	warned := make(map[int]bool)
	lines := make([]model.Line, 0, len(keyOrder))
	for _, key := range keyOrder {
		group := groups[key]
		resource, costType := classify.Classify(group.code, key.partnerCenter, key.name, ref)

		activity, ok := ref.Operations.Activity(key.operation)
		if !ok {
			activity = refdata.PlaceholderActivity(key.operation)
			if !warned[key.operation] {
				warned[key.operation] = true
				logger.Warn("operation missing from WBS dictionary, synthesized placeholder activity",
					zap.String("op", "aggregate.Run"),
					zap.Int("operation", key.operation),
					zap.String("activity", activity),
				)
			}
		}

		line := model.Line{
			BidItem:     key.operation,
			Activity:    activity,
			Resource:    resource,
			Quantity:    group.quantity,
			Unit:        model.UnitHours,
			SuppDesc:    key.costElement,
			Description: key.name,
			CostType:    costType,
		}
		// Zero-quantity lump charges are treated as priced items rather
		// than a division error.
		if group.quantity != 0 {
			line.UnitPrice = group.value / group.quantity
		} else {
			line.UnitPrice = group.value
		}
		// Non-labor lines collapse to a lump sum priced at the total spend;
		// labor keeps the quantity/unit-rate distinction.
		if costType != model.CostTypeLabor {
			line.Quantity = 1
			line.Unit = model.UnitLumpSum
			line.UnitPrice = group.value
		}
		lines = append(lines, line)
	}
	return lines, totals
}
