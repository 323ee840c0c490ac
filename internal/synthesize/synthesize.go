// Package synthesize adds the rows the output contract requires but the raw
// export does not contain: a labor-overhead allocation line per distinct
// (bid-item, activity) pair and capitalized-interest lines for the
// designated bid-item. Both rules consume the pre-exclusion totals captured
// during aggregation and are independent of each other's ordering.
package synthesize

import (
	"strconv"

	"github.com/shaunpsauer/Actuals/internal/aggregate"
	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/refdata"
	"github.com/shaunpsauer/Actuals/pkg/mathutil"
)

// OverheadResource is the fixed resource code of synthesized labor-overhead
// lines.
const OverheadResource = "6Labor OH"

// overheadDescription doubles as the allocation sentinel the source ledger
// uses for these lines.
const overheadDescription = "Labor Alloc."

// CapitalInterestBidItem is the designated bid-item that receives the
// capitalized-interest lines.
const CapitalInterestBidItem = 1010

// capitalInterestFallbackActivity is used when the designated bid-item is
// missing from the operations dictionary.
const capitalInterestFallbackActivity = "0101-1010A"

// Resource codes and descriptions of the two capitalized-interest lines.
const (
	afudcBorrowedResource    = "6AFUDC-Bo"
	afudcBorrowedDescription = "AFUDC-Borrowed"
	afudcEquityResource      = "6AFUDC-Eq"
	afudcEquityDescription   = "AFUDC-Equity"
)

// Overhead emits one lump-sum labor-overhead line for every distinct
// (bid-item, activity) pair in the aggregated set, priced at that
// operation's overhead total. Pairs whose total is absent or within epsilon
// of zero are skipped to avoid zero-value clutter. Allocation is intentional
// for every bid-item touched by the order, including bid-items whose only
// other lines are non-labor.
func Overhead(lines []model.Line, totals aggregate.Totals) []model.Line {
	type pair struct {
		bidItem  int
		activity string
	}
	seen := make(map[pair]bool)
	var rows []model.Line

	for _, line := range lines {
		p := pair{line.BidItem, line.Activity}
		if seen[p] {
			continue
		}
		seen[p] = true

		overhead, ok := totals.OverheadByOperation[p.bidItem]
		if !ok || mathutil.IsZero(overhead) {
			continue
		}
		rows = append(rows, model.Line{
			BidItem:     p.bidItem,
			Activity:    p.activity,
			Resource:    OverheadResource,
			Quantity:    1,
			Unit:        model.UnitLumpSum,
			UnitPrice:   overhead,
			Description: overheadDescription,
			CostType:    model.CostTypeLaborAlloc,
		})
	}
	return rows
}

// AFUDC emits the capitalized-interest lines for the designated bid-item:
// up to one borrowed-funds and one equity-funds row, each gated
// independently on its own non-zero total, and only when the bid-item
// already has at least one aggregated line.
func AFUDC(lines []model.Line, totals aggregate.Totals, operations refdata.Operations) []model.Line {
	hasBorrowed := !mathutil.IsZero(totals.AFUDCBorrowed)
	hasEquity := !mathutil.IsZero(totals.AFUDCEquity)
	if !hasBorrowed && !hasEquity {
		return nil
	}
	if !bidItemPresent(lines, CapitalInterestBidItem) {
		return nil
	}

	base, ok := operations.Activity(CapitalInterestBidItem)
	if !ok {
		base = capitalInterestFallbackActivity
	}
	activity := capitalInterestActivity(base)

	var rows []model.Line
	if hasBorrowed {
		rows = append(rows, afudcLine(activity, afudcBorrowedResource, afudcBorrowedDescription,
			aggregate.CostElementAFUDCBorrowed, totals.AFUDCBorrowed))
	}
	if hasEquity {
		rows = append(rows, afudcLine(activity, afudcEquityResource, afudcEquityDescription,
			aggregate.CostElementAFUDCEquity, totals.AFUDCEquity))
	}
	return rows
}

// capitalInterestActivity derives the capitalized-interest sub-activity by
// flipping the second-to-last character of the base activity from '0' to
// '1' (e.g. "0101-1010A" -> "0101-1011A"). Any other character leaves the
// base activity unchanged.
func capitalInterestActivity(base string) string {
	if len(base) < 2 || base[len(base)-2] != '0' {
		return base
	}
	return base[:len(base)-2] + "1" + base[len(base)-1:]
}

func afudcLine(activity, resource, description string, costElement int, total float64) model.Line {
	return model.Line{
		BidItem:     CapitalInterestBidItem,
		Activity:    activity,
		Resource:    resource,
		Quantity:    1,
		Unit:        model.UnitLumpSum,
		UnitPrice:   total,
		SuppDesc:    strconv.Itoa(costElement),
		Description: description,
		CostType:    model.CostTypeAFUDC,
	}
}

func bidItemPresent(lines []model.Line, bidItem int) bool {
	for _, line := range lines {
		if line.BidItem == bidItem {
			return true
		}
	}
	return false
}
