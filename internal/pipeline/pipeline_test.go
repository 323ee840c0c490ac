package pipeline

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/refdata"
)

func record(operation, costElement, partner int, name string, quantity, value float64) model.LedgerRecord {
	rec := model.LedgerRecord{
		Order:             804291,
		Operation:         operation,
		CostElement:       costElement,
		CostElementName:   name,
		PartnerCostCenter: partner,
		Quantity:          quantity,
		Value:             value,
	}
	rec.CostElementRaw = rec.CostElementKey()
	return rec
}

func sampleRecords() []model.LedgerRecord {
	return []model.LedgerRecord{
		record(1, 5590030, 0, "AFUDC-Borrowed", 0, 500),
		record(1, 5590031, 0, "AFUDC-Equity", 0, 300),
		record(1010, 6010123, 0, "Labor Overhead", 0, 200),
		record(1010, 6603001, 5000, "Construction", 40, 4000),
		record(1020, 5490000, 0, "Contracts", 2, 2500),
		record(1020, 6010123, 0, "Labor Overhead", 0, 75),
	}
}

func findLine(t *testing.T, lines []model.Line, resource string) model.Line {
	t.Helper()
	for _, line := range lines {
		if line.Resource == resource {
			return line
		}
	}
	t.Fatalf("no line with resource %q in %+v", resource, lines)
	return model.Line{}
}

func TestRun(t *testing.T) {
	now := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)
	result := Run(zap.NewNop(), sampleRecords(), refdata.Default(), now)

	// 1 labor + 1 contracts + 2 overhead + 2 capitalized-interest lines.
	if len(result.Actuals) != 6 {
		t.Fatalf("Run() produced %d actuals, expected 6: %+v", len(result.Actuals), result.Actuals)
	}

	labor := findLine(t, result.Actuals, "6CONSTR5000")
	if labor.Quantity != 40 || labor.UnitPrice != 100 || labor.Unit != model.UnitHours {
		t.Errorf("labor line = (qty %v, price %v, unit %q), expected (40, 100, HR)",
			labor.Quantity, labor.UnitPrice, labor.Unit)
	}

	borrowed := findLine(t, result.Actuals, "6AFUDC-Bo")
	if borrowed.Activity != "0101-1011A" || borrowed.UnitPrice != 500 {
		t.Errorf("borrowed line = (%q, %v), expected (0101-1011A, 500)", borrowed.Activity, borrowed.UnitPrice)
	}
	equity := findLine(t, result.Actuals, "6AFUDC-Eq")
	if equity.Activity != "0101-1011A" || equity.UnitPrice != 300 {
		t.Errorf("equity line = (%q, %v), expected (0101-1011A, 300)", equity.Activity, equity.UnitPrice)
	}

	// Overhead lands on both bid-items, including the contracts-only one.
	overheadActivities := make(map[string]float64)
	for _, line := range result.Actuals {
		if line.CostType == model.CostTypeLaborAlloc {
			overheadActivities[line.Activity] = line.UnitPrice
		}
	}
	if overheadActivities["0101-1010A"] != 200 || overheadActivities["0101-1020A"] != 75 {
		t.Errorf("overhead allocation = %v, expected 200 on 0101-1010A and 75 on 0101-1020A", overheadActivities)
	}

	// One resource entry per distinct resource code.
	distinct := make(map[string]bool)
	for _, line := range result.Actuals {
		distinct[line.Resource] = true
	}
	if len(result.Resources) != len(distinct) {
		t.Errorf("resource dictionary has %d entries, expected %d distinct codes",
			len(result.Resources), len(distinct))
	}

	// Notes exist only for the group with real labor.
	if len(result.Notes) != 1 {
		t.Fatalf("Run() produced %d notes, expected 1: %+v", len(result.Notes), result.Notes)
	}
	note := result.Notes[0]
	if note.BidItem != 1010 || note.Activity != "0101-1010A" {
		t.Errorf("note placed at (%d, %q), expected (1010, 0101-1010A)", note.BidItem, note.Activity)
	}
	if !strings.HasPrefix(note.Notes, "3/7/26: \n") {
		t.Errorf("note header = %q, expected 3/7/26 prefix", note.Notes)
	}
	if !strings.Contains(note.Notes, "CONSTR5000: 40 MH Actuals to date") {
		t.Errorf("note body = %q, missing labor line", note.Notes)
	}
	if strings.Contains(note.Notes, "Labor OH") {
		t.Errorf("note body mentions the overhead resource: %q", note.Notes)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	now := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)
	first := Run(nil, sampleRecords(), refdata.Default(), now)
	second := Run(nil, sampleRecords(), refdata.Default(), now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over identical input diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRunSortsActuals(t *testing.T) {
	now := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)
	result := Run(nil, sampleRecords(), refdata.Default(), now)

	for i := 1; i < len(result.Actuals); i++ {
		a, b := result.Actuals[i-1], result.Actuals[i]
		if a.BidItem > b.BidItem {
			t.Errorf("actuals out of order at %d: bid-item %d before %d", i, a.BidItem, b.BidItem)
		}
		if a.BidItem == b.BidItem && a.Activity > b.Activity {
			t.Errorf("actuals out of order at %d: activity %q before %q", i, a.Activity, b.Activity)
		}
	}
}

func TestRunWithoutCapitalInterestBidItem(t *testing.T) {
	records := []model.LedgerRecord{
		record(1, 5590030, 0, "AFUDC-Borrowed", 0, 500),
		record(1020, 5490000, 0, "Contracts", 2, 2500),
	}
	now := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)

	result := Run(nil, records, refdata.Default(), now)
	for _, line := range result.Actuals {
		if line.CostType == model.CostTypeAFUDC {
			t.Errorf("capitalized-interest line emitted without its bid-item: %+v", line)
		}
	}
	if len(result.Notes) != 0 {
		t.Errorf("Run() produced %d notes without labor, expected 0", len(result.Notes))
	}
}
