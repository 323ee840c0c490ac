// Package model defines the data structures shared by the transformation
// stages: raw ledger postings on the way in, actuals lines, resource
// dictionary entries, and narrative notes on the way out.
package model

import "strconv"

// CostType classifies an actuals line and drives normalization and
// presentation rules. The values match the strings the estimating system
// expects in the Cost Type column.
type CostType string

const (
	CostTypeLabor      CostType = "Labor"
	CostTypeContracts  CostType = "Contracts"
	CostTypeAFUDC      CostType = "AFUDC"
	CostTypeLaborAlloc CostType = "Labor Alloc."
	CostTypeOther      CostType = "Other"
)

// Unit is the unit-of-measure for an actuals line. Labor lines are
// hour-based; everything else collapses to a lump sum.
type Unit string

const (
	UnitHours   Unit = "HR"
	UnitLumpSum Unit = "LS"
)

// Fixed values carried on every actuals line.
const (
	// FixedTaxOTPercent is the Tax/OT % column value.
	FixedTaxOTPercent = 100

	// FixedPieces is the Pieces column value.
	FixedPieces = 1
)

// LedgerRecord is one raw posting from the SAP export, after cleaning.
// Records are immutable once produced by ingestion.
type LedgerRecord struct {
	// Order is the accounting order the export covers.
	Order int

	// Operation is the project activity identifier (bid-item source).
	Operation int

	// CostElement is the numeric cost-element code, or 0 when the export
	// carries a symbolic sentinel (e.g. allocation rows).
	CostElement int

	// CostElementRaw preserves the original cell text. It is the grouping
	// key and display value when CostElement is 0.
	CostElementRaw string

	// CostElementName is the descriptive cost-element text.
	CostElementName string

	// PartnerCostCenter distinguishes labor postings by originating unit;
	// 0 means absent.
	PartnerCostCenter int

	// Quantity is the posted quantity (hours for labor postings).
	Quantity float64

	// Value is the posted monetary value in report currency.
	Value float64
}

// CostElementKey returns the grouping/prefix key for the record's cost
// element: the numeric code rendered as digits, or the raw cell text for
// symbolic sentinels.
func (r LedgerRecord) CostElementKey() string {
	if r.CostElement != 0 {
		return strconv.Itoa(r.CostElement)
	}
	return r.CostElementRaw
}

// Line is one finalized row of the Actuals Report.
//
// Invariant: after aggregation there is at most one Line per
// (BidItem, Activity, Resource) originating from real ledger data, and
// Quantity/UnitPrice are consistent with CostType: lump-sum lines always
// carry Quantity 1 with UnitPrice equal to the total spend.
type Line struct {
	BidItem   int
	Activity  string
	Resource  string
	Quantity  float64
	Unit      Unit
	UnitPrice float64

	// SuppDesc carries the originating cost-element code, or is empty for
	// synthesized overhead lines.
	SuppDesc    string
	Description string
	CostType    CostType
}

// ResourceEntry is one row of the Resource File: a distinct resource code
// with its cost-type-prefixed description.
type ResourceEntry struct {
	Code        string
	Description string
}

// NoteEntry is one row of the Actual BoE sheet: the narrative labor summary
// for a (bid-item, activity) pair.
type NoteEntry struct {
	BidItem  int
	Activity string
	Notes    string
}
