package ingest

import "fmt"

// MissingOrderError is fatal: the export either has no data rows (every row
// lacked an Order value) or spans more than one order, while the
// transformation expects an export covering exactly one accounting order.
type MissingOrderError struct {
	// Orders holds the distinct order numbers seen, in first-seen order.
	// Empty when no data rows remained at all.
	Orders []int
}

func (e *MissingOrderError) Error() string {
	if len(e.Orders) == 0 {
		return "no rows with an Order value found in export"
	}
	return fmt.Sprintf("export covers %d distinct orders %v, expected exactly one", len(e.Orders), e.Orders)
}

// MalformedRecordError is fatal: a numeric field failed to parse. The
// offending row is identified rather than silently coerced to zero, since
// downstream estimating consumes this data for billing.
type MalformedRecordError struct {
	// Row is the 1-based spreadsheet row number.
	Row    int
	Column string
	Value  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("row %d: malformed %s value %q", e.Row, e.Column, e.Value)
}
