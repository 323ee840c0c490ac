// Package ingest loads the raw SAP export, discards the subtotal and header
// rows the source system injects, and exposes the cleaned record set along
// with the order the export covers.
package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/shaunpsauer/Actuals/internal/model"
)

// Column headers of the SAP export. Names and semantics are fixed by the
// export layout; absence of an Order value marks a non-data row.
const (
	ColumnOrder           = "Order"
	ColumnOperation       = "Operation"
	ColumnCostElement     = "Cost Element"
	ColumnCostElementName = "Cost element name"
	ColumnPartnerCenter   = "Partner-CCtr"
	ColumnQuantity        = "Total quantity"
	ColumnValue           = "Val.in rep.cur."
)

var requiredColumns = []string{
	ColumnOrder,
	ColumnOperation,
	ColumnCostElement,
	ColumnCostElementName,
	ColumnPartnerCenter,
	ColumnQuantity,
	ColumnValue,
}

// ReadExport reads the first sheet of the export workbook and returns the
// cleaned records plus the extracted order number (used for naming the
// output file).
func ReadExport(path string) ([]model.LedgerRecord, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "unable to open export file %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, errors.Errorf("export file %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, errors.Wrapf(err, "unable to read sheet %s", sheets[0])
	}
	return Parse(rows)
}

// Parse cleans raw sheet rows. The first row is the header; data rows whose
// Order cell is empty are discarded. Fails with *MissingOrderError when no
// data rows remain or when more than one distinct order appears, and with
// *MalformedRecordError when a numeric field does not parse.
func Parse(rows [][]string) ([]model.LedgerRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, &MissingOrderError{}
	}
	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, 0, err
	}

	var (
		records []model.LedgerRecord
		orders  []int
	)
	seen := make(map[int]bool)

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based spreadsheet row, after the header

		orderCell := strings.TrimSpace(cell(row, columns[ColumnOrder]))
		if orderCell == "" {
			continue
		}
		order, err := parseInt(orderCell)
		if err != nil {
			return nil, 0, &MalformedRecordError{Row: rowNum, Column: ColumnOrder, Value: orderCell}
		}

		operationCell := strings.TrimSpace(cell(row, columns[ColumnOperation]))
		operation, err := parseInt(operationCell)
		if err != nil {
			return nil, 0, &MalformedRecordError{Row: rowNum, Column: ColumnOperation, Value: operationCell}
		}

		// The cost element may be a symbolic sentinel (allocation rows);
		// keep the raw text and leave the numeric code at zero.
		costElementRaw := strings.TrimSpace(cell(row, columns[ColumnCostElement]))
		costElement := 0
		if code, err := parseInt(costElementRaw); err == nil {
			costElement = code
		}

		partnerCell := strings.TrimSpace(cell(row, columns[ColumnPartnerCenter]))
		partner := 0
		if partnerCell != "" {
			partner, err = parseInt(partnerCell)
			if err != nil {
				return nil, 0, &MalformedRecordError{Row: rowNum, Column: ColumnPartnerCenter, Value: partnerCell}
			}
		}

		quantity, err := parseDecimal(cell(row, columns[ColumnQuantity]))
		if err != nil {
			return nil, 0, &MalformedRecordError{Row: rowNum, Column: ColumnQuantity, Value: cell(row, columns[ColumnQuantity])}
		}
		value, err := parseDecimal(cell(row, columns[ColumnValue]))
		if err != nil {
			return nil, 0, &MalformedRecordError{Row: rowNum, Column: ColumnValue, Value: cell(row, columns[ColumnValue])}
		}

		if !seen[order] {
			seen[order] = true
			orders = append(orders, order)
		}
		records = append(records, model.LedgerRecord{
			Order:             order,
			Operation:         operation,
			CostElement:       costElement,
			CostElementRaw:    costElementRaw,
			CostElementName:   strings.TrimSpace(cell(row, columns[ColumnCostElementName])),
			PartnerCostCenter: partner,
			Quantity:          quantity,
			Value:             value,
		})
	}

	if len(records) == 0 {
		return nil, 0, &MissingOrderError{}
	}
	if len(orders) > 1 {
		return nil, 0, &MissingOrderError{Orders: orders}
	}
	return records, orders[0], nil
}

// headerIndex locates every required column in the header row.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	columns := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		i, ok := index[name]
		if !ok {
			return nil, errors.Errorf("export is missing required column %q", name)
		}
		columns[name] = i
	}
	return columns, nil
}

// cell returns the value at idx, tolerating the short rows excelize produces
// when trailing cells are empty.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// parseInt parses an integer cell, tolerating the float rendering SAP
// applies to whole numbers ("804291.0") and thousands separators.
func parseInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

// parseDecimal parses a decimal cell; an empty cell counts as zero.
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
