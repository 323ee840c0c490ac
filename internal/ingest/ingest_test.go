package ingest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var header = []string{
	"Order", "Operation", "Cost Element", "Cost element name",
	"Partner-CCtr", "Total quantity", "Val.in rep.cur.",
}

func TestParse(t *testing.T) {
	rows := [][]string{
		header,
		{"804291", "1010", "6603001", "Construction", "5000", "40", "4000"},
		{"", "", "", "Subtotal", "", "120", "12000"}, // summary row, no Order
		{"804291.0", "1020", "5490000", "Contracts", "", "0", "2500.5"},
		{"804291", "1010", "Labor Alloc.", "Labor Alloc.", "", "", "300"},
	}

	records, order, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if order != 804291 {
		t.Errorf("Parse() order = %d, expected 804291", order)
	}
	if len(records) != 3 {
		t.Fatalf("Parse() returned %d records, expected 3", len(records))
	}

	first := records[0]
	if first.Operation != 1010 || first.CostElement != 6603001 || first.PartnerCostCenter != 5000 {
		t.Errorf("first record = %+v, unexpected fields", first)
	}
	if first.Quantity != 40 || first.Value != 4000 {
		t.Errorf("first record sums = (%v, %v), expected (40, 4000)", first.Quantity, first.Value)
	}

	second := records[1]
	if second.PartnerCostCenter != 0 {
		t.Errorf("empty partner center = %d, expected 0", second.PartnerCostCenter)
	}
	if second.Value != 2500.5 {
		t.Errorf("second record value = %v, expected 2500.5", second.Value)
	}

	third := records[2]
	if third.CostElement != 0 || third.CostElementRaw != "Labor Alloc." {
		t.Errorf("symbolic cost element = (%d, %q), expected (0, \"Labor Alloc.\")", third.CostElement, third.CostElementRaw)
	}
	if third.Quantity != 0 {
		t.Errorf("empty quantity = %v, expected 0", third.Quantity)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name          string
		rows          [][]string
		missingOrder  bool
		malformedCol  string
		malformedRow  int
		genericErrSub string
	}{
		{
			name:         "No rows at all",
			rows:         nil,
			missingOrder: true,
		},
		{
			name: "Only summary rows",
			rows: [][]string{
				header,
				{"", "", "", "Report header", "", "", ""},
				{"", "", "", "Subtotal", "", "10", "100"},
			},
			missingOrder: true,
		},
		{
			name: "Mixed orders",
			rows: [][]string{
				header,
				{"804291", "1010", "6603001", "Construction", "", "1", "10"},
				{"804292", "1010", "6603001", "Construction", "", "1", "10"},
			},
			missingOrder: true,
		},
		{
			name: "Malformed quantity",
			rows: [][]string{
				header,
				{"804291", "1010", "6603001", "Construction", "", "forty", "10"},
			},
			malformedCol: ColumnQuantity,
			malformedRow: 2,
		},
		{
			name: "Malformed operation",
			rows: [][]string{
				header,
				{"804291", "", "6603001", "Construction", "", "1", "10"},
			},
			malformedCol: ColumnOperation,
			malformedRow: 2,
		},
		{
			name: "Malformed partner center",
			rows: [][]string{
				header,
				{"804291", "1010", "6603001", "Construction", "north", "1", "10"},
			},
			malformedCol: ColumnPartnerCenter,
			malformedRow: 2,
		},
		{
			name: "Missing required column",
			rows: [][]string{
				{"Order", "Operation", "Cost Element", "Cost element name", "Partner-CCtr", "Total quantity"},
			},
			genericErrSub: "Val.in rep.cur.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.rows)
			if err == nil {
				t.Fatalf("Parse() error = nil, expected an error")
			}

			var missingOrder *MissingOrderError
			var malformed *MalformedRecordError
			switch {
			case tt.missingOrder:
				if !errors.As(err, &missingOrder) {
					t.Errorf("Parse() error = %v, expected *MissingOrderError", err)
				}
			case tt.malformedCol != "":
				if !errors.As(err, &malformed) {
					t.Fatalf("Parse() error = %v, expected *MalformedRecordError", err)
				}
				if malformed.Column != tt.malformedCol || malformed.Row != tt.malformedRow {
					t.Errorf("MalformedRecordError = row %d column %q, expected row %d column %q",
						malformed.Row, malformed.Column, tt.malformedRow, tt.malformedCol)
				}
			case tt.genericErrSub != "":
				if !strings.Contains(err.Error(), tt.genericErrSub) {
					t.Errorf("Parse() error = %v, expected mention of %q", err, tt.genericErrSub)
				}
			}
		})
	}
}

func TestParseToleratesFloatRenderedIntegers(t *testing.T) {
	rows := [][]string{
		header,
		{"804291.0", "1010.0", "6603001.0", "Construction", "5000.0", "1,240", "124,000.50"},
	}

	records, order, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if order != 804291 {
		t.Errorf("order = %d, expected 804291", order)
	}
	rec := records[0]
	if rec.Operation != 1010 || rec.CostElement != 6603001 || rec.PartnerCostCenter != 5000 {
		t.Errorf("record = %+v, unexpected fields", rec)
	}
	if rec.Quantity != 1240 || rec.Value != 124000.50 {
		t.Errorf("record sums = (%v, %v), expected (1240, 124000.50)", rec.Quantity, rec.Value)
	}
}

func TestReadExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	fixture := [][]interface{}{
		{"Order", "Operation", "Cost Element", "Cost element name", "Partner-CCtr", "Total quantity", "Val.in rep.cur."},
		{nil, nil, nil, "Report header", nil, nil, nil},
		{804291, 1010, 6603001, "Construction", 5000, 40, 4000},
		{804291, 1020, 5490000, "Contracts", nil, 0, 2500},
	}
	for i, row := range fixture {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("coordinates: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("writing fixture row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}

	records, order, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport() error = %v", err)
	}
	if order != 804291 {
		t.Errorf("ReadExport() order = %d, expected 804291", order)
	}
	if len(records) != 2 {
		t.Fatalf("ReadExport() returned %d records, expected 2", len(records))
	}
	if records[0].Quantity != 40 || records[0].Value != 4000 {
		t.Errorf("record sums = (%v, %v), expected (40, 4000)", records[0].Quantity, records[0].Value)
	}
}

func TestReadExportMissingFile(t *testing.T) {
	if _, _, err := ReadExport(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Errorf("ReadExport() on a missing file returned nil error")
	}
}
