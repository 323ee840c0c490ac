// Package workbook writes the three output views into one .xlsx file. The
// write is atomic on success: the workbook is saved to a temporary file in
// the destination directory and renamed over the final path, so a partially
// written file is never visible under the output name.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/pipeline"
)

// Sheet names of the output workbook.
const (
	SheetActuals   = "Actuals Report"
	SheetNotes     = "Actual BoE"
	SheetResources = "Resource File"
)

// actualsColumns is the fixed column order of the Actuals Report sheet.
var actualsColumns = []interface{}{
	"BidItem", "Activity", "Resource", "Quantity", "Units", "Unit Price",
	"Tax/OT %", "Crew Code", "Pieces", "Currency", "EOE %", "Rent Percent",
	"Escalation Percent", "Hours Adjustment", "Supp. Desc", "MH/Unit",
	"Material Factor Type", "Material Factor", "Description", "Cost Type",
}

// notesColumns is the column order of the Actual BoE sheet.
var notesColumns = []interface{}{"BidItem", "Activity", "Notes"}

// resourceColumns is the column order of the Resource File sheet. Most
// fields are intentionally blank; only code and description are populated.
var resourceColumns = []interface{}{
	"Local Resource Code", "Description", "Unit", "Cost", "Non-Tax?(Y/N)",
	"Job Cost Code 1", "Job Cost Code 2", "Job Cost Description",
	"Joint Venture Material Type", "MH/Unit", "Header Type? (Y/N)",
	"Quote Folder", "Schedule Code",
}

// OutputPath builds the output file path for an order: <order>_actuals.xlsx
// in dir, with a timestamp suffix when that name is already taken.
func OutputPath(dir string, order int, now time.Time) string {
	path := filepath.Join(dir, fmt.Sprintf("%d_actuals.xlsx", order))
	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(dir, fmt.Sprintf("%d_actuals_%s.xlsx", order, now.Format("20060102_150405")))
	}
	return path
}

// Write saves the three output sheets to path.
func Write(path string, result *pipeline.Result) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetActuals); err != nil {
		return errors.Wrap(err, "unable to name actuals sheet")
	}
	for _, sheet := range []string{SheetNotes, SheetResources} {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "unable to create sheet %s", sheet)
		}
	}

	if err := writeActuals(f, result.Actuals); err != nil {
		return err
	}
	if err := writeNotes(f, result.Notes); err != nil {
		return err
	}
	if err := writeResources(f, result.Resources); err != nil {
		return err
	}

	return saveAtomic(f, path)
}

func writeActuals(f *excelize.File, lines []model.Line) error {
	if err := setRow(f, SheetActuals, 1, actualsColumns); err != nil {
		return err
	}
	for i, line := range lines {
		row := []interface{}{
			line.BidItem,
			line.Activity,
			line.Resource,
			line.Quantity,
			string(line.Unit),
			line.UnitPrice,
			model.FixedTaxOTPercent,
			nil, // Crew Code
			model.FixedPieces,
			nil, // Currency
			nil, // EOE %
			nil, // Rent Percent
			nil, // Escalation Percent
			nil, // Hours Adjustment
			suppDescCell(line.SuppDesc),
			nil, // MH/Unit
			nil, // Material Factor Type
			nil, // Material Factor
			line.Description,
			string(line.CostType),
		}
		if err := setRow(f, SheetActuals, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeNotes(f *excelize.File, notes []model.NoteEntry) error {
	if err := setRow(f, SheetNotes, 1, notesColumns); err != nil {
		return err
	}
	for i, note := range notes {
		row := []interface{}{note.BidItem, note.Activity, note.Notes}
		if err := setRow(f, SheetNotes, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeResources(f *excelize.File, entries []model.ResourceEntry) error {
	if err := setRow(f, SheetResources, 1, resourceColumns); err != nil {
		return err
	}
	for i, entry := range entries {
		row := make([]interface{}, len(resourceColumns))
		row[0] = entry.Code
		row[1] = entry.Description
		if err := setRow(f, SheetResources, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "invalid row %d", row)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "unable to write %s row %d", sheet, row)
	}
	return nil
}

// suppDescCell writes numeric cost-element codes as numbers, symbolic
// sentinels as text, and leaves the cell blank for synthesized overhead
// lines.
func suppDescCell(suppDesc string) interface{} {
	if suppDesc == "" {
		return nil
	}
	if code, err := strconv.Atoi(suppDesc); err == nil {
		return code
	}
	return suppDesc
}

func saveAtomic(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".actuals-*.xlsx")
	if err != nil {
		return errors.Wrapf(err, "unable to create temporary file in %s", dir)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "unable to close temporary file")
	}
	if err := f.SaveAs(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "unable to save workbook %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "unable to move workbook into place at %s", path)
	}
	return nil
}
