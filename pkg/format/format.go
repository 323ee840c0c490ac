// Package format provides utilities for rendering quantities and dates in
// the narrative note output.
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shaunpsauer/Actuals/pkg/mathutil"
)

// Quantity returns a quantity string for the BoE notes: whole quantities
// render as bare integers ("40"), fractional quantities keep their decimal
// form ("40.5").
func Quantity(qty float64) string {
	if mathutil.IsWhole(qty) {
		return strconv.FormatInt(int64(qty), 10)
	}
	return strconv.FormatFloat(qty, 'f', -1, 64)
}

// NoteDate returns the note header date in month/day/2-digit-year form with
// no zero padding (e.g. "3/7/26").
func NoteDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%s", int(t.Month()), t.Day(), t.Format("06"))
}
