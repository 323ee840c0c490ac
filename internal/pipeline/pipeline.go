// Package pipeline orchestrates the transformation stages over a cleaned
// record set: aggregation, derived-row synthesis, and output assembly. Each
// stage fully consumes its input before the next starts; nothing re-enters
// an earlier stage.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/shaunpsauer/Actuals/internal/aggregate"
	"github.com/shaunpsauer/Actuals/internal/model"
	"github.com/shaunpsauer/Actuals/internal/refdata"
	"github.com/shaunpsauer/Actuals/internal/report"
	"github.com/shaunpsauer/Actuals/internal/synthesize"
)

// Result holds the three coupled output views of one run. The resource
// dictionary and notes are derived from (and consistent with) the actuals.
type Result struct {
	Actuals   []model.Line
	Resources []model.ResourceEntry
	Notes     []model.NoteEntry
}

// Run transforms cleaned ledger records into the three output views. It is
// total over well-formed input: unmapped operations degrade to placeholder
// activities with a warning rather than failing the run.
func Run(logger *zap.Logger, records []model.LedgerRecord, ref *refdata.Reference, now time.Time) *Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	lines, totals := aggregate.Run(logger, records, ref)

	lines = append(lines, synthesize.Overhead(lines, totals)...)
	lines = append(lines, synthesize.AFUDC(lines, totals, ref.Operations)...)

	report.Sort(lines)

	logger.Debug("transformation complete",
		zap.String("op", "pipeline.Run"),
		zap.Int("actuals_rows", len(lines)),
	)

	return &Result{
		Actuals:   lines,
		Resources: report.Resources(lines),
		Notes:     report.Notes(lines, now),
	}
}
