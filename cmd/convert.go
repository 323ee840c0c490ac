package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shaunpsauer/Actuals/internal/config"
	"github.com/shaunpsauer/Actuals/internal/ingest"
	"github.com/shaunpsauer/Actuals/internal/pipeline"
	"github.com/shaunpsauer/Actuals/internal/refdata"
	"github.com/shaunpsauer/Actuals/internal/workbook"
)

// outputDir overrides the configured output directory when set.
var outputDir string

var convertCmd = &cobra.Command{
	Use:   "convert <export.xlsx>",
	Short: "Convert a SAP export into the HeavyBid import workbook",
	Long: `Convert reads a SAP cost-accounting export, aggregates the postings
into actuals lines, synthesizes the labor-overhead and capitalized-interest
rows, and writes <order>_actuals.xlsx with the Actuals Report, Actual BoE,
and Resource File sheets.`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides the configured directory)")
}

func runConvert(cmd *cobra.Command, args []string) {
	conf, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		fmt.Printf("{\"op\": \"convert\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", cfgFile, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"convert\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger = logger.With(zap.String("run_id", uuid.New().String()))

	if err := convert(logger, conf, args[0]); err != nil {
		logger.Fatal("conversion failed",
			zap.String("op", "convert"),
			zap.Error(err),
		)
	}
}

func convert(logger *zap.Logger, conf *config.Configuration, inputFile string) error {
	ref, err := loadReference(logger, conf.Reference)
	if err != nil {
		return err
	}

	records, order, err := ingest.ReadExport(inputFile)
	if err != nil {
		return err
	}
	logger.Info("loaded export",
		zap.String("op", "convert"),
		zap.String("file", inputFile),
		zap.String("rows", humanize.Comma(int64(len(records)))),
		zap.Int("order", order),
	)

	now := time.Now()
	result := pipeline.Run(logger, records, ref, now)

	dir := conf.Output.Directory
	if outputDir != "" {
		dir = outputDir
	}
	path := workbook.OutputPath(dir, order, now)
	if err := workbook.Write(path, result); err != nil {
		return err
	}

	logger.Info("workbook written",
		zap.String("op", "convert"),
		zap.String("file", path),
		zap.String("actuals_rows", humanize.Comma(int64(len(result.Actuals)))),
		zap.Int("note_entries", len(result.Notes)),
		zap.Int("resources", len(result.Resources)),
	)
	return nil
}

// loadReference builds the run's reference tables: the built-in defaults,
// with YAML overrides applied when configured.
func loadReference(logger *zap.Logger, refConf config.ReferenceConfig) (*refdata.Reference, error) {
	ref := refdata.Default()

	if refConf.OperationsFile != "" {
		ops, err := refdata.LoadOperations(refConf.OperationsFile)
		if err != nil {
			return nil, err
		}
		ref.Operations = ops
		logger.Info("loaded operations override",
			zap.String("op", "convert"),
			zap.String("file", refConf.OperationsFile),
			zap.Int("operations", len(ops)),
		)
	}
	if refConf.CostElementsFile != "" {
		elements, err := refdata.LoadCostElements(refConf.CostElementsFile)
		if err != nil {
			return nil, err
		}
		ref.CostElements = elements
		logger.Info("loaded cost elements override",
			zap.String("op", "convert"),
			zap.String("file", refConf.CostElementsFile),
			zap.Int("costElements", len(elements)),
		)
	}
	return ref, nil
}
