package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/guttosm/cpfledger/config"
	"github.com/guttosm/cpfledger/internal/domain/dto"
	"github.com/guttosm/cpfledger/internal/domain/models"
	"github.com/guttosm/cpfledger/internal/ingestion"
	"github.com/guttosm/cpfledger/internal/logger"
	"github.com/guttosm/cpfledger/internal/service"
)

// options carries the resolved CLI flags for one run.
type options struct {
	mode     string
	dir      string
	pattern  string
	file     string
	cpf      string
	parallel int
}

// loadRecords reads a single file when --file is set, otherwise every
// matching file under --dir.
func loadRecords(ctx context.Context, opts options) ([]models.Record, error) {
	if opts.file != "" {
		recs, err := ingestion.LoadFile(ctx, opts.file)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", opts.file, err)
		}
		return recs, nil
	}
	return ingestion.ProcessDirectory(ctx, opts.dir, opts.pattern, opts.parallel)
}

// writeJSON encodes v as indented JSON on w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run executes one CLI invocation and returns the process exit code.
//
// Modes:
//   - report:   validate, admit, and print balances, rankings and (with --cpf) min/max.
//   - validate: validate only and print every rejected line with its message.
//
// The JSON document goes to stdout; logs go to stderr.
func run(ctx context.Context, opts options, stdout io.Writer) int {
	runID := uuid.NewString()
	log := logger.WithRun(runID)

	if opts.mode != "report" && opts.mode != "validate" {
		log.Error().Str("mode", opts.mode).Msg("unknown mode")
		_ = writeJSON(stdout, dto.NewErrorResponse("unknown mode "+opts.mode, nil))
		return 2
	}

	records, err := loadRecords(ctx, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to load ledger")
		_ = writeJSON(stdout, dto.NewErrorResponse("failed to load ledger", err))
		return 1
	}

	svc := service.NewLedgerService(log)
	admitted, rejected := svc.Admit(records)

	var doc any
	switch opts.mode {
	case "validate":
		doc = dto.NewValidationResponse(runID, len(admitted), rejected)
	case "report":
		doc = dto.NewReportResponse(runID, len(admitted), len(rejected), svc.Report(admitted, opts.cpf))
	}

	if err := writeJSON(stdout, doc); err != nil {
		log.Error().Err(err).Msg("failed to write output")
		return 1
	}
	log.Info().Str("mode", opts.mode).Int("records", len(records)).Msg("run completed")
	return 0
}

// main is the entry point of the cpfledger CLI.
//
// Flags:
//   - --mode:     "report" (default) or "validate".
//   - --dir:      directory with ledger files. Defaults to INPUT_DIR.
//   - --pattern:  glob for file names inside --dir. Defaults to INPUT_PATTERN.
//   - --file:     single ledger file; overrides --dir.
//   - --cpf:      CPF whose smallest and largest transactions are reported.
//   - --parallel: files parsed concurrently (0=auto). Defaults to INPUT_PARALLEL.
func main() {
	config.LoadConfig()
	logger.Init()

	var opts options
	flag.StringVar(&opts.mode, "mode", "report", "Mode: report or validate")
	flag.StringVar(&opts.dir, "dir", config.AppConfig.Input.Dir, "Directory with ledger files")
	flag.StringVar(&opts.pattern, "pattern", config.AppConfig.Input.Pattern, "Glob for ledger file names")
	flag.StringVar(&opts.file, "file", "", "Single ledger file (overrides --dir)")
	flag.StringVar(&opts.cpf, "cpf", "", "CPF for the min/max report")
	flag.IntVar(&opts.parallel, "parallel", config.AppConfig.Input.Parallel, "How many files to parse concurrently (0=auto)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, opts, os.Stdout)
	stop()
	os.Exit(code)
}
