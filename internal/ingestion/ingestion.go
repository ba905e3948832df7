package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cpfledger/internal/domain/models"
	"github.com/guttosm/cpfledger/internal/logger"
)

// maxParallelFiles caps how many files are parsed at the same time.
const maxParallelFiles = 8

// ProcessDirectory loads every file in dir whose name matches pattern
// (filepath.Match syntax, e.g. "*.csv").
//
// Parameters:
//   - ctx:      context for cancellation.
//   - dir:      directory containing ledger files.
//   - pattern:  glob applied to file names.
//   - parallel: files parsed concurrently (0 = min(NumCPU, 8), clamped to 1..8).
//
// Behavior:
//   - Files are sorted by name and records are returned file by file in
//     that order, regardless of which goroutine finished first.
//   - If any file fails, the rest are cancelled and the first error is returned.
//   - No matching file is an error.
func ProcessDirectory(ctx context.Context, dir, pattern string, parallel int) ([]models.Record, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matching %q in %s", pattern, dir)
	}
	sort.Strings(files)

	maxParallel := resolveParallel(parallel)
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("ingestion start")

	// Each goroutine owns one slot, so no locking is needed.
	results := make([][]models.Record, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(file)

			recs, err := LoadFile(gctx, file)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", file, err)
			}
			results[i] = recs

			logger.L().Debug().Int("idx", i+1).Int("total", len(files)).Str("file", base).Int("rows", len(recs)).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]models.Record, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}

	logger.L().Info().Int("files", len(files)).Int("rows", total).Msg("ingestion done")
	return out, nil
}

func resolveParallel(parallel int) int {
	if parallel > 0 {
		if parallel > maxParallelFiles {
			return maxParallelFiles
		}
		return parallel
	}
	if c := runtime.NumCPU(); c < maxParallelFiles {
		return c
	}
	return maxParallelFiles
}
