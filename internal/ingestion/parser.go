package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/cpfledger/internal/domain/models"
)

// expectedHeaders enforces strict column ordering for ledger exports.
// If the header doesn't match EXACTLY (order + count), the file is refused.
var expectedHeaders = []string{
	"cpf",
	"valor",
}

// LoadFile opens path and parses every ledger line in it.
//
// It fails on:
//   - header not matching expected order/length
//   - a line with a column count other than len(expectedHeaders)
//   - unrecoverable I/O errors
//
// It does NOT fail on bad values: a CPF is kept verbatim and an amount that
// cannot be parsed becomes NaN, so both reach the validator and are reported
// as rule violations for that line.
func LoadFile(ctx context.Context, path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(ctx, f, filepath.Base(path))
}

// parse reads a ';'-separated ledger stream. source is stamped on each record.
func parse(ctx context.Context, in io.Reader, source string) ([]models.Record, error) {
	r := csv.NewReader(in)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff") // spreadsheet exports often start with a BOM
		if !strings.EqualFold(strings.TrimSpace(h), expectedHeaders[i]) {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []models.Record
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line: %w", err)
		}
		line, _ := r.FieldPos(0)

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(expectedHeaders), len(rec))
		}

		out = append(out, models.Record{
			Source:      source,
			Line:        line,
			Transaction: recordToTransaction(rec),
		})
	}
	return out, nil
}

// recordToTransaction converts one CSV record (already validated len==2).
//
// Column order:
//
//	0 cpf    → CPF (string, surrounding spaces trimmed, otherwise untouched)
//	1 valor  → Amount (float; "1.234,56", "15.000" and "1234.56" accepted; NaN otherwise)
func recordToTransaction(rec []string) models.Transaction {
	return models.Transaction{
		CPF:    strings.TrimSpace(rec[0]),
		Amount: parseAmount(rec[1]),
	}
}

// Accepted amount notations. Exponents, hex, "Inf" and "NaN" match none of them.
var (
	// 1500 | 1500.7 | 1500.75
	plainAmount   = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)
	// 1.500 | 15.000 | 1.500.000 (dots group thousands, no fraction)
	groupedAmount = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
	// 1500,75 | 1.500,75 | -2000,00
	commaAmount   = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})+|\d+),\d{1,2}$`)
)

// parseAmount accepts the Brazilian ("1.500,75", "15.000") and the plain
// ("1500.75") notation. A dot followed by exactly three digits groups
// thousands; one or two digits after a dot are cents. Anything else,
// including an empty cell, is NaN.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case plainAmount.MatchString(s):
	case groupedAmount.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	case commaAmount.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
