package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cpfledger/internal/logger"
)

func writeLedger(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func quiet(t *testing.T) {
	t.Helper()
	logger.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

const ledger = "cpf;valor\n" +
	"11144477735;100\n" +
	"11144477735;50\n" +
	"52998224725;200\n" +
	"11144477736;10\n" +
	"12345678909;15000,01\n" +
	"98765432100;20.000\n"

type entry struct {
	CPF   string `json:"cpf"`
	Value string `json:"valor"`
}

type reportDoc struct {
	RunID       string   `json:"run_id"`
	Admitted    int      `json:"admitted"`
	Rejected    int      `json:"rejected"`
	TopBalances []entry  `json:"maiores_saldos"`
	MinMax      *[]entry `json:"menor_maior"`
}

func TestRun_Report(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	writeLedger(t, dir, "jan.csv", ledger)

	cases := []struct {
		name       string
		cpf        string
		wantMinMax *[]entry
	}{
		{name: "no cpf requested", cpf: ""},
		{name: "known cpf", cpf: "11144477735", wantMinMax: &[]entry{{"11144477735", "50"}, {"11144477735", "100"}}},
		{name: "cpf without admitted transactions", cpf: "98765432100", wantMinMax: &[]entry{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(context.Background(), options{mode: "report", dir: dir, pattern: "*.csv", cpf: tc.cpf}, &out)
			require.Equal(t, 0, code, out.String())

			var doc reportDoc
			require.NoError(t, json.Unmarshal(out.Bytes(), &doc), out.String())
			assert.NotEmpty(t, doc.RunID)
			assert.Equal(t, 3, doc.Admitted)
			assert.Equal(t, 3, doc.Rejected)
			assert.Equal(t, []entry{{"52998224725", "200"}, {"11144477735", "150"}}, doc.TopBalances)
			assert.Equal(t, tc.wantMinMax, doc.MinMax)
		})
	}
}

func TestRun_Validate(t *testing.T) {
	quiet(t)
	path := writeLedger(t, t.TempDir(), "jan.csv", ledger)

	var out bytes.Buffer
	require.Equal(t, 0, run(context.Background(), options{mode: "validate", file: path}, &out))

	var doc struct {
		Admitted   int `json:"admitted"`
		Rejections []struct {
			Line    int    `json:"line"`
			Message string `json:"message"`
		} `json:"rejections"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 3, doc.Admitted)
	require.Len(t, doc.Rejections, 3)
	assert.Equal(t, 5, doc.Rejections[0].Line)
	assert.Equal(t, 6, doc.Rejections[1].Line)
	assert.Equal(t, 7, doc.Rejections[2].Line)
	assert.Contains(t, doc.Rejections[2].Message, "exceeds the maximum")
}

func TestRun_Errors(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	writeLedger(t, dir, "bad.csv", "nope\n")

	cases := []struct {
		name string
		opts options
		want int
	}{
		{name: "unknown mode", opts: options{mode: "serve", dir: dir, pattern: "*.csv"}, want: 2},
		{name: "bad header", opts: options{mode: "report", dir: dir, pattern: "*.csv"}, want: 1},
		{name: "no files", opts: options{mode: "report", dir: dir, pattern: "*.txt"}, want: 1},
		{name: "missing file", opts: options{mode: "report", file: filepath.Join(dir, "nope.csv")}, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tc.want, run(context.Background(), tc.opts, &out))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &doc), "error document not json")
			assert.NotEmpty(t, doc["message"])
			assert.NotEmpty(t, doc["timestamp"])
		})
	}
}
