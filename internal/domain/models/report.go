package models

import "github.com/shopspring/decimal"

// Entry is one (CPF, value) pair of a report. Value is a balance, an
// average, or a single transaction amount depending on the report.
type Entry struct {
	CPF   string          `json:"cpf"`
	Value decimal.Decimal `json:"valor"`
}

// MinMax holds the smallest and largest amount seen for one CPF.
type MinMax struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Report bundles every aggregate computed over one admitted set.
//
// MinMax is empty unless a CPF was requested and it appears in the set.
type Report struct {
	Balances    []Entry
	TopBalances []Entry
	TopAverages []Entry
	MinMax      []Entry
}
