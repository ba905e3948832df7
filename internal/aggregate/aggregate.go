// Package aggregate computes per-CPF reports over validated transactions.
//
// Every function takes its whole input as an argument and returns a fresh
// result; nothing is cached between calls. Behavior on transactions that
// did not pass validation.Validate is undefined.
package aggregate

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cpfledger/internal/domain/models"
)

// RankingSize is how many entries the top-N reports keep.
const RankingSize = 3

// amountOf converts a validated amount to an exact decimal.
func amountOf(tx models.Transaction) decimal.Decimal {
	return decimal.NewFromFloat(tx.Amount)
}

// ComputeBalances sums the amounts of each CPF in a single pass. CPFs are
// kept in order of first appearance and transaction counts are recorded
// alongside the sums.
func ComputeBalances(txs []models.Transaction) *Totals {
	t := newTotals()
	for _, tx := range txs {
		t.add(tx.CPF, amountOf(tx))
	}
	return t
}

// ComputeMinMax scans txs for cpf and returns its smallest and largest
// amounts. ok is false when cpf has no transaction.
func ComputeMinMax(cpf string, txs []models.Transaction) (mm models.MinMax, ok bool) {
	for _, tx := range txs {
		if tx.CPF != cpf {
			continue
		}
		v := amountOf(tx)
		if !ok {
			mm = models.MinMax{Min: v, Max: v}
			ok = true
			continue
		}
		if v.LessThan(mm.Min) {
			mm.Min = v
		}
		if v.GreaterThan(mm.Max) {
			mm.Max = v
		}
	}
	return mm, ok
}

// ComputeAverages returns balance / count for each CPF, reusing the counts
// gathered by ComputeBalances.
func ComputeAverages(txs []models.Transaction) *Totals {
	balances := ComputeBalances(txs)
	avg := newTotals()
	for _, cpf := range balances.keys {
		sum, _ := balances.get(cpf)
		n := balances.count(cpf)
		avg.keys = append(avg.keys, cpf)
		avg.values[cpf] = sum.Div(decimal.NewFromInt(n))
		avg.counts[cpf] = n
	}
	return avg
}

// TopN returns the n entries with the highest values, descending. Equal
// values keep first-appearance order. Fewer than n entries are returned
// when t is smaller; n <= 0 yields an empty slice.
func TopN(t *Totals, n int) []models.Entry {
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b models.Entry) int {
		return b.Value.Cmp(a.Value)
	})
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// AccountBalances returns every CPF with its balance. Order carries no
// meaning for consumers.
func AccountBalances(txs []models.Transaction) []models.Entry {
	return ComputeBalances(txs).Entries()
}

// MinMaxForCPF returns [(cpf, min), (cpf, max)], or an empty slice when cpf
// does not appear in txs.
func MinMaxForCPF(cpf string, txs []models.Transaction) []models.Entry {
	mm, ok := ComputeMinMax(cpf, txs)
	if !ok {
		return []models.Entry{}
	}
	return []models.Entry{
		{CPF: cpf, Value: mm.Min},
		{CPF: cpf, Value: mm.Max},
	}
}

// TopBalances ranks CPFs by balance and keeps the first RankingSize.
func TopBalances(txs []models.Transaction) []models.Entry {
	return TopN(ComputeBalances(txs), RankingSize)
}

// TopAverages ranks CPFs by average transaction value and keeps the first
// RankingSize.
func TopAverages(txs []models.Transaction) []models.Entry {
	return TopN(ComputeAverages(txs), RankingSize)
}
