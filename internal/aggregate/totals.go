package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/cpfledger/internal/domain/models"
)

// Totals is a CPF → value mapping that remembers the order in which each
// CPF was first seen. TopN relies on that order to break ties.
type Totals struct {
	keys   []string
	values map[string]decimal.Decimal
	counts map[string]int64
}

func newTotals() *Totals {
	return &Totals{
		values: make(map[string]decimal.Decimal),
		counts: make(map[string]int64),
	}
}

// add accumulates v under cpf and bumps its transaction count.
func (t *Totals) add(cpf string, v decimal.Decimal) {
	cur, ok := t.values[cpf]
	if !ok {
		t.keys = append(t.keys, cpf)
	}
	t.values[cpf] = cur.Add(v)
	t.counts[cpf]++
}

// Len returns the number of distinct CPFs.
func (t *Totals) Len() int { return len(t.keys) }

// get returns the value stored for cpf.
func (t *Totals) get(cpf string) (decimal.Decimal, bool) {
	v, ok := t.values[cpf]
	return v, ok
}

// count returns how many transactions contributed to cpf.
func (t *Totals) count(cpf string) int64 { return t.counts[cpf] }

// Entries returns a fresh slice of pairs in first-appearance order.
func (t *Totals) Entries() []models.Entry {
	out := make([]models.Entry, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, models.Entry{CPF: k, Value: t.values[k]})
	}
	return out
}
