package validation

import (
	"math"
	"strings"

	"github.com/guttosm/cpfledger/internal/domain/models"
)

// Amount bounds accepted for a single transaction, inclusive.
const (
	MaxAmount = 15000.00
	MinAmount = -2000.00
)

// Header is the first line of every rendered rejection message.
const Header = "transaction rejected for the following reason(s):"

// Violation identifies one failed rule. The declaration order is the order
// in which violations are reported.
type Violation int

const (
	CPFInvalidCharacters Violation = iota + 1
	CPFInvalidChecksum
	AmountNotANumber
	AmountAboveMaximum
	AmountBelowMinimum
)

var violationText = map[Violation]string{
	CPFInvalidCharacters: "CPF contains invalid characters.",
	CPFInvalidChecksum:   "CPF is invalid (verifier digits do not match).",
	AmountNotANumber:     "amount is not a valid number.",
	AmountAboveMaximum:   "amount exceeds the maximum of 15000.00.",
	AmountBelowMinimum:   "amount is below the minimum of -2000.00.",
}

// String returns the fixed bullet text for v.
func (v Violation) String() string {
	if s, ok := violationText[v]; ok {
		return s
	}
	return "unknown violation."
}

// Result is the outcome of validating one transaction. The zero value is valid.
type Result struct {
	Violations []Violation
}

// Valid reports whether no rule was violated.
func (r Result) Valid() bool { return len(r.Violations) == 0 }

// Message renders r; see Render.
func (r Result) Message() string { return Render(r.Violations) }

// Validate evaluates every rule against tx and collects the violations.
//
// Rules are independent and all of them run, with one exception: the
// checksum is only computed when the CPF is made of digits, since a
// malformed identifier cannot be checksum-validated.
//
// Order of violations:
//  1. CPF characters / checksum
//  2. amount is a finite number
//  3. amount <= MaxAmount
//  4. amount >= MinAmount
func Validate(tx models.Transaction) Result {
	var out []Violation

	if !HasOnlyDigits(tx.CPF) {
		out = append(out, CPFInvalidCharacters)
	} else if !IsValidCPF(tx.CPF) {
		out = append(out, CPFInvalidChecksum)
	}

	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		out = append(out, AmountNotANumber)
	}
	// NaN compares false on both sides, so it only reports the type rule.
	if tx.Amount > MaxAmount {
		out = append(out, AmountAboveMaximum)
	}
	if tx.Amount < MinAmount {
		out = append(out, AmountBelowMinimum)
	}

	return Result{Violations: out}
}

// Render formats violations as a header line followed by one "- text" line
// per violation. It returns "" when there is nothing to report.
//
// Example:
//
//	transaction rejected for the following reason(s):
//	- CPF contains invalid characters.
//	- amount exceeds the maximum of 15000.00.
func Render(violations []Violation) string {
	if len(violations) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, v := range violations {
		b.WriteString("- ")
		b.WriteString(v.String())
		b.WriteString("\n")
	}
	return b.String()
}
