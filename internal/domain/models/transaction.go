package models

// Transaction represents a single ledger entry ("lançamento") as supplied
// by an input provider.
//
// Fields:
//   - CPF: Brazilian taxpayer identifier, expected as 11 decimal digits.
//   - Amount: signed monetary value. Must be finite and within
//     [-2000.00, 15000.00] to be admitted.
//
// Transactions are values and are never mutated after creation.
type Transaction struct {
	CPF    string  `json:"cpf"`
	Amount float64 `json:"valor"`
}

// Record is a Transaction plus the position it was read from.
//
// Source is the base name of the input file and Line is the 1-based line
// number inside it (the header is line 1).
type Record struct {
	Source string
	Line   int
	Transaction
}
