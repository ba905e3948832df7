package validation

import "regexp"

// digitsOnly matches strings made exclusively of decimal digits.
var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// cpfLength is the number of digits in a CPF, both verifier digits included.
const cpfLength = 11

// HasOnlyDigits reports whether s is a non-empty run of decimal digits.
func HasOnlyDigits(s string) bool {
	return digitsOnly.MatchString(s)
}

// IsValidCPF reports whether s carries a CPF whose two verifier digits match.
//
// Behavior:
//   - Non-digit characters are stripped first, so "111.444.777-35" is accepted.
//   - The remaining digits must be exactly 11.
//   - Sequences of one repeated digit ("00000000000", "11111111111", ...)
//     satisfy the arithmetic but are registry placeholders and are rejected.
//   - Verifier 1 is computed over digits 0..8 with weights 10..2, verifier 2
//     over digits 0..9 with weights 11..2. For each, v = 11 - (sum mod 11),
//     and v = 0 when v > 9.
func IsValidCPF(s string) bool {
	d := make([]int, 0, cpfLength)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			d = append(d, int(r-'0'))
		}
	}
	if len(d) != cpfLength {
		return false
	}
	if allSame(d) {
		return false
	}
	return verifierDigit(d[:9]) == d[9] && verifierDigit(d[:10]) == d[10]
}

// verifierDigit computes the check digit for the given prefix. Weights start
// at len(prefix)+1 and decrease down to 2.
func verifierDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, n := range prefix {
		sum += n * weight
		weight--
	}
	v := 11 - sum%11
	if v > 9 {
		return 0
	}
	return v
}

func allSame(d []int) bool {
	for _, n := range d[1:] {
		if n != d[0] {
			return false
		}
	}
	return true
}
