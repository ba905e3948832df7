package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "11144477735", true},
		{"valid second", "52998224725", true},
		{"first verifier wraps to zero", "12345678909", true},
		{"both verifiers wrap to zero", "98765432100", true},
		{"formatted with punctuation", "111.444.777-35", true},
		{"wrong second verifier", "11144477736", false},
		{"wrong first verifier", "11144477745", false},
		{"too short", "1114447773", false},
		{"too long", "111444777350", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidCPF(tc.in))
		})
	}
}

func TestIsValidCPF_RepeatedDigitsRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		assert.Falsef(t, IsValidCPF(cpf), "%s must be rejected", cpf)
	}
}

func TestHasOnlyDigits(t *testing.T) {
	assert.True(t, HasOnlyDigits("0"))
	assert.True(t, HasOnlyDigits("11144477735"))
	assert.True(t, HasOnlyDigits("123"), "length is not checked here")
	assert.False(t, HasOnlyDigits(""))
	assert.False(t, HasOnlyDigits("111.444.777-35"))
	assert.False(t, HasOnlyDigits("1114447773a"))
	assert.False(t, HasOnlyDigits(" 11144477735"))
}

func TestVerifierDigit(t *testing.T) {
	// 111444777 -> sum 162, 162 mod 11 = 8, 11-8 = 3
	assert.Equal(t, 3, verifierDigit([]int{1, 1, 1, 4, 4, 4, 7, 7, 7}))
	// 1114447773 -> sum 204, 204 mod 11 = 6, 11-6 = 5
	assert.Equal(t, 5, verifierDigit([]int{1, 1, 1, 4, 4, 4, 7, 7, 7, 3}))
	// 987654321 -> sum 330, 330 mod 11 = 0, 11 > 9 -> 0
	assert.Equal(t, 0, verifierDigit([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}))
}
