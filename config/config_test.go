package config

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when nothing is set.
func TestLoadConfig_Defaults(t *testing.T) {
	_ = os.Unsetenv("INPUT_DIR")
	_ = os.Unsetenv("INPUT_PATTERN")
	_ = os.Unsetenv("INPUT_PARALLEL")

	LoadConfig()

	assert.Equal(t, InputConfig{Dir: "./data/input", Pattern: "*.csv", Parallel: 0}, AppConfig.Input)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("INPUT_DIR", "/srv/ledger")
	t.Setenv("INPUT_PATTERN", "lancamentos-*.txt")
	t.Setenv("INPUT_PARALLEL", "4")

	LoadConfig()

	assert.Equal(t, InputConfig{Dir: "/srv/ledger", Pattern: "lancamentos-*.txt", Parallel: 4}, AppConfig.Input)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want []string
	}{
		{name: "ok", cfg: Config{Input: InputConfig{Dir: "d", Pattern: "*.csv"}}},
		{name: "all missing", cfg: Config{}, want: []string{"INPUT_DIR", "INPUT_PATTERN"}},
		{
			name: "malformed",
			cfg:  Config{Input: InputConfig{Dir: "d", Pattern: "[", Parallel: -1}},
			want: []string{"INPUT_PATTERN (malformed glob)", "INPUT_PARALLEL (must be >= 0)"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, check(tc.cfg))
		})
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	require.Error(t, cmd.Run(), "expected process to exit with error")
}
