package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
name: sui-move-translation
models:
  - id: solmover
    output_dir: output_solmover
  - id: gemini-2.5
    output_dir: output_gemini
cases:
  - id: 0_hello_world
    expected_tests: 11
  - id: 5_counter
    expected_tests: 14
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movebench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "sui-move-translation", cfg.Name)
	assert.Len(t, cfg.Models, 2)
	assert.Len(t, cfg.Cases, 2)
	assert.Equal(t, DefaultTimeoutSec, cfg.TimeoutSec)
	assert.Equal(t, DefaultConfidenceLevel, cfg.ConfidenceLevel)
	assert.Equal(t, DefaultErrorsStored, cfg.ErrorsStored)
	assert.Equal(t, DefaultErrorsShown, cfg.ErrorsShown)
	assert.Equal(t, DefaultMaxWorkers, cfg.MaxWorkers)
	assert.Equal(t, 40.0, cfg.Scoring.Compile)
	assert.Equal(t, 50.0, cfg.Scoring.Test)
	assert.Equal(t, "results", cfg.OutputDir)
}

func TestLoad_ExplicitOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig+`
timeout_seconds: 120
confidence_level: 0.99
errors_stored: 20
errors_shown: 8
parallel: true
max_workers: 8
scoring:
  compile: 30
  test: 60
  quality_clean: 10
  quality_few: 6
  quality_many: 2
  few_warnings_max: 3
`))
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.TimeoutSec)
	assert.Equal(t, 0.99, cfg.ConfidenceLevel)
	assert.Equal(t, 20, cfg.ErrorsStored)
	assert.Equal(t, 8, cfg.ErrorsShown)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, 30.0, cfg.Scoring.Compile)
	assert.Equal(t, 3, cfg.Scoring.FewWarningsMax)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errSub string
	}{
		{
			name:   "no models",
			yaml:   "name: bench\ncases:\n  - id: a\n    expected_tests: 1\n",
			errSub: "at least one model",
		},
		{
			name:   "no cases",
			yaml:   "name: bench\nmodels:\n  - id: m\n    output_dir: out\n",
			errSub: "at least one case",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestValidate_ZeroExpectedTests(t *testing.T) {
	_, err := Load(writeConfig(t, `
name: bench
models:
  - id: solmover
    output_dir: out
cases:
  - id: 0_hello_world
    expected_tests: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected_tests must be positive")
}

func TestValidate_DuplicateIDs(t *testing.T) {
	_, err := Load(writeConfig(t, `
name: bench
models:
  - id: solmover
    output_dir: a
  - id: solmover
    output_dir: b
cases:
  - id: c
    expected_tests: 1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate model id")
}

func TestValidate_ShownExceedsStored(t *testing.T) {
	_, err := Load(writeConfig(t, sampleConfig+"errors_stored: 3\nerrors_shown: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errors_shown")
}

func TestValidate_BadConfidenceLevel(t *testing.T) {
	_, err := Load(writeConfig(t, sampleConfig+"confidence_level: 1.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence_level")
}
