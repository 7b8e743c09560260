package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		body     string
		wantErr  string
	}{
		{
			name:     "valid overlay",
			filename: "fast_pacing.yaml",
			body:     "tier_budgets: [10s, 20s]\nreveal_radius: 200\n",
		},
		{
			name:     "experimental prefix",
			filename: "x.quick.yml",
			body:     "interact_radius: 50\n",
		},
		{
			name:     "wrong extension",
			filename: "pacing.json",
			body:     "{}",
			wantErr:  "extension",
		},
		{
			name:     "bad filename",
			filename: "Fast-Pacing.yaml",
			body:     "",
			wantErr:  "snake_case",
		},
		{
			name:     "unknown field",
			filename: "typo.yaml",
			body:     "reveal_raduis: 100\n",
			wantErr:  "strict YAML",
		},
		{
			name:     "radii inverted",
			filename: "inverted.yaml",
			body:     "reveal_radius: 10\ninteract_radius: 20\n",
			wantErr:  "reveal_radius",
		},
		{
			name:     "separation too tight",
			filename: "tight.yaml",
			body:     "min_separation: 5\n",
			wantErr:  "min_separation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &TuningValidator{}
			_, err := v.validateFile(writeTuning(t, tt.filename, tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFileOverlaysDefaults(t *testing.T) {
	v := &TuningValidator{}
	got, err := v.validateFile(writeTuning(t, "short.yaml", "tier_budgets: [1s, 2s, 3s]\n"))
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, got.TierBudgets)
	assert.Equal(t, 3, got.Terminal())
	assert.Equal(t, 150.0, got.RevealRadius)
}

func TestValidateCollectsEveryError(t *testing.T) {
	v := &TuningValidator{}
	_, err := v.validateFile(writeTuning(t, "broken.yaml", "tier_budgets: []\nplacement_attempts: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tier_budgets")
	assert.Contains(t, err.Error(), "placement attempt")
	assert.Len(t, v.errors, 2)
}
