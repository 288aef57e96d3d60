package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytematch/internal/report"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
format: yaml
min_score: 0.9
verbose: true
`))
	require.NoError(t, err)

	assert.Equal(t, report.FormatYAML, cfg.Format)
	require.NotNil(t, cfg.MinScore)
	assert.InDelta(t, 0.9, *cfg.MinScore, 1e-12)
	assert.True(t, cfg.Verbose)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"", "verbose: false\n"} {
		cfg, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"unknown format", "format: json\n", `unknown report format "json"`},
		{"score above one", "min_score: 1.5\n", "min_score must be within [0, 1]"},
		{"negative score", "min_score: -0.1\n", "min_score must be within [0, 1]"},
		{"nan score", "min_score: .nan\n", "min_score must be within [0, 1]"},
		{"unknown field", "tolerance: 3\n", "field tolerance not found"},
		{"bad yaml", "format: [\n", "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data))
			require.Error(t, err)

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "ok.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: fixed\n"), 0o644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, report.FormatFixed, cfg.Format)
		assert.Nil(t, cfg.MinScore)
	})

	t.Run("invalid content names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_score: 2\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config "+path)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestPasses(t *testing.T) {
	t.Parallel()

	assert.True(t, Default().Passes(0))

	threshold := 0.75
	cfg := Config{Format: report.FormatText, MinScore: &threshold}
	assert.True(t, cfg.Passes(0.75))
	assert.True(t, cfg.Passes(1.0))
	assert.False(t, cfg.Passes(0.749999))
}
