package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bytematch/internal/match"
)

func TestFormatScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0.75, "0.75"},
		{1.0, "1.0"},
		{0.0, "0.0"},
		{0.666667, "0.666667"},
		{0.123456, "0.123456"},
		{0.5, "0.5"},
		{0.0001, "0.0001"},
		{0.00005, "5e-05"},
		{0.000001, "1e-06"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.in), "FormatScore(%v)", tt.in)
	}
}

func TestFormatScoreFixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.750000", FormatScoreFixed(0.75))
	assert.Equal(t, "1.000000", FormatScoreFixed(1.0))
	assert.Equal(t, "0.000001", FormatScoreFixed(0.000001))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"json"`)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	r := Report{
		Input:    "out/disk.img",
		Expected: "golden/disk.img",
		Result:   match.Compute([]byte{1, 2, 3, 4}, []byte{1, 2, 9, 4}),
	}

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatText, r))
		assert.Equal(t, "Input: out/disk.img\nExpected: golden/disk.img\nMatch: 0.75\n", buf.String())
	})

	t.Run("fixed", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatFixed, r))
		assert.Equal(t, "Input: out/disk.img\nExpected: golden/disk.img\nMatch: 0.750000\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatYAML, r))

		var got decodedReport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, decodedReport{
			Input:       "out/disk.img",
			Expected:    "golden/disk.img",
			Match:       0.75,
			DiffCount:   1,
			SizeDiff:    0,
			ActualLen:   4,
			ExpectedLen: 4,
		}, got)
		assert.Contains(t, buf.String(), "match: 0.75\n")
	})

	t.Run("yaml whole scores stay floats", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			actual []byte
			text   string
		}{
			{[]byte{1, 2, 9, 4}, "match: 1.0\n"},
			{[]byte{0, 0, 0, 0}, "match: 0.0\n"},
		} {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, FormatYAML, Report{
				Input:    "a",
				Expected: "e",
				Result:   match.Compute(tt.actual, []byte{1, 2, 9, 4}),
			}))
			assert.Contains(t, buf.String(), tt.text)

			var doc map[string]any
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
			assert.IsType(t, float64(0), doc["match"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		require.Error(t, Write(&bytes.Buffer{}, Format("xml"), r))
	})
}

// decodedReport reads a YAML report back with a typed score.
type decodedReport struct {
	Input       string  `yaml:"input"`
	Expected    string  `yaml:"expected"`
	Match       float64 `yaml:"match"`
	DiffCount   int     `yaml:"diff_count"`
	SizeDiff    int     `yaml:"size_diff"`
	ActualLen   int     `yaml:"actual_len"`
	ExpectedLen int     `yaml:"expected_len"`
	Clamped     bool    `yaml:"clamped"`
}
