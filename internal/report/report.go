package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bytematch/internal/match"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatFixed Format = "fixed"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatFixed, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown report format %q (want text, fixed or yaml)", s)
}

// Report is a scored file pair.
type Report struct {
	Input    string
	Expected string
	Result   match.Result
}

// yamlReport is the serialized form of a Report.
type yamlReport struct {
	Input       string     `yaml:"input"`
	Expected    string     `yaml:"expected"`
	Match       *yaml.Node `yaml:"match"`
	DiffCount   int        `yaml:"diff_count"`
	SizeDiff    int        `yaml:"size_diff"`
	ActualLen   int        `yaml:"actual_len"`
	ExpectedLen int        `yaml:"expected_len"`
	Clamped     bool       `yaml:"clamped"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatText, "":
		return writeLines(w, r, FormatScore(r.Result.Score))
	case FormatFixed:
		return writeLines(w, r, FormatScoreFixed(r.Result.Score))
	case FormatYAML:
		return writeYAML(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeLines(w io.Writer, r Report, score string) error {
	_, err := fmt.Fprintf(w, "Input: %s\nExpected: %s\nMatch: %s\n", r.Input, r.Expected, score)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(yamlReport{
		Input:       r.Input,
		Expected:    r.Expected,
		Match:       scoreNode(r.Result.Score),
		DiffCount:   r.Result.DiffCount,
		SizeDiff:    r.Result.SizeDiff,
		ActualLen:   r.Result.ActualLen,
		ExpectedLen: r.Result.ExpectedLen,
		Clamped:     r.Result.Clamped,
	})
	if err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}

	return enc.Close()
}

// scoreNode keeps whole scores typed as floats ("1.0", not "1").
func scoreNode(score float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatScore(score)}
}

// FormatScore renders a score in its shortest round-tripping decimal form,
// always with a fractional part ("1.0", "0.75"). Non-zero magnitudes below
// 1e-4 use exponent notation ("1e-06"); non-finite values print as
// "nan", "inf" and "-inf".
func FormatScore(score float64) string {
	switch {
	case math.IsNaN(score):
		return "nan"
	case math.IsInf(score, 1):
		return "inf"
	case math.IsInf(score, -1):
		return "-inf"
	}

	abs := math.Abs(score)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(score, 'e', -1, 64)
	}

	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// FormatScoreFixed renders a score with exactly match.Precision decimals.
func FormatScoreFixed(score float64) string {
	return strconv.FormatFloat(score, 'f', match.Precision, 64)
}
