package match

import "math"

// Precision is the number of decimal places a score is rounded to.
const Precision = 6

// Result holds a score together with the counts it was derived from.
type Result struct {
	// Score is the rounded match fraction in [0, 1].
	Score float64
	// DiffCount is the number of differing bytes within the common prefix length.
	DiffCount int
	// SizeDiff is the absolute difference between the two lengths.
	SizeDiff int
	// ActualLen is the length of the actual sequence.
	ActualLen int
	// ExpectedLen is the length of the expected sequence (the denominator).
	ExpectedLen int
	// Clamped is set when the mismatch exceeded the length of expected.
	Clamped bool
}

// TotalDiff returns the mismatch count including the length penalty.
func (r Result) TotalDiff() int {
	return r.DiffCount + r.SizeDiff
}

// Compute scores actual against expected.
//
// The denominator is always len(expected), so Compute(a, b) and Compute(b, a)
// differ whenever the lengths differ. An empty expected scores 1.0 against an
// empty actual and 0.0 (clamped) against anything else.
func Compute(actual, expected []byte) Result {
	res := Result{
		ActualLen:   len(actual),
		ExpectedLen: len(expected),
		DiffCount:   CountMismatches(actual, expected),
		SizeDiff:    abs(len(actual) - len(expected)),
	}

	if len(expected) == 0 {
		if len(actual) == 0 {
			res.Score = 1.0
		} else {
			res.Clamped = true
		}

		return res
	}

	diffPct := float64(res.TotalDiff()) / float64(len(expected))
	if diffPct > 1.0 {
		diffPct = 1.0
		res.Clamped = true
	}

	res.Score = math.Abs(Round(1.0-diffPct, Precision))

	return res
}

// Score is shorthand for Compute(actual, expected).Score.
func Score(actual, expected []byte) float64 {
	return Compute(actual, expected).Score
}

// CountMismatches counts indexes below min(len(a), len(b)) where a and b differ.
func CountMismatches(a, b []byte) int {
	n := min(len(a), len(b))

	count := 0
	for i := range n {
		if a[i] != b[i] {
			count++
		}
	}

	return count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
