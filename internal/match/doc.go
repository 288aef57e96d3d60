// Package match computes a positional byte-similarity score between an
// actual artifact and its expected reference.
//
// The score is 1 - (positional mismatches + length difference) / len(expected),
// clamped to [0, 1] and rounded to six decimal places. Bytes are compared only
// at equal indexes: a single inserted byte misaligns everything after it.
//
// Key functions:
//   - Compute: scores two byte slices and reports the formula inputs
//   - Score: returns just the rounded score
//   - Round: rounds half to even on the exact binary value
package match
