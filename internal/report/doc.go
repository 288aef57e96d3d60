// Package report renders comparison results.
//
// Formats:
//   - text: the three-line Input/Expected/Match report
//   - fixed: the same lines with the score always carrying six decimals
//   - yaml: a YAML document with the score and its formula inputs
package report
