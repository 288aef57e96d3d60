// Package command implements the bytematch command line.
//
//	bytematch [--format text|fixed|yaml] [--min-score S] [--config FILE] [--verbose] <actual> <expected>
//
// With no flags it prints the Input/Expected/Match report and exits 0. Flags
// must precede the two paths. Failures map onto ExitCode values.
package command
