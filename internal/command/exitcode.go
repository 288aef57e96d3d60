package command

//go:generate go tool stringer -type=ExitCode -output=exitcode_string.go

// ExitCode is the process status returned by Run.
type ExitCode int

const (
	// ExitOK means the pair was scored (and met --min-score when given).
	ExitOK ExitCode = iota
	// ExitFileAccess means an input could not be read or the output could not be written.
	ExitFileAccess
	// ExitUsage means bad arguments, flags or config.
	ExitUsage
	// ExitBelowThreshold means the score was below --min-score. The report is still printed.
	ExitBelowThreshold
)
