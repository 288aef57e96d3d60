package diagnostic

import (
	"fmt"
	"io"

	"bytematch/internal/match"
)

// Inspect records the diagnostics implied by a comparison result.
func Inspect(res match.Result, actualPath, expectedPath string) Diagnostics {
	var d Diagnostics

	if res.ExpectedLen == 0 {
		d.AddWarning(CodeEmptyExpected,
			"expected file is empty; score is 1.0 only when actual is empty too", expectedPath)
	}

	if res.SizeDiff > 0 {
		d.AddInfo(CodeSizeMismatch,
			fmt.Sprintf("length %d differs from expected length %d by %d bytes",
				res.ActualLen, res.ExpectedLen, res.SizeDiff),
			actualPath)
	}

	if res.Clamped {
		d.AddInfo(CodeClamped, ClampNotice, "")
	}

	return d
}

// WriteNotices writes the notices that are always shown to the report stream.
// Only the clamp notice qualifies.
func WriteNotices(w io.Writer, d Diagnostics) error {
	if !d.Has(CodeClamped) {
		return nil
	}

	_, err := fmt.Fprintln(w, ClampNotice)

	return err
}

// WriteAll writes every diagnostic, one per line, prefixed by its severity.
func WriteAll(w io.Writer, d Diagnostics) error {
	for _, diag := range d.All() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag); err != nil {
			return err
		}
	}

	return nil
}
