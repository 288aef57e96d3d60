// Package diagnostic collects notices raised while scoring a file pair.
//
// Key capabilities:
//   - Clamp notice when the mismatch exceeds the expected length
//   - Warnings for an empty expected reference
//   - Informational length-mismatch reports
//   - Errors for notices or reports that could not be written
package diagnostic
