// Package load reads comparison inputs from disk as raw bytes.
//
// Files are read in full with no decoding or newline translation, and every
// failure is reported as a *FileAccessError naming the offending path.
package load
