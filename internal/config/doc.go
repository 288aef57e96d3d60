// Package config loads optional bytematch settings from a YAML file.
//
// The file is never required. Command-line flags override whatever it sets.
//
//	format: text      # text | fixed | yaml
//	min_score: 0.95   # fail with a distinct exit code below this score
//	verbose: false    # print every diagnostic to the error stream
package config
