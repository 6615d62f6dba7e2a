// Package cli parses the evaluator's command line, validates user input and
// carries the process exit code back to main.
package cli
