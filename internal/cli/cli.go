package cli

import (
	"flag"
	"fmt"
	"io"
	"route-verifier-service/internal/config"
	"route-verifier-service/internal/services"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed evaluator command line.
type Options struct {
	Dir string
	// Index of the single instance to evaluate; all instances when HasIndex
	// is false.
	Index     int
	HasIndex  bool
	Format    string
	Workers   int
	LogLevel  string
	LogFormat string
	Strict    bool
}

// Parse processes args. It returns the options, whether the program should
// exit cleanly (help was requested), or an *ExitError with code 2.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := flag.NewFlagSet("evaluator", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
evaluator - verify candidate routes against a graph and its workers.

Usage:
  evaluator --dir DIR [options]

DIR holds grafo.csv, instanciaN.csv and solucionN.txt files. Without --idx
every solucionN.txt is evaluated and a summary is printed.

Options:
`)
		fs.PrintDefaults()
	}

	dir := fs.String("dir", config.Get("DATA_DIR", ""), "Directory with the graph, instance and solution files.")
	idx := fs.Int("idx", -1, "Evaluate only this instance and print it as JSON.")
	format := fs.String("format", "", "Output format: 'text' or 'json'. Defaults to json with --idx, text otherwise.")
	workers := fs.Int("workers", services.DefaultWorkerCount, "Number of instances evaluated concurrently.")
	logLevel := fs.String("log-level", config.Get("LOG_LEVEL", "warn"), "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", config.Get("LOG_FORMAT", "text"), "Log output format: 'text' or 'json'.")
	strict := fs.Bool("strict", false, "Exit with status 1 when any evaluated instance is infeasible.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	opts := &Options{
		Dir:       strings.TrimSpace(*dir),
		Index:     *idx,
		Format:    strings.ToLower(*format),
		Workers:   *workers,
		LogLevel:  strings.ToLower(*logLevel),
		LogFormat: strings.ToLower(*logFormat),
		Strict:    *strict,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "idx" {
			opts.HasIndex = true
		}
	})

	if opts.Dir == "" {
		return nil, false, &ExitError{Code: 2, Message: "missing --dir (or DATA_DIR)"}
	}
	if opts.HasIndex && opts.Index < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid idx: must be non-negative"}
	}
	if opts.Format == "" {
		opts.Format = "text"
		if opts.HasIndex {
			opts.Format = "json"
		}
	}
	if opts.Format != "text" && opts.Format != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'json'"}
	}
	if opts.Workers <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be positive"}
	}
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return opts, false, nil
}
