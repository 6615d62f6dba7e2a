package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"route-verifier-service/internal/adapters/files"
	"route-verifier-service/internal/api/dto"
	"route-verifier-service/internal/cli"
	"route-verifier-service/internal/platform/obs"
	"route-verifier-service/internal/report"
	"route-verifier-service/internal/services"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(run(ctx, os.Stdout, os.Stderr, os.Args[1:]), os.Stderr)
	stop()
	os.Exit(code)
}

// exitCode reports err on errW and maps it to a process status.
func exitCode(err error, errW io.Writer) int {
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(errW, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}

// run evaluates the instances named by args and writes the report to out.
// Logs go to errW so that out stays machine readable.
func run(ctx context.Context, out, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	slog.SetDefault(obs.NewLogger(opts.LogLevel, opts.LogFormat, errW))

	src := files.NewDirSource(opts.Dir)

	var results []services.InstanceResult
	if opts.HasIndex {
		g, err := services.LoadGraph(ctx, src)
		if err != nil {
			return err
		}
		res, err := services.EvaluateInstance(ctx, src, g, opts.Index, services.DefaultParams())
		if err != nil {
			return err
		}
		results = []services.InstanceResult{res}
	} else {
		results, err = services.EvaluateAll(ctx, src, services.EvaluateAllRequest{Workers: opts.Workers})
		if err != nil {
			return err
		}
	}

	if err := write(out, opts, results); err != nil {
		return err
	}

	if opts.Strict {
		s := services.Summarize(results)
		if s.Feasible < s.Total {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d instances infeasible", s.Total-s.Feasible, s.Total)}
		}
	}
	return nil
}

func write(out io.Writer, opts *cli.Options, results []services.InstanceResult) error {
	switch {
	case opts.Format == "json" && opts.HasIndex:
		return report.WriteJSON(out, dto.FromInstance(results[0]))
	case opts.Format == "json":
		return report.WriteJSON(out, dto.FromBatch(results))
	}

	for _, r := range results {
		if err := report.WriteInstance(out, r); err != nil {
			return err
		}
	}
	if opts.HasIndex {
		return nil
	}
	return report.WriteSummary(out, services.Summarize(results))
}
