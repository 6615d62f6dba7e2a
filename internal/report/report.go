// Package report renders evaluation results for terminals and pipes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"route-verifier-service/internal/services"
	"strings"
)

var separator = strings.Repeat("-", 30)

// WriteInstance writes one dashed block per instance. The reason line is
// only present for infeasible results.
func WriteInstance(w io.Writer, r services.InstanceResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Instance %d\n", r.Index)
	fmt.Fprintf(&b, "- Feasible = %t\n", r.Result.Feasible)
	fmt.Fprintf(&b, "- Cost = %.3f\n", r.Result.Cost)
	fmt.Fprintf(&b, "- Workers = %d\n", r.Result.Workers)
	fmt.Fprintf(&b, "- Uncovered = %d\n", r.Result.Uncovered)
	if !r.Result.Feasible && r.Result.Reason != "" {
		fmt.Fprintf(&b, "- Reason = %s\n", r.Result.Reason)
	}
	if r.Result.Warning != "" {
		fmt.Fprintf(&b, "- Warning = %s\n", r.Result.Warning)
	}
	fmt.Fprintln(&b, separator)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write instance %d: %w", r.Index, err)
	}
	return nil
}

// WriteSummary writes the feasible count and, when at least one instance
// is feasible, the mean feasible cost.
func WriteSummary(w io.Writer, s services.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nSummary: %d/%d feasible.\n", s.Feasible, s.Total)
	if s.Feasible > 0 {
		fmt.Fprintf(&b, "Average cost (feasible only): %.3f\n", s.AverageFeasibleCost)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
