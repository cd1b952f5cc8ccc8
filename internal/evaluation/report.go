package evaluation

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// WriteReport writes the plain-text report for reports to path, replacing any previous file.
func WriteReport(path string, reports []ModelReport) error {
	var buf bytes.Buffer
	FormatReport(&buf, reports)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// FormatReport renders one block per report: headline metrics, then every
// incorrect case.
func FormatReport(w io.Writer, reports []ModelReport) {
	for _, r := range reports {
		fmt.Fprintf(w, "Model: %s\n", r.Model)
		if r.Partial {
			fmt.Fprintf(w, "Partial: interrupted after %d case(s)\n", r.Total)
		}
		fmt.Fprintf(w, "Accuracy: %.1f%%\n", r.Accuracy)
		fmt.Fprintf(w, "Average Latency: %sms\n", ms(r.AvgLatency))
		fmt.Fprintf(w, "P95 Latency: %sms\n", ms(r.P95Latency))
		fmt.Fprintln(w, "Errors:")
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  - Query: %s\n", f.Query)
			fmt.Fprintf(w, "    Expected: %s\n", f.Expected)
			fmt.Fprintf(w, "    Predicted: %s\n", f.Predicted)
		}
		fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 80))
	}
}

func (e *Evaluator) printHeader(name string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(e.out, "\n%s\nEvaluating: %s\n%s\n", rule, name, rule)
}

func (e *Evaluator) printRecord(i, total int, r Record) {
	if r.Status == StatusError {
		fmt.Fprintf(e.out, "✗ [%2d/%d] %s\n", i, total, r.Predicted)
		return
	}
	fmt.Fprintf(e.out, "%s [%2d/%d] '%-35s' Expected: %-12s Got: %-15s (%sms)\n",
		r.Status, i, total, preview(r.Query), r.Expected, r.Predicted, ms(r.Latency))
}

func (e *Evaluator) printSummary(r ModelReport) {
	fmt.Fprintf(e.out, "\n %s Results:\n", r.Model)
	fmt.Fprintf(e.out, "Accuracy:   %.1f%% (%d/%d)\n", r.Accuracy, r.Correct, r.Total)
	fmt.Fprintf(e.out, "Robustness: %.1f%% (%d invalid)\n", r.Robustness, r.Invalid)
	fmt.Fprintf(e.out, "Latency:    avg=%sms, p50=%sms, p95=%sms\n", ms(r.AvgLatency), ms(r.P50Latency), ms(r.P95Latency))
}

func (e *Evaluator) printComparison(c Comparison) {
	rule := strings.Repeat("=", 100)
	fmt.Fprintf(e.out, "\n%s\nMODEL COMPARISON\n%s\n", rule, rule)
	fmt.Fprintf(e.out, "%-25s %-12s %-15s %-15s %-12s %-8s\n", "Model", "Accuracy", "Avg Latency", "P95 Latency", "Robustness", "Score")
	fmt.Fprintln(e.out, strings.Repeat("-", 100))

	for _, r := range c.Ranked {
		fmt.Fprintf(e.out, "%-25s %6.1f%%%5s %6sms%8s %6sms%8s %6.1f%%%5s %5.1f\n",
			r.Model, r.Accuracy, "", ms(r.AvgLatency), "", ms(r.P95Latency), "", r.Robustness, "", r.Score)
	}

	if c.Recommended == nil {
		return
	}
	fmt.Fprintln(e.out, "\nRECOMMENDATION BASED ON SCORING")
	fmt.Fprintf(e.out, "\nBest Overall (Weighted Score): %s\n", c.Recommended.Model)
	fmt.Fprintf(e.out, "   Score: %.1f/100\n", c.Recommended.Score)
}

// ms renders a duration as whole milliseconds.
func ms(d time.Duration) string {
	return fmt.Sprintf("%.0f", float64(d)/float64(time.Millisecond))
}

func preview(q string) string {
	r := []rune(q)
	if len(r) > queryPreviewLen {
		return string(r[:queryPreviewLen])
	}
	return q
}
