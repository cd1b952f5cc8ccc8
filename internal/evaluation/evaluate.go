package evaluation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/llmprovider"

	"github.com/google/uuid"
)

// Evaluate runs every case against backend. A failing or panicking case is
// recorded and the run continues. A cancelled context stops it early and the
// report is marked Partial; the case in flight at cancellation is discarded.
func (e *Evaluator) Evaluate(ctx context.Context, name string, backend llmprovider.Backend, cases []TestCase) ModelReport {
	e.printHeader(name)

	report := ModelReport{Model: name, Total: len(cases)}
	var latencies []time.Duration

	for i, tc := range cases {
		if ctx.Err() != nil {
			report.Partial = true
			break
		}
		rec := e.evaluateCase(ctx, backend, tc)
		if rec.Err != nil && ctx.Err() != nil {
			report.Partial = true
			break
		}
		e.printRecord(i+1, len(cases), rec)

		if rec.Err != nil {
			e.l.Warnf(ctx, "%s: %s case %d: %v", LogPrefixEvaluate, name, i+1, rec.Err)
		} else {
			latencies = append(latencies, rec.Latency)
		}

		if rec.Correct {
			report.Correct++
		} else {
			report.Failures = append(report.Failures, rec)
		}
		if !rec.Valid {
			report.Invalid++
		}
		report.Records = append(report.Records, rec)
	}

	if report.Partial {
		report.Total = len(report.Records)
		e.l.Warnf(ctx, "%s: %s interrupted after %d of %d case(s)", LogPrefixEvaluate, name, report.Total, len(cases))
	}
	summarize(&report, latencies)
	e.printSummary(report)
	e.l.Infof(ctx, "%s: %s accuracy=%.1f%% robustness=%.1f%% avg=%s p95=%s",
		LogPrefixEvaluate, name, report.Accuracy, report.Robustness, report.AvgLatency, report.P95Latency)
	return report
}

// Run evaluates each target in order with a pause between targets, then ranks
// the reports and picks the recommendation. A cancelled context stops the run
// and returns what was collected so far.
func (e *Evaluator) Run(ctx context.Context, targets []Target, cases []TestCase) (Comparison, error) {
	cmp := Comparison{RunID: uuid.NewString(), StartedAt: time.Now()}
	e.l.Infof(ctx, "%s: run %s: %d backend(s), %d case(s)", LogPrefixRun, cmp.RunID, len(targets), len(cases))
	fmt.Fprintf(e.out, "LLM Router Evaluation (run %s)\n", cmp.RunID)
	fmt.Fprintf(e.out, "Testing %d models on %d test cases\n", len(targets), len(cases))

	var err error
	for _, t := range targets {
		if err = e.pause.Wait(ctx); err != nil {
			err = fmt.Errorf("evaluation interrupted before %s: %w", t.Name, err)
			break
		}
		report := e.Evaluate(ctx, t.Name, t.Backend, cases)
		cmp.Reports = append(cmp.Reports, report)
		if report.Partial {
			err = fmt.Errorf("evaluation interrupted during %s: %w", t.Name, ctx.Err())
			break
		}
	}

	cmp.Recommended = Recommend(cmp.Reports)
	cmp.Ranked = Rank(cmp.Reports)
	e.printComparison(cmp)
	return cmp, err
}

func (e *Evaluator) evaluateCase(ctx context.Context, backend llmprovider.Backend, tc TestCase) Record {
	rec := Record{Query: tc.Query, Expected: tc.Expected}
	prompt := router.BuildPrompt(tc.Query)

	start := time.Now()
	raw, err := safeInvoke(ctx, backend, prompt)
	rec.Latency = time.Since(start)

	if err != nil {
		rec.Err = err
		rec.Predicted = errorPrefix + err.Error()
		rec.Status = StatusError
		return rec
	}

	rec.Raw = raw
	rec.Predicted, rec.Valid = e.mode.Label(raw)
	switch {
	case !rec.Valid:
		rec.Status = StatusInvalid
	case strings.Contains(rec.Predicted, strings.ToUpper(tc.Expected)):
		rec.Correct = true
		rec.Status = StatusCorrect
	default:
		rec.Status = StatusWrong
	}
	return rec
}

func safeInvoke(ctx context.Context, backend llmprovider.Backend, prompt string) (raw string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("backend panicked: %v", rec)
		}
	}()
	return backend.Invoke(ctx, prompt)
}
