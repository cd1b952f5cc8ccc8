package evaluation

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/llmprovider"
	"clinic-support-router/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(text string) llmprovider.Backend {
	return llmprovider.BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		return text, nil
	})
}

// oracle answers with the expected label of each case it recognises.
func oracle(cases []TestCase) llmprovider.Backend {
	answers := make(map[string]string, len(cases))
	for _, c := range cases {
		answers[router.BuildPrompt(c.Query)] = c.Expected
	}
	return llmprovider.BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		return answers[prompt], nil
	})
}

func TestEvaluate_ContainmentCountsAsCorrect(t *testing.T) {
	e := New(log.NewNop(), Config{})
	cases := []TestCase{{Query: "Where is my order ORD123?", Expected: "ORDER"}}

	report := e.Evaluate(context.Background(), "stub", fixed("ORDER_STATUS"), cases)

	require.Len(t, report.Records, 1)
	rec := report.Records[0]
	assert.Equal(t, StatusCorrect, rec.Status)
	assert.True(t, rec.Correct)
	assert.True(t, rec.Valid)
	assert.Equal(t, "ORDER", rec.Predicted)
	assert.Equal(t, "ORDER_STATUS", rec.Raw)
	assert.InDelta(t, 100.0, report.Accuracy, 1e-9)
}

func TestEvaluate_ExactModeMarksLooseLabelInvalid(t *testing.T) {
	e := New(log.NewNop(), Config{MatchMode: router.MatchExact})
	cases := []TestCase{{Query: "Where is my order ORD123?", Expected: "ORDER"}}

	report := e.Evaluate(context.Background(), "stub", fixed("ORDER_STATUS"), cases)

	assert.Equal(t, StatusInvalid, report.Records[0].Status)
	assert.Equal(t, "ORDER_STATUS", report.Records[0].Predicted)
	assert.Zero(t, report.Accuracy)
}

func TestEvaluate_Statuses(t *testing.T) {
	e := New(log.NewNop(), Config{})
	cases := []TestCase{
		{Query: "What are your hours?", Expected: "FAQ"},
		{Query: "Track ORD1", Expected: "ORDER"},
	}

	report := e.Evaluate(context.Background(), "stub", fixed("faq"), cases)
	assert.Equal(t, StatusCorrect, report.Records[0].Status)
	assert.Equal(t, StatusWrong, report.Records[1].Status)
	assert.Equal(t, 1, report.Correct)
	assert.Equal(t, 0, report.Invalid)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "Track ORD1", report.Failures[0].Query)

	report = e.Evaluate(context.Background(), "stub", fixed("no idea"), cases)
	assert.Equal(t, StatusInvalid, report.Records[0].Status)
	assert.Equal(t, "NO IDEA", report.Records[0].Predicted)
	assert.Zero(t, report.Robustness)
}

func TestEvaluate_AllFailures(t *testing.T) {
	failing := llmprovider.BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", &llmprovider.BackendError{Provider: "down", Kind: llmprovider.KindTransport, Err: errors.New("connection refused")}
	})

	cases := DefaultCases()[:10]
	e := New(log.NewNop(), Config{})

	var report ModelReport
	require.NotPanics(t, func() {
		report = e.Evaluate(context.Background(), "down", failing, cases)
	})

	assert.Zero(t, report.Accuracy)
	assert.Zero(t, report.Robustness)
	assert.Zero(t, report.AvgLatency)
	assert.Zero(t, report.P95Latency)
	assert.Len(t, report.Failures, 10)
	for _, f := range report.Failures {
		assert.Equal(t, StatusError, f.Status)
		assert.True(t, strings.HasPrefix(f.Predicted, "ERROR: "))
		assert.Equal(t, llmprovider.KindTransport, llmprovider.KindOf(f.Err))
	}
}

func TestEvaluate_PanicIsIsolated(t *testing.T) {
	calls := 0
	flaky := llmprovider.BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return "FAQ", nil
	})

	cases := []TestCase{
		{Query: "Are you open on Sunday?", Expected: "FAQ"},
		{Query: "How can I contact you?", Expected: "FAQ"},
	}
	report := New(log.NewNop(), Config{}).Evaluate(context.Background(), "flaky", flaky, cases)

	assert.Equal(t, 2, calls)
	assert.Equal(t, StatusError, report.Records[0].Status)
	assert.Equal(t, "ERROR: backend panicked: boom", report.Records[0].Predicted)
	assert.Equal(t, StatusCorrect, report.Records[1].Status)
	assert.InDelta(t, 50.0, report.Accuracy, 1e-9)
}

func TestEvaluate_ConsoleOutput(t *testing.T) {
	var out bytes.Buffer
	e := New(log.NewNop(), Config{Out: &out})
	cases := []TestCase{{Query: "I'm checking on my lab results for order ORD456", Expected: "ORDER"}}

	e.Evaluate(context.Background(), "stub", fixed("ORDER"), cases)

	got := out.String()
	assert.Contains(t, got, "Evaluating: stub")
	assert.Contains(t, got, "CORRECT [ 1/1] 'I'm checking on my lab results for ' Expected: ORDER        Got: ORDER")
	assert.Contains(t, got, "Accuracy:   100.0% (1/1)")
}

func TestRun(t *testing.T) {
	cases := DefaultCases()
	var out bytes.Buffer
	e := New(log.NewNop(), Config{Out: &out})

	cmp, err := e.Run(context.Background(), []Target{
		{Name: "always-faq", Backend: fixed("FAQ")},
		{Name: "oracle", Backend: oracle(cases)},
	}, cases)
	require.NoError(t, err)

	assert.NotEmpty(t, cmp.RunID)
	require.Len(t, cmp.Reports, 2)
	assert.Equal(t, "always-faq", cmp.Reports[0].Model)
	require.Len(t, cmp.Ranked, 2)
	assert.Equal(t, "oracle", cmp.Ranked[0].Model)
	assert.InDelta(t, 100.0, cmp.Ranked[0].Accuracy, 1e-9)
	assert.InDelta(t, 50.0, cmp.Ranked[1].Accuracy, 1e-9)
	require.NotNil(t, cmp.Recommended)
	assert.Equal(t, "oracle", cmp.Recommended.Model)
	assert.Contains(t, out.String(), "Best Overall (Weighted Score): oracle")
}

func TestRun_PausesBetweenBackends(t *testing.T) {
	e := New(log.NewNop(), Config{Pause: 50 * time.Millisecond})
	cases := []TestCase{{Query: "hi", Expected: "FAQ"}}

	start := time.Now()
	_, err := e.Run(context.Background(), []Target{
		{Name: "a", Backend: fixed("FAQ")},
		{Name: "b", Backend: fixed("FAQ")},
	}, cases)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(log.NewNop(), Config{Pause: time.Hour})
	cmp, err := e.Run(ctx, []Target{{Name: "a", Backend: fixed("FAQ")}}, DefaultCases())

	assert.Error(t, err)
	assert.Empty(t, cmp.Reports)
	assert.Nil(t, cmp.Recommended)
}

func TestRun_CancelledMidBackend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	backend := llmprovider.BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 2 {
			cancel()
			return "", ctx.Err()
		}
		return "FAQ", nil
	})

	var out bytes.Buffer
	e := New(log.NewNop(), Config{Out: &out})
	cmp, err := e.Run(ctx, []Target{
		{Name: "a", Backend: backend},
		{Name: "b", Backend: fixed("FAQ")},
	}, DefaultCases())

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, calls)
	require.Len(t, cmp.Reports, 1)

	r := cmp.Reports[0]
	assert.True(t, r.Partial)
	assert.Equal(t, 1, r.Total)
	assert.Len(t, r.Records, 1)
	assert.Zero(t, r.Invalid)
	assert.InDelta(t, 100.0, r.Robustness, 1e-9)
	for _, f := range r.Failures {
		assert.NotContains(t, f.Predicted, errorPrefix)
	}

	var report bytes.Buffer
	FormatReport(&report, cmp.Reports)
	assert.Contains(t, report.String(), "Partial: interrupted after 1 case(s)\n")
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_results.txt")
	reports := []ModelReport{
		{
			Model:      "GPT-4o-mini",
			Accuracy:   95,
			AvgLatency: 412 * time.Millisecond,
			P95Latency: 780 * time.Millisecond,
			Failures: []Record{
				{Query: "Where's ORD456?", Expected: "ORDER", Predicted: "FAQ"},
			},
		},
		{Model: "claude-sonnet-4", Accuracy: 100, AvgLatency: time.Second, P95Latency: 2 * time.Second},
	}

	require.NoError(t, WriteReport(path, reports))
	require.NoError(t, WriteReport(path, reports))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	sep := strings.Repeat("=", 80)
	want := "Model: GPT-4o-mini\n" +
		"Accuracy: 95.0%\n" +
		"Average Latency: 412ms\n" +
		"P95 Latency: 780ms\n" +
		"Errors:\n" +
		"  - Query: Where's ORD456?\n" +
		"    Expected: ORDER\n" +
		"    Predicted: FAQ\n" +
		"\n" + sep + "\n\n" +
		"Model: claude-sonnet-4\n" +
		"Accuracy: 100.0%\n" +
		"Average Latency: 1000ms\n" +
		"P95 Latency: 2000ms\n" +
		"Errors:\n" +
		"\n" + sep + "\n\n"
	assert.Equal(t, want, string(data))
}
