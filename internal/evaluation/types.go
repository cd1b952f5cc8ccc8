package evaluation

import (
	"time"

	"clinic-support-router/pkg/llmprovider"
)

// TestCase is one labelled query.
type TestCase struct {
	Query    string `yaml:"query"`
	Expected string `yaml:"expected"`
}

// Status is the per-case verdict.
type Status string

// Record is the outcome of one test case against one backend.
type Record struct {
	Query     string
	Expected  string
	Predicted string
	Raw       string
	Latency   time.Duration
	Valid     bool
	Correct   bool
	Status    Status
	Err       error
}

// ModelReport aggregates the records of one backend.
// Latency statistics cover successful invocations only.
type ModelReport struct {
	Model      string
	Accuracy   float64
	Correct    int
	Total      int
	Invalid    int
	Robustness float64
	AvgLatency time.Duration
	P50Latency time.Duration
	P95Latency time.Duration
	Score      float64
	Failures   []Record
	Records    []Record
	// Partial is set when the context was cancelled before every case ran.
	// Total then counts only the cases that ran.
	Partial bool
}

// Target is a named backend to evaluate.
type Target struct {
	Name    string
	Backend llmprovider.Backend
}

// Comparison is the result of evaluating several targets.
// Reports keeps evaluation order; Ranked is sorted by accuracy.
type Comparison struct {
	RunID       string
	StartedAt   time.Time
	Reports     []ModelReport
	Ranked      []ModelReport
	Recommended *ModelReport
}
