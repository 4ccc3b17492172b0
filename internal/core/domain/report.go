package domain

import "time"

// Outcome is the result of one test run.
type Outcome string

const (
	// OutcomeSuccess means the runner exited with status 0.
	OutcomeSuccess Outcome = "success"
	// OutcomeFail means the runner exited non-zero or could not be started.
	OutcomeFail Outcome = "fail"
)

// TestResult records the outcome for one installation.
type TestResult struct {
	Version  string
	Platform string
	Arch     string
	Outcome  Outcome
	Duration time.Duration
}

// RunReport accumulates test results in execution order.
type RunReport struct {
	Results  []TestResult
	Failures int
}

// NewRunReport returns an empty report.
func NewRunReport() *RunReport {
	return &RunReport{}
}

// Record appends a result and counts it when it failed.
func (r *RunReport) Record(res TestResult) {
	r.Results = append(r.Results, res)
	if res.Outcome == OutcomeFail {
		r.Failures++
	}
}

// Passed reports whether every recorded run succeeded.
func (r *RunReport) Passed() bool {
	return r.Failures == 0
}
