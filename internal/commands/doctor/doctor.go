// Package doctor runs health checks against the configuration, the data
// file, and the clipboard backend.
package doctor

import (
	"context"
	"encoding/json"
)

// Status is the outcome of a single check item.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckItem is one line of a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	// Fixable items are repaired by 'clipstash doctor --fix'.
	Fixable bool `json:"fixable,omitempty"`
}

// Result groups the items produced by one check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

func (r *Result) pass(label, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: StatusPass, Detail: detail})
}

func (r *Result) warn(label, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: StatusWarn, Detail: detail})
}

func (r *Result) fail(label, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: StatusFail, Detail: detail})
}

// Check is a single health check.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Report is the outcome of a doctor run. It is printed as text or encoded
// as JSON by the doctor command.
type Report struct {
	Healthy bool     `json:"healthy"`
	Passed  int      `json:"passed"`
	Warned  int      `json:"warned"`
	Failed  int      `json:"failed"`
	Fixable int      `json:"fixable"`
	Checks  []Result `json:"checks"`
}

// Run executes checks in order and tallies their items. Warnings do not make
// the report unhealthy; failures do.
func Run(ctx context.Context, checks []Check) Report {
	report := Report{Checks: make([]Result, 0, len(checks))}

	for _, check := range checks {
		result := check.Run(ctx)
		for _, item := range result.Items {
			switch item.Status {
			case StatusPass:
				report.Passed++
			case StatusWarn:
				report.Warned++
			case StatusFail:
				report.Failed++
			}
			if item.Fixable && item.Status != StatusPass {
				report.Fixable++
			}
		}
		report.Checks = append(report.Checks, result)
	}

	report.Healthy = report.Failed == 0
	return report
}
