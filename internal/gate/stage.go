// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import "context"

// State is the terminal state of one stage in a run.
type State int

const (
	// Skipped means the stage did not inspect anything; it counts as a
	// pass for the run outcome.
	Skipped State = iota
	// Passed means the stage inspected its survivors and found nothing.
	Passed
	// Failed means at least one survivor violated the stage's rule.
	Failed
)

// String implements the [fmt.Stringer] interface.
func (s State) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of running one stage: its terminal state plus
// human-readable diagnostic lines naming the offending files.
type Outcome struct {
	State State
	Diags []string
}

// fail appends a diagnostic and marks the outcome failed.
func (o *Outcome) fail(diag string) {
	o.State = Failed
	o.Diags = append(o.Diags, diag)
}

// Stage is one independently toggleable validation rule applied to the
// candidate file list. Stages are pure with respect to the run: they receive
// the candidates and configuration and return an Outcome, never mutating
// shared state.
//
// A non-nil error from Run is a fatal configuration or environment problem
// that aborts the whole run; rule violations are reported through the
// Outcome instead.
type Stage interface {
	// Name is the stage's short identifier, used in logs.
	Name() string
	// Title is the stage's transcript section header.
	Title() string
	// SkipKey is the git configuration key suffix that bypasses the
	// stage when set to true.
	SkipKey() string

	Run(ctx context.Context, files []File, cfg *Config) (Outcome, error)
}

// Stages returns the rule stages in their fixed execution order.
func Stages() []Stage {
	return []Stage{
		filenameStage{},
		formatStage{},
		lengthStage{},
		tabsStage{},
		whitespaceStage{},
		lineEndingStage{},
		copyrightStage{},
	}
}
