// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gate implements the commit gate: a sequential pipeline of
// validation stages applied to the files staged for commit.
package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.craness.dev/commitgate/logger"
)

// ErrChecksFailed is returned by [Gate.Run] when at least one enabled stage
// failed. It maps to a blocked commit.
var ErrChecksFailed = errors.New("some checks failed")

// Gate runs the validation stages over the candidate files and writes the
// transcript.
type Gate struct {
	Config *Config
	Files  []File
	Out    io.Writer
}

// Run executes every stage in order, printing a labeled section with a
// pass/fail/skip notice for each. All stages run to completion even after an
// earlier stage fails, so one invocation reports every problem. It returns
// ErrChecksFailed if any enabled stage failed, or the fatal error of a stage
// that could not run at all.
func (g *Gate) Run(ctx context.Context) error {
	var failed int
	stages := Stages()

	for _, st := range stages {
		fmt.Fprintf(g.Out, "==> %s...\n", st.Title())

		if g.Config.Skip[st.SkipKey()] {
			fmt.Fprintf(g.Out, "skipped (commitgate.%s is set)\n", st.SkipKey())
			logger.Debug(ctx, "stage bypassed", slog.String("stage", st.Name()))
			continue
		}

		out, err := st.Run(ctx, g.Files, g.Config)
		if err != nil {
			return fmt.Errorf("%s check could not run: %w", st.Name(), err)
		}

		for _, d := range out.Diags {
			fmt.Fprintln(g.Out, d)
		}
		switch out.State {
		case Passed:
			fmt.Fprintln(g.Out, "ok")
		case Failed:
			fmt.Fprintln(g.Out, "FAILED")
			failed++
		}
		logger.Debug(ctx, "stage finished",
			slog.String("stage", st.Name()),
			slog.String("state", out.State.String()),
			slog.Int("diagnostics", len(out.Diags)))
	}

	if failed > 0 {
		fmt.Fprintf(g.Out, "\n%d of %d checks failed.\n", failed, len(stages))
		fmt.Fprintln(g.Out, "Fix the problems above, re-stage the corrected files (git add) and retry the commit.")
		return ErrChecksFailed
	}
	return nil
}
