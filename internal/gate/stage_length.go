// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"context"
	"fmt"
)

// maxLineLength is the limit the length stage enforces, counted in bytes
// rather than display width.
const maxLineLength = 80

// lengthStage rejects files containing a line longer than maxLineLength.
type lengthStage struct{}

func (lengthStage) Name() string    { return "length" }
func (lengthStage) Title() string   { return "Checking line lengths" }
func (lengthStage) SkipKey() string { return "allow-over-80-chars" }

func (s lengthStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}
	for _, f := range cfg.survivors(files, KindLength) {
		err := forEachLine(f.Path, func(n int, line []byte) {
			if len(line) > maxLineLength {
				out.fail(fmt.Sprintf("%s:%d: line longer than %d characters", f.Path, n, maxLineLength))
			}
		})
		if err != nil {
			return Outcome{}, err
		}
	}
	return out, nil
}
