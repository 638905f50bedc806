// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"bytes"
	"context"
	"fmt"
)

// lineEndingStage rejects files containing carriage returns, the marker of
// non-Unix line endings.
type lineEndingStage struct{}

func (lineEndingStage) Name() string    { return "line-ending" }
func (lineEndingStage) Title() string   { return "Checking line endings" }
func (lineEndingStage) SkipKey() string { return "allow-dos-newlines" }

func (s lineEndingStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}
	for _, f := range cfg.survivors(files, KindLineEnding) {
		err := forEachLine(f.Path, func(n int, line []byte) {
			if bytes.IndexByte(line, '\r') >= 0 {
				out.fail(fmt.Sprintf("%s:%d: DOS line ending", f.Path, n))
			}
		})
		if err != nil {
			return Outcome{}, err
		}
	}
	return out, nil
}
