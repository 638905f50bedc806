// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"context"
	"fmt"
)

// whitespaceStage rejects files with lines ending in spaces or tabs.
type whitespaceStage struct{}

func (whitespaceStage) Name() string    { return "whitespace" }
func (whitespaceStage) Title() string   { return "Checking for trailing whitespace" }
func (whitespaceStage) SkipKey() string { return "allow-trailing-whitespace" }

func (s whitespaceStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}
	for _, f := range cfg.survivors(files, KindWhitespace) {
		err := forEachLine(f.Path, func(n int, line []byte) {
			if len(line) == 0 {
				return
			}
			switch line[len(line)-1] {
			case ' ', '\t':
				out.fail(fmt.Sprintf("%s:%d: trailing whitespace", f.Path, n))
			}
		})
		if err != nil {
			return Outcome{}, err
		}
	}
	return out, nil
}
