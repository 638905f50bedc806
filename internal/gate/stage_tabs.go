// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// tabsStage rejects files containing a literal tab character. Makefiles of
// any flavor require tabs, so basenames containing "makefile" are skipped
// unconditionally.
type tabsStage struct{}

func (tabsStage) Name() string    { return "tabs" }
func (tabsStage) Title() string   { return "Checking for tab characters" }
func (tabsStage) SkipKey() string { return "allow-tab-chars" }

func isMakefile(name string) bool {
	return strings.Contains(strings.ToLower(name), "makefile")
}

func (s tabsStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}
	for _, f := range cfg.survivors(files, KindTabs) {
		if isMakefile(f.Base()) {
			continue
		}
		err := forEachLine(f.Path, func(n int, line []byte) {
			if bytes.IndexByte(line, '\t') >= 0 {
				out.fail(fmt.Sprintf("%s:%d: tab character", f.Path, n))
			}
		})
		if err != nil {
			return Outcome{}, err
		}
	}
	return out, nil
}
