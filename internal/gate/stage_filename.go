// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import "context"

// filenameStage rejects added files whose path contains bytes outside the
// printable ASCII range. It operates on the aggregate name list, so its
// diagnostic is generic rather than per-file.
type filenameStage struct{}

func (filenameStage) Name() string    { return "filename" }
func (filenameStage) Title() string   { return "Checking file names" }
func (filenameStage) SkipKey() string { return "allow-non-ascii-filenames" }

func (s filenameStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}
	for _, f := range files {
		if !f.Added || cfg.exempt(f, KindFilename) {
			continue
		}
		if !printableASCII(f.Path) {
			out.fail("file names of added files must contain only printable ASCII characters")
			break
		}
	}
	return out, nil
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
