// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// timeNow is stubbed in tests to pin the current year.
var timeNow = time.Now

// copyrightStage checks that every survivor carries a copyright line naming
// the configured holder and the current calendar year. It runs only when a
// holder is configured.
type copyrightStage struct{}

func (copyrightStage) Name() string    { return "copyright" }
func (copyrightStage) Title() string   { return "Checking copyright headers" }
func (copyrightStage) SkipKey() string { return "allow-no-copyright" }

// copyrightRegexp builds the single expression used for the whole run:
// arbitrary leading comment markers, the word Copyright, an optional "(c)",
// one or more "<year>," tokens and the holder followed by a period. The year
// list is the sole capture group, so the current-year check inspects only
// those tokens and not digits elsewhere on the line.
func copyrightRegexp(holder string) *regexp.Regexp {
	return regexp.MustCompile(
		`^.*Copyright\s(?:\(c\)\s?)?((?:[0-9]{4},\s*)*[0-9]{4}),\s+` +
			regexp.QuoteMeta(holder) + `\..*$`)
}

var yearRE = regexp.MustCompile(`[0-9]{4}`)

func (s copyrightStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	if cfg.CopyrightHolder == "" {
		return Outcome{
			State: Skipped,
			Diags: []string{"skipped (no copyright holder configured)"},
		}, nil
	}

	re := copyrightRegexp(cfg.CopyrightHolder)
	year := strconv.Itoa(timeNow().Year())

	out := Outcome{State: Passed}
	for _, f := range cfg.survivors(files, KindCopyright) {
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return Outcome{}, err
		}

		var matched, hasYear bool
		err = forEachLine(f.Path, func(n int, line []byte) {
			if hasYear {
				return
			}
			m := re.FindSubmatch(line)
			if m == nil {
				return
			}
			matched = true
			if slices.Contains(yearRE.FindAllString(string(m[1]), -1), year) {
				hasYear = true
			}
		})
		if err != nil {
			return Outcome{}, err
		}

		switch {
		case !matched:
			out.fail(fmt.Sprintf("%s: missing or non-matching copyright line", abs))
		case !hasYear:
			out.fail(fmt.Sprintf("%s: copyright line does not include the current year %s", abs, year))
		}
	}
	return out, nil
}
