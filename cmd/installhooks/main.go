// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.craness.dev/commitgate/cli"
)

const hookShellScript = `#!/bin/sh
echo "==> Running commitgate..."
exec commitgate
`

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }

func main() { cli.Main(new(app)) }

type app struct {
	base string
	glob string
	src  string
	dry  bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.base, "base", ".", "Base `directory` containing the repositories.")
	fs.StringVar(&a.glob, "glob", "*", "Glob `pattern` selecting repositories under the base directory.")
	fs.StringVar(&a.src, "src", "", "Canonical `directory` of hook files to copy; empty writes the default pre-commit wrapper.")
	fs.BoolVar(&a.dry, "dry", false, "Print the hooks that would be installed, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	matches, err := filepath.Glob(filepath.Join(a.base, a.glob))
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	hooks, err := a.hookFiles()
	if err != nil {
		return err
	}

	var installed int
	for _, repo := range matches {
		hooksDir := filepath.Join(repo, ".git", "hooks")
		if fi, err := os.Stat(filepath.Join(repo, ".git")); err != nil || !fi.IsDir() {
			// Not a git repository.
			continue
		}

		for name, data := range hooks {
			target := filepath.Join(hooksDir, name)
			if a.dry {
				env.Logf("Would install %s", target)
				continue
			}
			if err := os.MkdirAll(hooksDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(target, data, 0o755); err != nil {
				return err
			}
			env.Logf("Installed %s", target)
		}
		installed++
	}

	if installed == 0 {
		env.Logf("No repositories matched %s under %s.", a.glob, a.base)
	}
	return nil
}

// hookFiles returns the hook files to install, keyed by file name.
func (a *app) hookFiles() (map[string][]byte, error) {
	if a.src == "" {
		return map[string][]byte{"pre-commit": []byte(hookShellScript)}, nil
	}

	entries, err := os.ReadDir(a.src)
	if err != nil {
		return nil, err
	}
	hooks := make(map[string][]byte)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(a.src, e.Name()))
		if err != nil {
			return nil, err
		}
		hooks[e.Name()] = data
	}
	return hooks, nil
}
