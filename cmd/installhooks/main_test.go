// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.craness.dev/commitgate/cli"
	"go.craness.dev/commitgate/testutil"
)

// setupRepos creates a base directory holding two git repositories and one
// plain directory.
func setupRepos(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, name := range []string{"alpha", "beta"} {
		if err := os.MkdirAll(filepath.Join(base, name, ".git", "hooks"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(base, "notes"), 0o755); err != nil {
		t.Fatal(err)
	}
	return base
}

func runInstall(t *testing.T, a *app) string {
	t.Helper()
	var errb bytes.Buffer
	env := &cli.Env{
		Args:   nil,
		Stdin:  strings.NewReader(""),
		Stdout: new(bytes.Buffer),
		Stderr: &errb,
		Getenv: func(string) string { return "" },
	}
	if err := a.Run(cli.WithEnv(context.Background(), env)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return errb.String()
}

func TestInstallDefaultHook(t *testing.T) {
	base := setupRepos(t)

	runInstall(t, &app{base: base, glob: "*"})

	for _, name := range []string{"alpha", "beta"} {
		hook := filepath.Join(base, name, ".git", "hooks", "pre-commit")
		data, err := os.ReadFile(hook)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, string(data), hookShellScript)

		fi, err := os.Stat(hook)
		testutil.AssertEqual(t, err, nil)
		if fi.Mode().Perm()&0o100 == 0 {
			t.Errorf("%s is not executable: %v", hook, fi.Mode())
		}
	}

	// The plain directory is not a repository and receives nothing.
	if _, err := os.Stat(filepath.Join(base, "notes", ".git")); !os.IsNotExist(err) {
		t.Fatalf("notes unexpectedly became a repository: %v", err)
	}
}

func TestInstallFromSourceDir(t *testing.T) {
	base := setupRepos(t)

	src := t.TempDir()
	for name, content := range map[string]string{
		"pre-commit": "#!/bin/sh\nexit 0\n",
		"pre-push":   "#!/bin/sh\nexit 1\n",
	} {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	runInstall(t, &app{base: base, glob: "alpha", src: src})

	for _, name := range []string{"pre-commit", "pre-push"} {
		if _, err := os.Stat(filepath.Join(base, "alpha", ".git", "hooks", name)); err != nil {
			t.Errorf("alpha is missing hook %s: %v", name, err)
		}
	}
	// The glob excluded beta.
	if _, err := os.Stat(filepath.Join(base, "beta", ".git", "hooks", "pre-commit")); !os.IsNotExist(err) {
		t.Fatalf("beta received a hook despite the glob: %v", err)
	}
}

func TestInstallDryRun(t *testing.T) {
	base := setupRepos(t)

	logs := runInstall(t, &app{base: base, glob: "*", dry: true})
	testutil.AssertContains(t, logs, "Would install")

	if _, err := os.Stat(filepath.Join(base, "alpha", ".git", "hooks", "pre-commit")); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote a hook: %v", err)
	}
}

func TestInstallNoMatches(t *testing.T) {
	base := setupRepos(t)

	logs := runInstall(t, &app{base: base, glob: "zzz-*"})
	testutil.AssertContains(t, logs, "No repositories matched")
}
