// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"go.craness.dev/commitgate/cli"
	"go.craness.dev/commitgate/internal/gate"
	"go.craness.dev/commitgate/testutil"
)

// setupRepo creates a git repository with the given files staged and makes
// it the current directory.
func setupRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := t.TempDir()
	t.Chdir(dir)
	mustGit(t, dir, "init", "-q")

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		mustGit(t, dir, "add", name)
	}
	return dir
}

func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func runGate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errb bytes.Buffer
	env := &cli.Env{
		Args:   args,
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &errb,
		Getenv: func(string) string { return "" },
	}
	err := new(app).Run(cli.WithEnv(context.Background(), env))
	return out.String(), err
}

func TestRunCleanRepo(t *testing.T) {
	setupRepo(t, map[string]string{
		"README.md":   "docs\n",
		"src/clean.c": "int main(void) {\n    return 0;\n}\n",
		".commitgate.yml": `checked_extensions: []
`,
	})

	stdout, err := runGate(t)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertContains(t, stdout, "==> Checking line lengths...")
	testutil.AssertContains(t, stdout, "ok")
}

func TestRunBlocksViolations(t *testing.T) {
	setupRepo(t, map[string]string{
		"src/tabbed.c": "int main(void) {\n\treturn 0;\n}\n",
		".commitgate.yml": `checked_extensions: []
`,
	})

	stdout, err := runGate(t)
	if !errors.Is(err, gate.ErrChecksFailed) {
		t.Fatalf("want ErrChecksFailed, got %v", err)
	}
	testutil.AssertContains(t, stdout, "src/tabbed.c:2: tab character")
	testutil.AssertContains(t, stdout, "re-stage the corrected files")
}

func TestRunHonorsOverrides(t *testing.T) {
	dir := setupRepo(t, map[string]string{
		"src/tabbed.c": "int main(void) {\n\treturn 0;\n}\n",
		".commitgate.yml": `checked_extensions: []
`,
	})
	mustGit(t, dir, "config", "commitgate.allow-tab-chars", "true")

	stdout, err := runGate(t)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertContains(t, stdout, "skipped (commitgate.allow-tab-chars is set)")
}

func TestRunHonorsConfigFile(t *testing.T) {
	setupRepo(t, map[string]string{
		"src/app.c": "// Copyright 2020, Acme Corp.\nint x;\n",
		".commitgate.yml": `checked_extensions: []
copyright_holder: Acme Corp
`,
	})

	stdout, err := runGate(t)
	if !errors.Is(err, gate.ErrChecksFailed) {
		t.Fatalf("want ErrChecksFailed, got %v", err)
	}
	testutil.AssertContains(t, stdout, "copyright line does not include the current year")
}

func TestRunRejectsArguments(t *testing.T) {
	setupRepo(t, nil)

	_, err := runGate(t, "unexpected")
	if !errors.Is(err, cli.ErrInvalidArgs) {
		t.Fatalf("want ErrInvalidArgs, got %v", err)
	}
}
