// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gitx wraps the git invocations the commit gate depends on: locating
// the repository root, listing staged files and reading the per-repository
// configuration store.
package gitx

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// emptyTree is the well-known hash of git's empty tree object, used as the
// diff base when HEAD does not exist yet (initial commit).
const emptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Status classifies a staged file.
type Status byte

const (
	// Added marks a file newly added in the pending commit.
	Added Status = 'A'
	// Modified marks a file changed in the pending commit.
	Modified Status = 'M'
)

// StagedFile is a single entry of the staged-change status, with a path
// relative to the repository root.
type StagedFile struct {
	Path   string
	Status Status
}

// Git runs git commands in a repository.
// The zero value runs them in the current working directory.
type Git struct {
	// Dir is the directory to run git in; empty means the current working
	// directory.
	Dir string
}

func (g Git) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if g.Dir != "" {
		cmd.Dir = g.Dir
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s failed: %s", strings.Join(args, " "), msg)
	}

	return stdout.String(), nil
}

// Root returns the absolute path of the repository's top-level directory.
func (g Git) Root(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// Staged returns the files added or modified in the pending commit, in the
// order git reports them. Deletions and renames are excluded. An empty
// result is not an error.
func (g Git) Staged(ctx context.Context) ([]StagedFile, error) {
	against := emptyTree
	if _, err := g.run(ctx, "rev-parse", "--verify", "HEAD"); err == nil {
		against = "HEAD"
	}

	out, err := g.run(ctx, "diff-index", "--cached", "--name-status", "--diff-filter=AM", "-z", against)
	if err != nil {
		return nil, err
	}

	var files []StagedFile
	fields := strings.Split(out, "\x00")
	for i := 0; i+1 < len(fields); i += 2 {
		status := fields[i]
		path := fields[i+1]
		if status == "" || path == "" {
			continue
		}
		files = append(files, StagedFile{Path: path, Status: Status(status[0])})
	}
	return files, nil
}

// ConfigBool reads key from the repository configuration and reports whether
// it is set to the exact string "true". An unset key is false, not an error.
func (g Git) ConfigBool(ctx context.Context, key string) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	if g.Dir != "" {
		cmd.Dir = g.Dir
	}

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		// git config exits with 1 when the key is not set.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("git config --get %s failed: %v", key, err)
	}
	return strings.TrimSpace(string(out)) == "true", nil
}
