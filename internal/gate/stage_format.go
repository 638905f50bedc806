// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.craness.dev/commitgate/logger"
)

// formatStage checks files whose extension is in CheckedExts against the
// external formatter. For every non-compliant file it writes the formatter's
// corrected output to a uniquely named temp file so the user can diff or
// replace, and names both paths in the diagnostic.
//
// The formatter and style file are only required to exist when at least one
// candidate survives filtering: a commit staging nothing checkable passes
// even on a machine without the formatter installed.
type formatStage struct{}

func (formatStage) Name() string    { return "format" }
func (formatStage) Title() string   { return "Checking code conventions" }
func (formatStage) SkipKey() string { return "allow-no-code-conventions" }

func (s formatStage) Run(ctx context.Context, files []File, cfg *Config) (Outcome, error) {
	out := Outcome{State: Passed}

	survivors := cfg.survivors(files, KindFormat)
	if len(survivors) == 0 {
		return out, nil
	}

	// A missing formatter or style file is a configuration error, not a
	// content violation, and aborts the whole run.
	formatter, err := lookupFormatter(cfg.Formatter)
	if err != nil {
		return Outcome{}, err
	}
	if _, err := os.Stat(cfg.FormatterStyle); err != nil {
		return Outcome{}, fmt.Errorf("formatter style file %q: %w", cfg.FormatterStyle, err)
	}
	style := "--style=file:" + cfg.FormatterStyle

	for _, f := range survivors {
		compliant, err := s.check(ctx, formatter, style, f.Path)
		if err != nil {
			return Outcome{}, err
		}
		if compliant {
			continue
		}

		tmp, err := s.reformat(ctx, formatter, style, f.Path, cfg.TempDir)
		if err != nil {
			return Outcome{}, err
		}
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return Outcome{}, err
		}
		out.fail(fmt.Sprintf("%s: does not match code conventions; formatted version written to %s (compare it with %s)", f.Path, tmp, abs))
	}
	return out, nil
}

// check runs the formatter in check-only mode and reports whether the file
// is already compliant.
func (formatStage) check(ctx context.Context, formatter, style, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, formatter, style, "--dry-run", "-Werror", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Nonzero exit means the file is not compliant.
		return false, nil
	}
	return false, fmt.Errorf("running %s on %s: %w", formatter, path, err)
}

// reformat runs the formatter in reformat-and-emit mode and writes its
// output to a fresh uniquely named file, which is deliberately left behind
// as a manual-review artifact.
func (s formatStage) reformat(ctx context.Context, formatter, style, path, tempDir string) (string, error) {
	cmd := exec.CommandContext(ctx, formatter, style, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("reformatting %s: %s", path, msg)
	}

	tmp, err := os.CreateTemp(tempDir, filepath.Base(path)+".*.formatted")
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := tmp.Write(stdout.Bytes()); err != nil {
		return "", err
	}
	logger.Debug(ctx, "wrote formatted copy",
		slog.String("file", path),
		slog.String("artifact", tmp.Name()))
	return tmp.Name(), nil
}

// lookupFormatter resolves the configured formatter to an executable,
// whether given as a bare name or a path.
func lookupFormatter(formatter string) (string, error) {
	if strings.ContainsRune(formatter, os.PathSeparator) {
		if _, err := os.Stat(formatter); err != nil {
			return "", fmt.Errorf("formatter %q: %w", formatter, err)
		}
		return formatter, nil
	}
	path, err := exec.LookPath(formatter)
	if err != nil {
		return "", fmt.Errorf("formatter %q: %w", formatter, fs.ErrNotExist)
	}
	return path, nil
}
