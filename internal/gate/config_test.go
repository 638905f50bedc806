// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.craness.dev/commitgate/testutil"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg, DefaultConfig())
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg, DefaultConfig())
	})

	t.Run("comments-only file uses defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("# nothing enabled yet\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg, DefaultConfig())
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		const content = `copyright_holder: Acme Corp
checked_extensions: [".c", ".h"]
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, cfg.CopyrightHolder, "Acme Corp")
		testutil.AssertEqual(t, cfg.CheckedExts, []string{".c", ".h"})
		// Untouched fields stay at their defaults.
		testutil.AssertEqual(t, cfg.Formatter, DefaultConfig().Formatter)
		testutil.AssertEqual(t, cfg.ExemptDirs, DefaultConfig().ExemptDirs)
	})

	t.Run("unknown key is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("copyright_owner: Acme Corp\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected an error for unknown key, got nil")
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(":\n\t-"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected an error for malformed yaml, got nil")
		}
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	set := map[string]bool{
		"commitgate.allow-tab-chars":    true,
		"commitgate.allow-dos-newlines": true,
	}
	var queried []string
	err := cfg.LoadOverrides(context.Background(), func(_ context.Context, key string) (bool, error) {
		queried = append(queried, key)
		return set[key], nil
	})
	testutil.AssertEqual(t, err, nil)

	// One query per stage.
	testutil.AssertEqual(t, len(queried), len(Stages()))
	testutil.AssertEqual(t, cfg.Skip["allow-tab-chars"], true)
	testutil.AssertEqual(t, cfg.Skip["allow-dos-newlines"], true)
	testutil.AssertEqual(t, cfg.Skip["allow-over-80-chars"], false)
}
