// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional static configuration file,
// looked up in the repository root.
const DefaultConfigFile = ".commitgate.yml"

// Config holds every setting the gate recognizes. It is built once at
// startup and treated as immutable for the duration of the run.
type Config struct {
	// ExemptDirs lists directory-name tokens. A file is exempt from the
	// content stages when any path segment of its containing directory
	// equals one of these tokens.
	ExemptDirs []string `yaml:"exempt_directories"`

	// ExemptExts lists file extensions exempt from the line-length, tab,
	// trailing-whitespace and line-ending stages.
	ExemptExts []string `yaml:"exempt_extensions"`

	// CheckedExts is the positive allow-list for the format stage: only
	// files whose extension appears here are checked against the
	// formatter.
	CheckedExts []string `yaml:"checked_extensions"`

	// ExemptNames lists exact basenames exempt from every stage.
	ExemptNames []string `yaml:"exempt_filenames_all"`

	// ExemptCopyrightNames lists exact basenames exempt from the
	// copyright stage only.
	ExemptCopyrightNames []string `yaml:"exempt_filenames_copyright"`

	// CopyrightHolder is the name expected in copyright lines. When
	// empty, the copyright stage is skipped entirely.
	CopyrightHolder string `yaml:"copyright_holder"`

	// Formatter is the path or name of the external formatter binary.
	Formatter string `yaml:"formatter"`

	// FormatterStyle is the path of the formatter's style file.
	FormatterStyle string `yaml:"formatter_style"`

	// TempDir overrides the directory for reformatted-file artifacts.
	// Empty means the system default temp location.
	TempDir string `yaml:"temp_dir"`

	// Skip maps a stage's override key (for example "allow-tab-chars") to
	// whether that stage is bypassed. Populated from the repository's git
	// configuration, not from the YAML file.
	Skip map[string]bool `yaml:"-"`
}

// DefaultConfig returns the configuration used when no .commitgate.yml
// exists.
func DefaultConfig() *Config {
	return &Config{
		ExemptDirs:           []string{"third_party", "vendor", "external"},
		ExemptExts:           []string{".md", ".csv", ".txt", ".json", ".yml", ".yaml"},
		CheckedExts:          []string{".c", ".h", ".cc", ".cpp", ".hpp"},
		ExemptNames:          []string{"LICENSE", "NOTICE", ".gitignore", ".gitattributes", ".gitmodules"},
		ExemptCopyrightNames: []string{"LICENSE", "LICENSE.md", "README.md"},
		Formatter:            "clang-format",
		FormatterStyle:       ".clang-format",
		Skip:                 make(map[string]bool),
	}
}

// LoadConfig reads the configuration file at path, applying defaults for
// everything the file does not set. A missing or empty file is not an error:
// the defaults apply unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Decode reports io.EOF for a file with no YAML documents in it,
		// which sets nothing.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOverrides fills cfg.Skip by querying get for each stage's override
// key. The get function receives the full configuration key, for example
// "commitgate.allow-tab-chars".
func (cfg *Config) LoadOverrides(ctx context.Context, get func(ctx context.Context, key string) (bool, error)) error {
	if cfg.Skip == nil {
		cfg.Skip = make(map[string]bool)
	}
	for _, st := range Stages() {
		v, err := get(ctx, "commitgate."+st.SkipKey())
		if err != nil {
			return err
		}
		cfg.Skip[st.SkipKey()] = v
	}
	return nil
}
