// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import "slices"

// Kind identifies a rule stage for exemption purposes.
type Kind int

const (
	KindFilename Kind = iota
	KindFormat
	KindLength
	KindTabs
	KindWhitespace
	KindLineEnding
	KindCopyright
)

// usesExemptExts reports whether the kind honors the negative extension
// list. The format stage instead uses the positive CheckedExts allow-list.
func (k Kind) usesExemptExts() bool {
	switch k {
	case KindLength, KindTabs, KindWhitespace, KindLineEnding:
		return true
	}
	return false
}

// sniffsBinary reports whether the kind skips files classified as binary.
func (k Kind) sniffsBinary() bool {
	switch k {
	case KindLength, KindTabs, KindWhitespace, KindLineEnding, KindCopyright:
		return true
	}
	return false
}

// exempt reports whether f is skipped by the stage of the given kind.
// All matching is exact and case-sensitive.
func (cfg *Config) exempt(f File, k Kind) bool {
	if slices.Contains(cfg.ExemptNames, f.Base()) {
		return true
	}
	if k == KindFilename {
		// The filename stage inspects the name itself, so the
		// content-derived exemptions below do not apply.
		return false
	}
	for _, seg := range f.DirSegments() {
		if slices.Contains(cfg.ExemptDirs, seg) {
			return true
		}
	}
	if k == KindFormat && !slices.Contains(cfg.CheckedExts, f.Ext()) {
		return true
	}
	if k.usesExemptExts() && slices.Contains(cfg.ExemptExts, f.Ext()) {
		return true
	}
	if k == KindCopyright && slices.Contains(cfg.ExemptCopyrightNames, f.Base()) {
		return true
	}
	if k.sniffsBinary() && f.IsBinary() {
		return true
	}
	return false
}

// survivors returns the files the stage of the given kind must inspect.
func (cfg *Config) survivors(files []File, k Kind) []File {
	var out []File
	for _, f := range files {
		if !cfg.exempt(f, k) {
			out = append(out, f)
		}
	}
	return out
}
