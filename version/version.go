// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.craness.dev/commitgate/syncx"
)

// Info describes the running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the module version, or a VCS-derived pseudo-version for
	// local builds.
	Version string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Dirty reports whether the working tree had local modifications at
	// build time.
	Dirty bool
	// Go is the version of the Go toolchain that built the binary.
	Go string
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%.7s", i.Commit)
		if i.Dirty {
			sb.WriteString("-dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.Go)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns information about the running binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name:    CmdName(),
			Version: "devel",
			Go:      runtime.Version(),
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
			case "vcs.modified":
				i.Dirty = s.Value == "true"
			}
		}
		return i
	})
}

var cmdName syncx.Lazy[string]

// CmdName returns the base name of the current binary.
func CmdName() string {
	return cmdName.Get(func() string {
		exe, err := os.Executable()
		if err != nil {
			return filepath.Base(os.Args[0])
		}
		return strings.TrimSuffix(filepath.Base(exe), ".exe")
	})
}
