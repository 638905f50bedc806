// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gate

import (
	"bytes"
	"io"
	"os"
	"path"
	"strings"
)

// File is a candidate for checking: a path relative to the repository root
// plus whether it is newly added in the pending commit. Everything else
// (basename, extension, binary classification) is derived at check time.
type File struct {
	Path  string
	Added bool
}

// Base returns the file's basename.
func (f File) Base() string { return path.Base(f.Path) }

// Ext returns the file's extension, including the leading dot.
func (f File) Ext() string { return path.Ext(f.Path) }

// DirSegments returns the path segments of the file's containing directory.
// A file at the repository root has none.
func (f File) DirSegments() []string {
	dir := path.Dir(f.Path)
	if dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}

// sniffLen is how many leading bytes are inspected to classify a file as
// binary. Matches git's own heuristic.
const sniffLen = 8000

// IsBinary reports whether the file looks like binary rather than text,
// based on a null byte appearing within its first 8000 bytes. An unreadable
// file is reported as text so the stage that reads it surfaces the real
// error instead of silently exempting it.
func (f File) IsBinary() bool {
	r, err := os.Open(f.Path)
	if err != nil {
		return false
	}
	defer r.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// forEachLine reads the file at path and calls fn for every line with its
// 1-based number. The line content excludes the trailing newline but keeps
// any carriage return, matching the byte-oriented semantics of the checks.
func forEachLine(path string, fn func(n int, line []byte)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	n := 0
	for len(data) > 0 {
		n++
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		fn(n, line)
	}
	return nil
}
