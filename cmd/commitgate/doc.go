// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Commitgate is a git pre-commit hook that blocks commits violating the
repository's coding standards.

Run from .git/hooks/pre-commit with no arguments, it inspects the files
staged for commit and applies seven checks: file-name encoding, code
conventions (via an external formatter such as clang-format), line length,
tab characters, trailing whitespace, DOS line endings and copyright headers.
The commit proceeds only if every enabled check passes.

Static configuration lives in an optional .commitgate.yml at the repository
root. Each check can be bypassed per repository through git configuration:

	git config commitgate.allow-non-ascii-filenames true
	git config commitgate.allow-no-code-conventions true
	git config commitgate.allow-over-80-chars true
	git config commitgate.allow-tab-chars true
	git config commitgate.allow-trailing-whitespace true
	git config commitgate.allow-dos-newlines true
	git config commitgate.allow-no-copyright true

All checks run to completion even after one fails, so a single invocation
reports every problem. After fixing, re-stage the corrected files with git
add before retrying the commit.
*/
package main
