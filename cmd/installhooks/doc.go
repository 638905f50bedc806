// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Installhooks installs the commitgate pre-commit hook into every repository
matching a glob under a base directory:

	installhooks -base ~/src -glob 'proj-*'

For each matching directory that is a git repository, it writes a
.git/hooks/pre-commit wrapper invoking commitgate. With -src it instead
copies every file from the given canonical hooks directory, preserving file
names. Directories without a .git directory are skipped.
*/
package main
