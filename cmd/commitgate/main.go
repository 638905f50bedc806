// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go.craness.dev/commitgate/cli"
	"go.craness.dev/commitgate/internal/gate"
	"go.craness.dev/commitgate/internal/gitx"
	"go.craness.dev/commitgate/logger"

	"github.com/lmittmann/tint"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }

func main() { cli.Main(new(app)) }

type app struct {
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.verbose, "verbose", false, "Log per-stage debug details.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: commitgate takes no arguments", cli.ErrInvalidArgs)
	}

	lg := logger.New(nil)
	if a.verbose {
		lg.Level.Set(slog.LevelDebug)
	}
	noColor := true
	if f, ok := env.Stderr.(*os.File); ok {
		noColor = !cli.IsTerminal(int(f.Fd()))
	}
	lg.Attach(tint.NewHandler(env.Stderr, &tint.Options{
		Level:   lg.Level,
		NoColor: noColor,
	}))
	ctx = logger.Put(ctx, lg)

	var g gitx.Git
	root, err := g.Root(ctx)
	if err != nil {
		return err
	}
	// Candidate paths are relative to the repository root; anchor there so
	// the hook behaves the same from any subdirectory.
	if err := os.Chdir(root); err != nil {
		return err
	}

	staged, err := g.Staged(ctx)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "staged files", slog.Int("count", len(staged)))

	cfg, err := gate.LoadConfig(gate.DefaultConfigFile)
	if err != nil {
		return err
	}
	if err := cfg.LoadOverrides(ctx, func(ctx context.Context, key string) (bool, error) {
		return g.ConfigBool(ctx, key)
	}); err != nil {
		return err
	}

	files := make([]gate.File, 0, len(staged))
	for _, sf := range staged {
		files = append(files, gate.File{
			Path:  sf.Path,
			Added: sf.Status == gitx.Added,
		})
	}

	run := &gate.Gate{Config: cfg, Files: files, Out: env.Stdout}
	return run.Run(ctx)
}
