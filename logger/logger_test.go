// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	if !logged {
		t.Fatal("Write did not call the log function")
	}
	if message != "hello" {
		t.Fatalf("message = %q, want %q", message, "hello")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: l.Level}))

	ctx := Put(context.Background(), l)
	if got := Get(ctx); got != l {
		t.Fatal("Get returned a different logger than Put stored")
	}

	Info(ctx, "stage finished", slog.String("stage", "tabs"))
	if !strings.Contains(buf.String(), "stage finished") {
		t.Fatalf("log output missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "stage=tabs") {
		t.Fatalf("log output missing attr: %q", buf.String())
	}
}

func TestGetWithoutLogger(t *testing.T) {
	t.Parallel()

	// The default logger discards everything and must not panic.
	Info(context.Background(), "dropped")
	if l := Get(context.Background()); l != defaultLogger {
		t.Fatal("Get on empty context did not return the default logger")
	}
}

func TestLevelVar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: l.Level}))
	ctx := Put(context.Background(), l)

	Debug(ctx, "invisible")
	if buf.Len() != 0 {
		t.Fatalf("debug message logged at info level: %q", buf.String())
	}

	LevelVar(ctx).Set(slog.LevelDebug)
	Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug message not logged at debug level: %q", buf.String())
	}
}
