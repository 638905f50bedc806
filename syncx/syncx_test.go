// © 2026 Martin Craness. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazyGet(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[int]
		calls atomic.Int32
	)
	compute := func() int {
		calls.Add(1)
		return 42
	}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := l.Get(compute); got != 42 {
				t.Errorf("Get() = %d, want 42", got)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("compute called %d times, want 1", got)
	}
}

func TestLazyGetErr(t *testing.T) {
	t.Parallel()

	var l Lazy[string]
	wantErr := errors.New("compute failed")

	got, err := l.GetErr(func() (string, error) { return "", wantErr })
	if got != "" || !errors.Is(err, wantErr) {
		t.Fatalf("GetErr() = (%q, %v), want (%q, %v)", got, err, "", wantErr)
	}

	// The error is sticky: later calls return the first result.
	_, err = l.GetErr(func() (string, error) { return "other", nil })
	if !errors.Is(err, wantErr) {
		t.Fatalf("second GetErr() = %v, want %v", err, wantErr)
	}
}
