package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRunner struct {
	calls []int
	err   error
}

func (f *fakeRunner) RunBatch(_ context.Context, difficulty int, _ time.Time) error {
	f.calls = append(f.calls, difficulty)
	return f.err
}

func TestRunOnceInvokesRunner(t *testing.T) {
	runner := &fakeRunner{}
	s, err := New(runner, []int{1, 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s.runOnce(2)

	if len(runner.calls) != 1 || runner.calls[0] != 2 {
		t.Errorf("runner calls = %v, want [2]", runner.calls)
	}
}

func TestRunOnceSwallowsRunnerError(t *testing.T) {
	// A failed run is logged, not propagated: the next day's job must
	// still fire.
	runner := &fakeRunner{err: errors.New("provider down")}
	s, err := New(runner, []int{1})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s.runOnce(1)

	if len(runner.calls) != 1 {
		t.Errorf("runner calls = %v, want one call", runner.calls)
	}
}
