package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStopper struct {
	called      bool
	hadDeadline bool
	err         error
}

func (f *fakeStopper) Shutdown(ctx context.Context) error {
	f.called = true
	_, f.hadDeadline = ctx.Deadline()
	return f.err
}

func TestDrain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &fakeStopper{}

	done := make(chan error, 1)
	go func() { done <- Drain(ctx, s, time.Second) }()

	select {
	case <-done:
		t.Fatal("Drain returned before ctx was cancelled")
	case <-time.After(10 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Drain: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Drain did not return after cancel")
	}

	if !s.called {
		t.Fatal("Shutdown not called")
	}
	if !s.hadDeadline {
		t.Fatal("Shutdown context has no deadline")
	}
}

func TestDrain_PropagatesError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	want := errors.New("listener gone")
	err := Drain(ctx, &fakeStopper{err: want}, time.Second)
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestWithSignals_ParentCancel(t *testing.T) {
	parent, parentCancel := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	parentCancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("signal context not cancelled with parent")
	}
}
