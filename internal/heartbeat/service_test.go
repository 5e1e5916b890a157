package heartbeat

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingVerifier struct {
	calls atomic.Int32
	err   error
}

func (v *countingVerifier) Verify(_ context.Context) error {
	v.calls.Add(1)
	return v.err
}

func TestStart_VerifiesOnTick(t *testing.T) {
	v := &countingVerifier{}
	s := NewService(v, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if v.calls.Load() == 0 {
		t.Error("expected at least one verification")
	}
}

func TestStart_VerifyFailureKeepsLooping(t *testing.T) {
	v := &countingVerifier{err: errors.New("invalid_auth")}
	s := NewService(v, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done
	if v.calls.Load() < 2 {
		t.Errorf("expected repeated checks despite failure, got %d", v.calls.Load())
	}
}

func TestNewService_DefaultInterval(t *testing.T) {
	s := NewService(&countingVerifier{}, 0)
	if s.interval != 30*time.Minute {
		t.Errorf("interval = %v", s.interval)
	}
}
