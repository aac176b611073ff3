package watcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/service/settlementservice"
)

type fakeMatcher struct {
	mu       sync.Mutex
	pending  []domain.Request
	matched  []int
	sweepErr error
	matchErr error
	block    chan struct{}
}

func (f *fakeMatcher) SweepPending(_ context.Context, _ uint32) ([]domain.Request, error) {
	return f.pending, f.sweepErr
}

func (f *fakeMatcher) MatchRequest(_ context.Context, request *domain.Request) (*settlementservice.CheckResult, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.matched = append(f.matched, request.ID)
	f.mu.Unlock()
	if f.matchErr != nil {
		return nil, f.matchErr
	}
	return &settlementservice.CheckResult{Processed: false, Reason: "no matching payment"}, nil
}

func (f *fakeMatcher) matchedIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, len(f.matched))
	copy(ids, f.matched)
	return ids
}

func newTestService(matcher Matcher) *Service {
	s := New(10*time.Millisecond, 2, 100)
	s.matcher = matcher
	return s
}

func TestSweep(t *testing.T) {
	matcher := &fakeMatcher{
		pending: []domain.Request{{ID: 1}, {ID: 2}},
	}
	s := newTestService(matcher)
	defer s.workerPool.Close()

	assert.NoError(t, s.sweep(context.Background()))

	assert.Eventually(t, func() bool {
		return len(matcher.matchedIDs()) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestSweepError(t *testing.T) {
	matcher := &fakeMatcher{sweepErr: errors.New("db down")}
	s := newTestService(matcher)
	defer s.workerPool.Close()

	assert.Error(t, s.sweep(context.Background()))
}

func TestSweepSkipsInFlightRequests(t *testing.T) {
	block := make(chan struct{})
	matcher := &fakeMatcher{
		pending: []domain.Request{{ID: 1}},
		block:   block,
	}
	s := newTestService(matcher)
	defer s.workerPool.Close()

	assert.NoError(t, s.sweep(context.Background()))
	// The first sweep's task is still blocked inside the matcher, so a second
	// sweep must not enqueue the same request again.
	assert.NoError(t, s.sweep(context.Background()))
	close(block)

	assert.Eventually(t, func() bool {
		return len(matcher.matchedIDs()) == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, matcher.matchedIDs(), 1)
}

func TestDelayBacksOffOnFailures(t *testing.T) {
	s := New(100*time.Millisecond, 1, 10)

	assert.Equal(t, 100*time.Millisecond, s.delay(0))
	assert.Equal(t, 200*time.Millisecond, s.delay(1))
	assert.Equal(t, 400*time.Millisecond, s.delay(2))
	assert.Equal(t, maxBackoff, s.delay(20))
}

func TestWakeIsNonBlocking(t *testing.T) {
	s := New(time.Hour, 1, 10)

	// A second wake with one already pending must not block.
	s.Wake()
	s.Wake()

	select {
	case <-s.wake:
	default:
		t.Fatal("expected a pending wake signal")
	}
}

func TestStartStopsOnContextCancel(t *testing.T) {
	matcher := &fakeMatcher{pending: []domain.Request{{ID: 1}}}
	s := New(5*time.Millisecond, 1, 10)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx, matcher)

	assert.Eventually(t, func() bool {
		return len(matcher.matchedIDs()) >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	// The loop closes the pool on cancel; the sync.Once guard makes an extra
	// Close call safe.
	s.workerPool.Close()
}
