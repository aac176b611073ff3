package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ormonbek/kassabot/internal/domain"
	"github.com/ormonbek/kassabot/internal/service/settlementservice"
)

const maxBackoff = 30 * time.Second

type Matcher interface {
	SweepPending(ctx context.Context, limit uint32) ([]domain.Request, error)
	MatchRequest(ctx context.Context, request *domain.Request) (*settlementservice.CheckResult, error)
}

// Service is the background sweep: it repeatedly scans pending deposit
// requests and tries to match each against unprocessed payments. The
// ingestor wakes it through Wake so a fresh payment is matched immediately;
// plain polling at the configured interval covers everything else.
type Service struct {
	matcher    Matcher
	interval   time.Duration
	limit      uint32
	workerPool WorkerPoolI

	wake     chan struct{}
	inFlight sync.Map
}

func New(interval time.Duration, workers int, limit uint32) *Service {
	return &Service{
		interval:   interval,
		limit:      limit,
		workerPool: NewWorkerPool(workers),
		wake:       make(chan struct{}, 1),
	}
}

// Start launches the sweep loop. The matcher is bound here rather than in
// New because the payment ingestor holds the watcher as its wake target
// while the matcher is constructed from the same repositories.
func (s *Service) Start(ctx context.Context, matcher Matcher) {
	s.matcher = matcher
	zap.L().Info("payment watcher started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Wake requests an immediate sweep. Non-blocking; a pending wake is enough.
func (s *Service) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Service) run(ctx context.Context) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping payment watcher")
			s.workerPool.Close()
			return
		case <-timer.C:
		case <-s.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}

		if err := s.sweep(ctx); err != nil {
			failures++
			zap.L().Error("sweep failed", zap.Int("consecutive_failures", failures), zap.Error(err))
		} else {
			failures = 0
		}
		timer.Reset(s.delay(failures))
	}
}

// delay backs off exponentially on consecutive sweep failures and returns to
// the base interval on the first success.
func (s *Service) delay(failures int) time.Duration {
	if failures == 0 {
		return s.interval
	}
	d := s.interval << uint(failures)
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

func (s *Service) sweep(ctx context.Context) error {
	requests, err := s.matcher.SweepPending(ctx, s.limit)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, request := range requests {
		request := request

		if _, loaded := s.inFlight.LoadOrStore(request.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(request.ID)
				return s.handleRequest(ctx, request)
			})
			if err != nil {
				s.inFlight.Delete(request.ID)
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *Service) handleRequest(ctx context.Context, request domain.Request) error {
	result, err := s.matcher.MatchRequest(ctx, &request)
	if err != nil {
		return err
	}
	if result.Processed {
		zap.L().Info("watcher settled request",
			zap.Int("request_id", request.ID),
			zap.String("payment_id", result.PaymentID.String()))
	}
	return nil
}
