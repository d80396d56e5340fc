package deal

import (
	"context"
	"fxdeals/internal/adapters"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultWarmUpJobDuration = 30 * time.Second
	defaultWarmUpBatchLimit  = 10_000
)

type Scheduler struct {
	repo  adapters.DealRepository
	cache adapters.KnownDealCache

	warmUpJobDuration time.Duration
	warmUpBatchLimit  int

	// guards since and sched
	mu    sync.Mutex
	since time.Time
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func(jobCtx context.Context) {
		s.runWarmUp(jobCtx, uuid.NewString())
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.warmUpJobDuration),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) runWarmUp(ctx context.Context, execID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := WarmKnownDeals(ctx, execID, s.repo, s.cache, s.since, s.warmUpBatchLimit)
	if err != nil {
		logrus.Errorf("Warm known deals job %s failed: %v", execID, err)
		return
	}
	s.since = next
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func NewScheduler(repo adapters.DealRepository, cache adapters.KnownDealCache, warmUpJobDuration time.Duration, warmUpBatchLimit int) *Scheduler {
	if warmUpJobDuration <= 0 {
		warmUpJobDuration = defaultWarmUpJobDuration
	}
	if warmUpBatchLimit <= 0 {
		warmUpBatchLimit = defaultWarmUpBatchLimit
	}
	return &Scheduler{
		repo:              repo,
		cache:             cache,
		warmUpJobDuration: warmUpJobDuration,
		warmUpBatchLimit:  warmUpBatchLimit,
	}
}
