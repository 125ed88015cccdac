package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/kolamku/internal/config"
)

const refreshTimeout = 2 * time.Minute

// CatalogRefresher reloads supplier data from upstream.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron    *cron.Cron
	catalog CatalogRefresher
	cfg     config.SuppliersConfig
	logger  *zap.Logger

	// tracks refreshes started outside the cron loop
	wg sync.WaitGroup
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SuppliersConfig, catalog CatalogRefresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Standard 5-field parser; jobs do not overlap when upstream is slow.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	return &Scheduler{
		cron:    c,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

// Start registers the catalog refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("refresh_cron", s.cfg.RefreshCron))

	id, err := s.cron.AddFunc(s.cfg.RefreshCron, s.refreshCatalog)
	if err != nil {
		return fmt.Errorf("schedule catalog refresh %q: %w", s.cfg.RefreshCron, err)
	}

	if s.cfg.RefreshOnBoot {
		// The wrapped job shares the skip-if-running guard with scheduled runs.
		job := s.cron.Entry(id).WrappedJob
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			job.Run()
		}()
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running refreshes, including the
// boot refresh, to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
	s.wg.Wait()
}

func (s *Scheduler) refreshCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.catalog.Refresh(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Warn("catalog refresh timed out", zap.Duration("timeout", refreshTimeout))
			return
		}
		s.logger.Error("failed to refresh supplier catalog", zap.Error(err))
		return
	}

	s.logger.Info("supplier catalog refresh finished",
		zap.Int("suppliers", n),
		zap.Duration("duration", time.Since(start)))
}
