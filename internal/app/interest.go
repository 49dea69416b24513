/**
 * @description
 * Cron scheduler for the opt-in interest accrual job. Disabled by default;
 * when enabled it periodically credits each active account with one month of
 * interest at the account's fixed rate.
 */
package app

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// InterestScheduler runs the interest accrual job on a cron schedule.
type InterestScheduler struct {
	cron     *cron.Cron
	bank     *Bank
	logger   *slog.Logger
	schedule string
}

// NewInterestScheduler creates a scheduler for the given bank. The schedule
// uses standard five-field cron syntax.
func NewInterestScheduler(bank *Bank, logger *slog.Logger, schedule string) *InterestScheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &InterestScheduler{
		cron:     c,
		bank:     bank,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the accrual job and starts the cron loop.
func (s *InterestScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduled interest accrual job", "schedule", s.schedule)
	return nil
}

func (s *InterestScheduler) run() {
	credited, total := s.bank.AccrueInterest()
	s.logger.Info("interest accrual complete", "accounts", credited, "total", total)
}

// Stop gracefully stops the cron scheduler. The returned context is done
// once any in-flight job has finished.
func (s *InterestScheduler) Stop() context.Context {
	return s.cron.Stop()
}
