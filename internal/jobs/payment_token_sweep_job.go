package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// TokenSweeper drops expired payment tokens.
type TokenSweeper interface {
	Sweep() int
}

// PaymentTokenSweepJob purges expired payment tokens every minute.
type PaymentTokenSweepJob struct {
	tokens TokenSweeper
	cron   *cron.Cron
	logger *slog.Logger
}

func NewPaymentTokenSweepJob(tokens TokenSweeper, logger *slog.Logger) *PaymentTokenSweepJob {
	return &PaymentTokenSweepJob{
		tokens: tokens,
		cron:   cron.New(),
		logger: logger.With("component", "payment_token_sweep_job"),
	}
}

// Start begins the sweep job.
func (j *PaymentTokenSweepJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.RunOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment token sweep job started (running every minute)")
	return nil
}

func (j *PaymentTokenSweepJob) RunOnce() {
	if removed := j.tokens.Sweep(); removed > 0 {
		j.logger.DebugContext(context.Background(), "Expired payment tokens removed", "count", removed)
	}
}

// Stop stops the sweep job.
func (j *PaymentTokenSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment token sweep job stopped")
}
