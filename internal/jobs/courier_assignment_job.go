package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrderBatch bounds how many registered orders one run picks up.
const PendingOrderBatch = 50

// PendingOrderReader lists orders still waiting for a courier.
type PendingOrderReader interface {
	GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error)
}

// CourierAssignmentJob retries automatic assignment for orders left registered.
// Runs every 10 seconds.
type CourierAssignmentJob struct {
	orders  PendingOrderReader
	handler commands.CourierAssigner
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates a new job for assigning couriers. timeout
// bounds one run.
func NewCourierAssignmentJob(
	orders PendingOrderReader,
	handler commands.CourierAssigner,
	timeout time.Duration,
	logger *slog.Logger,
) *CourierAssignmentJob {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CourierAssignmentJob{
		orders:  orders,
		handler: handler,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RunOnce(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started (running every 10 seconds)")
	return nil
}

// RunOnce tries every pending order, oldest first, and returns how many got a
// courier. It stops early once no courier is free.
func (j *CourierAssignmentJob) RunOnce(ctx context.Context) int {
	pending, err := j.orders.GetAllInStatus(ctx, order.Registered, PendingOrderBatch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list pending orders", "error", err)
		return 0
	}

	assigned := 0
	for _, o := range pending {
		cmd, err := commands.NewAssignCourierCommand(o.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid pending order", "order_id", o.ID().String(), "error", err)
			continue
		}

		_, err = j.handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			assigned++
		case errors.Is(err, commands.ErrNoFreeCouriersFound):
			return assigned
		case errors.Is(err, commands.ErrOrderIsNotPending):
			// Taken by an admin or a checkout attempt in the meantime.
		default:
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "order_id", o.ID().String(), "error", err)
		}
	}

	return assigned
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
