package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	paymentTokenSweepJob *PaymentTokenSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(assignment *CourierAssignmentJob, sweep *PaymentTokenSweepJob) *JobManager {
	return &JobManager{
		courierAssignmentJob: assignment,
		paymentTokenSweepJob: sweep,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if err := jm.paymentTokenSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start payment token sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.paymentTokenSweepJob.Stop()
	jm.courierAssignmentJob.Stop()
}
