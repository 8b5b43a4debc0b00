// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Every 10 seconds retries automatic assignment for orders still registered
// 2. PaymentTokenSweepJob - Every minute drops expired one-time payment tokens
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewCourierAssignmentJob(orderRepo, assignHandler, 5*time.Second, logger),
//		jobs.NewPaymentTokenSweepJob(tokenStore, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job ends a run early when no courier is free and skips orders
// that left registered since they were listed. Other errors are logged.
package jobs
