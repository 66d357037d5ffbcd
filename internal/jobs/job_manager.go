package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartSweeperJob  *CartSweeperJob
	orderMetricsJob *OrderMetricsJob
}

func NewJobManager(cartSweeperJob *CartSweeperJob, orderMetricsJob *OrderMetricsJob) *JobManager {
	return &JobManager{
		cartSweeperJob:  cartSweeperJob,
		orderMetricsJob: orderMetricsJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order metrics job: %w", err)
	}

	if err := jm.cartSweeperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderMetricsJob.Stop()
		return fmt.Errorf("failed to start cart sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.cartSweeperJob.Stop()
	jm.orderMetricsJob.Stop()
}
