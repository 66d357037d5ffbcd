// Package jobs provides scheduled background tasks for the table-orders service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. CartSweeperJob - Runs every minute and discards carts nobody touched for the idle TTL
// 2. OrderMetricsJob - Runs every 15 seconds and refreshes the orders_by_status gauge
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewCartSweeperJob(sweepHandler, cfg.CartIdleTTL, orderMetrics, logger),
//		jobs.NewOrderMetricsJob(statsHandler, orderMetrics, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A failed start stops the jobs that
// already started.
package jobs
