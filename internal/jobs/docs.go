// Package jobs provides scheduled background tasks for the support bot.
//
// Jobs run on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// DependencyProbeJob pings the order store and the intent classifier and
// reports each result to the health registry and to the metrics gauge.
// The schedule comes from PROBE_SCHEDULE and defaults to "@every 30s".
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(jobs.ProbeSettings{
//		Schedule:  cfg.ProbeSchedule,
//		Timeout:   cfg.ClassifierTimeout,
//		Probes:    map[string]jobs.Prober{ports.DependencyOrderStore: dbProbe},
//		Reporters: []jobs.Reporter{registry},
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(ctx); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Probe failures are not job failures: they are reported and logged once per
// state change. Overlapping runs are skipped.
package jobs
