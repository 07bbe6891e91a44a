package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ProbeSettings configures the dependency probe job.
type ProbeSettings struct {
	Schedule  string
	Timeout   time.Duration
	Probes    map[string]Prober
	Reporters []Reporter
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dependencyProbeJob *DependencyProbeJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(settings ProbeSettings, logger *zap.Logger) (*JobManager, error) {
	probeJob, err := NewDependencyProbeJob(
		settings.Schedule,
		settings.Timeout,
		settings.Probes,
		settings.Reporters,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dependency probe job: %w", err)
	}

	return &JobManager{dependencyProbeJob: probeJob}, nil
}

// StartAll runs one probe round synchronously so /health is meaningful from
// the first request, then starts the schedules.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.dependencyProbeJob.RunOnce(ctx)

	if err := jm.dependencyProbeJob.Start(); err != nil {
		return fmt.Errorf("failed to start dependency probe job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dependencyProbeJob.Stop()
}
