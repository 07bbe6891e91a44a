package jobs

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultProbeSchedule = "@every 30s"

// Prober checks one external dependency.
type Prober interface {
	Ping(ctx context.Context) error
}

// Reporter receives every probe result.
type Reporter interface {
	Report(name string, err error)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(name string, err error)

func (f ReporterFunc) Report(name string, err error) {
	f(name, err)
}

// DependencyProbeJob periodically pings every registered dependency.
type DependencyProbeJob struct {
	probes    map[string]Prober
	names     []string
	reporters []Reporter
	timeout   time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger

	mu      sync.Mutex
	lastErr map[string]error
	seen    map[string]bool
}

// NewDependencyProbeJob creates a probe job. Probes are run in name order.
func NewDependencyProbeJob(
	schedule string,
	timeout time.Duration,
	probes map[string]Prober,
	reporters []Reporter,
	logger *zap.Logger,
) (*DependencyProbeJob, error) {
	if len(probes) == 0 {
		return nil, errors.New("at least one probe is required")
	}
	if timeout <= 0 {
		return nil, errors.New("probe timeout must be positive")
	}
	if schedule == "" {
		schedule = DefaultProbeSchedule
	}

	logger = logger.With(zap.String("component", "dependency_probe_job"))

	return &DependencyProbeJob{
		probes:    probes,
		names:     slices.Sorted(maps.Keys(probes)),
		reporters: reporters,
		timeout:   timeout,
		schedule:  schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger)))),
		),
		logger:  logger,
		lastErr: make(map[string]error, len(probes)),
		seen:    make(map[string]bool, len(probes)),
	}, nil
}

// RunOnce pings every dependency sequentially and reports the results.
func (j *DependencyProbeJob) RunOnce(ctx context.Context) {
	for _, name := range j.names {
		probeCtx, cancel := context.WithTimeout(ctx, j.timeout)
		err := j.probes[name].Ping(probeCtx)
		cancel()

		for _, reporter := range j.reporters {
			reporter.Report(name, err)
		}
		j.logTransition(name, err)
	}
}

// Start schedules the job. It does not run a probe immediately; call RunOnce
// for that.
func (j *DependencyProbeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Dependency probe job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop unschedules the job and waits for a running probe to finish.
func (j *DependencyProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Dependency probe job stopped")
}

func (j *DependencyProbeJob) logTransition(name string, err error) {
	j.mu.Lock()
	prev, seen := j.lastErr[name], j.seen[name]
	j.lastErr[name] = err
	j.seen[name] = true
	j.mu.Unlock()

	switch {
	case err != nil && (!seen || prev == nil):
		j.logger.Warn("Dependency is down", zap.String("dependency", name), zap.Error(err))
	case err == nil && (!seen || prev != nil):
		j.logger.Info("Dependency is up", zap.String("dependency", name))
	}
}
