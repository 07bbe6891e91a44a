// Package health keeps the latest reachability result for each external
// dependency. Probes write to it; the /health endpoint reads it.
package health

import (
	"slices"
	"strings"
	"sync"
	"time"
)

type Status string

const (
	StatusUnknown Status = "unknown"
	StatusUp      Status = "up"
	StatusDown    Status = "down"
)

// Check is the last known state of one dependency.
type Check struct {
	Name      string
	Status    Status
	Error     string
	CheckedAt time.Time
}

// Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
	now    func() time.Time
}

// NewRegistry tracks the named dependencies, all starting as unknown.
func NewRegistry(names ...string) *Registry {
	r := &Registry{
		checks: make(map[string]Check, len(names)),
		now:    time.Now,
	}
	for _, name := range names {
		r.checks[name] = Check{Name: name, Status: StatusUnknown}
	}
	return r
}

// Report records a probe result. A nil err marks the dependency up.
func (r *Registry) Report(name string, err error) {
	check := Check{Name: name, Status: StatusUp, CheckedAt: r.now()}
	if err != nil {
		check.Status = StatusDown
		check.Error = err.Error()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = check
}

// Snapshot returns every check ordered by name.
func (r *Registry) Snapshot() []Check {
	r.mu.RLock()
	checks := make([]Check, 0, len(r.checks))
	for _, check := range r.checks {
		checks = append(checks, check)
	}
	r.mu.RUnlock()

	slices.SortFunc(checks, func(a, b Check) int {
		return strings.Compare(a.Name, b.Name)
	})
	return checks
}

// Healthy reports whether every tracked dependency is up.
func (r *Registry) Healthy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, check := range r.checks {
		if check.Status != StatusUp {
			return false
		}
	}
	return true
}
