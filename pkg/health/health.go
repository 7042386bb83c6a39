// Package health provides a checker registry and HTTP handler for service
// health reporting.
package health

import (
	"context"
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// CheckResult is the outcome of a single component check
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// Checker performs a single health check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc struct {
	CheckName string
	CheckFunc func(ctx context.Context) error
}

// Name returns the checker name
func (c CheckerFunc) Name() string {
	return c.CheckName
}

// Check runs the wrapped function and converts its error to a CheckResult
func (c CheckerFunc) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Name:      c.CheckName,
		Status:    StatusHealthy,
		Timestamp: start,
	}

	if err := c.CheckFunc(ctx); err != nil {
		result.Status = StatusUnhealthy
		result.Message = err.Error()
	}

	result.Duration = time.Since(start)
	return result
}

// Report is the aggregate health report across all registered checkers
type Report struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Version   string                 `json:"version,omitempty"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// HealthChecker runs registered checkers and aggregates their results
type HealthChecker struct {
	mu        sync.RWMutex
	checkers  map[string]Checker
	timeout   time.Duration
	startTime time.Time
	version   string
}

// NewHealthChecker creates a health checker with a per-check timeout
func NewHealthChecker(version string, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthChecker{
		checkers:  make(map[string]Checker),
		timeout:   timeout,
		startTime: time.Now(),
		version:   version,
	}
}

// Register adds a checker. A checker with the same name is replaced.
func (h *HealthChecker) Register(checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[checker.Name()] = checker
}

// Unregister removes a checker by name
func (h *HealthChecker) Unregister(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.checkers, name)
}

// Check runs every registered checker and aggregates the results. The report
// is unhealthy if any check fails.
func (h *HealthChecker) Check(ctx context.Context) Report {
	h.mu.RLock()
	checkers := make([]Checker, 0, len(h.checkers))
	for _, c := range h.checkers {
		checkers = append(checkers, c)
	}
	h.mu.RUnlock()

	report := Report{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    make(map[string]CheckResult, len(checkers)),
	}

	for _, checker := range checkers {
		checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
		result := checker.Check(checkCtx)
		cancel()

		report.Checks[checker.Name()] = result
		if result.Status == StatusUnhealthy {
			report.Status = StatusUnhealthy
		} else if result.Status == StatusDegraded && report.Status == StatusHealthy {
			report.Status = StatusDegraded
		}
	}

	return report
}
