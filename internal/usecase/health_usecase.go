package usecase

import (
	"context"
	"sort"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// HealthCheck probes one backing service
type HealthCheck func(ctx context.Context) error

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthUsecase reports on the given dependencies. Services that are not
// configured are simply left out of checks.
func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

// Check runs every probe and reports "ok" or "unavailable" per service.
// The bool is false when any probe failed.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	out := make(map[string]string, len(names)+1)
	for _, name := range names {
		probeCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := u.checks[name](probeCtx)
		cancel()

		if err != nil {
			healthy = false
			out[name] = "unavailable"
			continue
		}
		out[name] = "ok"
	}

	out["status"] = "ok"
	if !healthy {
		out["status"] = "degraded"
	}
	return out, healthy
}
