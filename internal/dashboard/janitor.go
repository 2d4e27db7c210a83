package dashboard

import (
	"context"
	"log/slog"
	"time"
)

// Janitor periodically evicts sessions that have been idle longer than the TTL.
type Janitor struct {
	interval time.Duration
	ttl      time.Duration
	sessions *SessionStore
	nowFn    func() time.Time
}

func NewJanitor(sessions *SessionStore, interval, ttl time.Duration) *Janitor {
	return &Janitor{
		interval: interval,
		ttl:      ttl,
		sessions: sessions,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Start sweeps on every tick. Runs until context is cancelled.
func (j *Janitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	slog.Info("[Sessions] Starting idle session janitor",
		"interval", j.interval,
		"idle_ttl", j.ttl,
	)

	for {
		select {
		case <-ticker.C:
			j.Sweep()
		case <-ctx.Done():
			slog.Info("[Sessions] Janitor stopping (context cancelled)", "active_sessions", j.sessions.Len())
			return nil
		}
	}
}

// Sweep evicts idle sessions once.
func (j *Janitor) Sweep() int {
	evicted := j.sessions.EvictIdle(j.nowFn().Add(-j.ttl))
	if evicted > 0 {
		slog.Info("[Sessions] Evicted idle sessions",
			"evicted", evicted,
			"active_sessions", j.sessions.Len(),
		)
	}
	return evicted
}
