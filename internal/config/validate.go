package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if err := c.LocalCache.validate(); err != nil {
		return fmt.Errorf("local_cache: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (s *StudyConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	if s.StreakScanDays <= 0 {
		return fmt.Errorf("streak_scan_days must be > 0 (got %d)", s.StreakScanDays)
	}
	if s.MaxCalendarDays <= 0 {
		return fmt.Errorf("max_calendar_days must be > 0 (got %d)", s.MaxCalendarDays)
	}

	return nil
}

func (s *SyncConfig) validate() error {
	if s.DebounceWindow < 0 {
		return fmt.Errorf("debounce_window must be >= 0 (got %v)", s.DebounceWindow)
	}
	if s.RemoteTimeout <= 0 {
		return fmt.Errorf("remote_timeout must be > 0 (got %v)", s.RemoteTimeout)
	}
	return nil
}

func (l *LocalCacheConfig) validate() error {
	switch l.Driver {
	case "memory":
		if l.MaxEntries <= 0 {
			return fmt.Errorf("max_entries must be > 0 for the memory driver (got %d)", l.MaxEntries)
		}
	case "sqlite":
		if l.Path == "" {
			return fmt.Errorf("path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory or sqlite)", l.Driver)
	}
	return nil
}
