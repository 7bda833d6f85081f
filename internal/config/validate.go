package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Matching.validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.MatchesPerMinute < 0 {
		return fmt.Errorf("matches_per_minute must be >= 0 (got %d)", r.MatchesPerMinute)
	}
	if r.MatchesPerMinute > 0 {
		if r.Burst < 1 {
			return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
		}
		if r.CleanupInterval <= 0 {
			return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
		}
	}
	return nil
}

func (m *MatchingConfig) validate() error {
	if m.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", m.MaxLimit)
	}
	if m.DefaultLimit <= 0 || m.DefaultLimit > m.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..%d (got %d)", m.MaxLimit, m.DefaultLimit)
	}
	if m.ParallelThreshold < 0 {
		return fmt.Errorf("parallel_threshold must be >= 0 (got %d)", m.ParallelThreshold)
	}
	if m.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", m.Workers)
	}
	if m.GoodThreshold < 0 || m.GoodThreshold > m.ExcellentThreshold || m.ExcellentThreshold > 1 {
		return fmt.Errorf("thresholds must satisfy 0 <= good <= excellent <= 1 (got good=%v excellent=%v)",
			m.GoodThreshold, m.ExcellentThreshold)
	}

	w := m.Weights
	for name, v := range map[string]float64{
		"budget": w.Budget, "room": w.Room, "bathroom": w.Bathroom, "dietary": w.Dietary,
		"pets": w.Pets, "cleanliness": w.Cleanliness, "sleep": w.Sleep, "guests": w.Guests, "study": w.Study,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be >= 0 (got %v)", name, v)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("weights must have a positive sum")
	}

	return nil
}
