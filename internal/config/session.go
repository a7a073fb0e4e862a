package config

import (
	"fmt"
	"time"
)

type Sessions struct {
	TTL           time.Duration
	Max           int
	SweepInterval time.Duration
}

func NewSessions() (*Sessions, error) {
	ttl, err := lookupDuration("SESSION_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	maxSessions, err := lookupInt("SESSION_MAX", 10000)
	if err != nil {
		return nil, err
	}
	if maxSessions < 1 {
		return nil, fmt.Errorf("SESSION_MAX must be positive")
	}

	sweepInterval, err := lookupDuration("SESSION_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}

	sessions := &Sessions{
		TTL:           ttl,
		Max:           maxSessions,
		SweepInterval: sweepInterval,
	}

	return sessions, nil
}
