package practicesession

import (
	"errors"
	"time"
)

const (
	MinTimerDuration     = 10 * time.Second
	MaxTimerDuration     = 600 * time.Second
	DefaultTimerDuration = 60 * time.Second
)

// ErrInvalidTimer is returned for a duration outside [MinTimerDuration, MaxTimerDuration].
var ErrInvalidTimer = errors.New("timer duration must be between 10 and 600 seconds")

// SessionConfig holds the user-chosen constraints for rounds.
type SessionConfig struct {
	Topics        []string // empty = every topic in the bank
	Difficulties  []int    // empty = every difficulty in the bank
	TimerEnabled  bool
	TimerDuration time.Duration
}

// DefaultConfig returns a config with no filters and the timer off.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		Topics:        nil,
		Difficulties:  nil,
		TimerEnabled:  false,
		TimerDuration: DefaultTimerDuration,
	}
}

// ValidateTimerDuration checks d against the allowed range.
func ValidateTimerDuration(d time.Duration) error {
	if d < MinTimerDuration || d > MaxTimerDuration {
		return ErrInvalidTimer
	}
	return nil
}
