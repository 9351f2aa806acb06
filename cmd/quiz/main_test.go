package main

import (
	"errors"
	"slices"
	"testing"
	"time"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
)

func TestApplyTimerFlag(t *testing.T) {
	enabled := practicesession.DefaultConfig()
	enabled.TimerEnabled = true

	tests := []struct {
		name    string
		d       time.Duration
		wantOn  bool
		wantDur time.Duration
		wantErr error
	}{
		{name: "zero disables", d: 0, wantOn: false, wantDur: practicesession.DefaultTimerDuration},
		{name: "duration enables", d: 45 * time.Second, wantOn: true, wantDur: 45 * time.Second},
		{name: "out of range", d: 5 * time.Second, wantOn: true, wantDur: practicesession.DefaultTimerDuration, wantErr: practicesession.ErrInvalidTimer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := practicesession.NewSession(practicesession.WithConfig(enabled))

			err := applyTimerFlag(s, tc.d)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			cfg := s.Config()
			if cfg.TimerEnabled != tc.wantOn || cfg.TimerDuration != tc.wantDur {
				t.Errorf("expected enabled=%v duration=%v, got %+v", tc.wantOn, tc.wantDur, cfg)
			}
		})
	}
}

func TestParseDifficulties(t *testing.T) {
	got, err := parseDifficulties(" 1, 3 ,,4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !slices.Equal(got, []int{1, 3, 4}) {
		t.Errorf("expected [1 3 4], got %v", got)
	}
	for _, bad := range []string{"0", "5", "hard"} {
		if _, err := parseDifficulties(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
