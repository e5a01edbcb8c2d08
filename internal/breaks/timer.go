// Package breaks implements the study-break reminder timer: a two-state
// machine that counts from the last reset toward a threshold and signals
// a one-shot reminder when the threshold is reached.
package breaks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultThreshold is the break interval used when no override is configured.
const DefaultThreshold = 20 * time.Minute

// Reminder is the one-shot payload handed to the notification collaborator
// when a Running episode crosses the threshold. EpisodeID identifies the
// Running episode that produced it, so a notifier can deduplicate.
type Reminder struct {
	EpisodeID string
	Message   string
}

// Timer is the break countdown. It is poll-driven: nothing advances it
// except Check calls made during render passes, so countdown accuracy is
// bounded by how often the caller re-renders. At most one Timer exists per
// process.
type Timer struct {
	threshold time.Duration
	start     time.Time
	pending   bool
	episodeID string
}

// NewTimer starts a Running episode at now with the given threshold.
// Non-positive thresholds fall back to DefaultThreshold.
func NewTimer(threshold time.Duration, now time.Time) *Timer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Timer{
		threshold: threshold,
		start:     now,
		episodeID: uuid.New().String(),
	}
}

// Threshold returns the configured break interval.
func (t *Timer) Threshold() time.Duration {
	return t.threshold
}

// Pending reports whether a reminder is due and unacknowledged.
func (t *Timer) Pending() bool {
	return t.pending
}

// Check evaluates the state machine at now. It returns a Reminder exactly
// once per episode: the call that transitions Running -> Pending produces
// it, and the transition cannot re-fire until the reminder is acknowledged.
func (t *Timer) Check(now time.Time) (Reminder, bool) {
	if t.pending {
		return Reminder{}, false
	}
	if now.Sub(t.start) < t.threshold {
		return Reminder{}, false
	}
	t.pending = true
	return Reminder{
		EpisodeID: t.episodeID,
		Message: fmt.Sprintf("Time for a break! You have been studying for %s.",
			formatThreshold(t.threshold)),
	}, true
}

// Acknowledge clears the pending reminder and starts a new Running episode
// at now. Called when the reminder has been shown.
func (t *Timer) Acknowledge(now time.Time) {
	t.restart(now)
}

// Reset starts a new Running episode at now regardless of state. Called on
// the explicit user action.
func (t *Timer) Reset(now time.Time) {
	t.restart(now)
}

func (t *Timer) restart(now time.Time) {
	t.start = now
	t.pending = false
	t.episodeID = uuid.New().String()
}

// Remaining returns max(0, threshold - elapsed). Read-only.
func (t *Timer) Remaining(now time.Time) time.Duration {
	r := t.threshold - now.Sub(t.start)
	if r < 0 {
		return 0
	}
	return r
}

// Fraction returns min(1, elapsed/threshold) for progress display. Read-only.
func (t *Timer) Fraction(now time.Time) float64 {
	f := float64(now.Sub(t.start)) / float64(t.threshold)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// FormatRemaining renders the remaining time as m:ss for the header.
func (t *Timer) FormatRemaining(now time.Time) string {
	r := t.Remaining(now)
	mins := int(r.Minutes())
	secs := int(r.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func formatThreshold(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	return fmt.Sprintf("%d minutes", int(d.Minutes()))
}
