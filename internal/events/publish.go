package events

import (
	"log/slog"
	"time"
)

// Retry controls how a change event is re-sent to the daemon
type Retry struct {
	Attempts  int           // total sends, including the first
	BaseDelay time.Duration // doubled after every failed send
}

// DefaultRetry gives up after 50ms + 100ms of backoff, so a store write
// waits at most a fraction of a second on a stuck daemon
var DefaultRetry = Retry{Attempts: 3, BaseDelay: 50 * time.Millisecond}

// delay returns the pause after the given failed attempt
func (r Retry) delay(attempt int) time.Duration {
	return r.BaseDelay << attempt
}

// PublishWithRetry sends event to client, retrying with exponential backoff.
// A nil client means no daemon and is not an error. The error of the last
// attempt is returned; callers log it and carry on.
func PublishWithRetry(client EventPublisher, event Event, retry Retry) error {
	if client == nil {
		return nil
	}
	attempts := max(retry.Attempts, 1)

	var err error
	for attempt := range attempts {
		if err = client.SendEvent(event); err == nil {
			if attempt > 0 {
				slog.Debug("change event sent after retry",
					"attempt", attempt+1,
					"op", event.Op,
					"task_id", event.TaskID)
			}
			return nil
		}

		if attempt == attempts-1 {
			break
		}
		slog.Debug("change event send failed, retrying",
			"attempt", attempt+1,
			"attempts", attempts,
			"retry_delay", retry.delay(attempt),
			"error", err)
		time.Sleep(retry.delay(attempt))
	}
	return err
}
