package events

import (
	"log/slog"
	"time"
)

// retryBaseDelay doubles on each attempt: 50ms, 100ms, 200ms...
const retryBaseDelay = 50 * time.Millisecond

// PublishWithRetry sends event, retrying with exponential backoff up to
// maxRetries attempts. Live updates are best effort: callers log the
// returned error and carry on. A nil client is a no-op.
func PublishWithRetry(client EventPublisher, event Event, maxRetries int) error {
	if client == nil {
		return nil
	}

	var lastErr error
	for attempt := range maxRetries {
		err := client.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"report_id", event.ReportID)
			}
			return nil
		}
		lastErr = err

		if attempt < maxRetries-1 {
			delay := retryBaseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	if lastErr != nil {
		slog.Warn("event publish failed after all retries",
			"attempts", maxRetries,
			"event_type", event.Type,
			"report_id", event.ReportID,
			"error", lastErr)
	}
	return lastErr
}
