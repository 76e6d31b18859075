package events

import (
	"context"
	"log/slog"
)

// Bridge forwards events received from remote onto bus until ctx is done or
// remote stops delivering. Events that originated on bus itself are skipped,
// since the daemon echoes every event back to its sender.
func Bridge(ctx context.Context, remote EventPublisher, bus *Bus) error {
	ch, err := remote.Listen(ctx)
	if err != nil {
		return err
	}

	go func() {
		for event := range ch {
			if event.Type != EventTasksChanged || event.Origin == bus.Origin() {
				continue
			}
			if err := bus.Publish(event); err != nil {
				slog.Debug("dropping remote event", "error", err)
				return
			}
		}
	}()

	return nil
}
