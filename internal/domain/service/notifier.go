package service

import "context"

// Notifier delivers an immediate local notification to the user's device.
// Delivery is best-effort and fire-and-forget: callers swallow errors and
// never fail a business operation because a notification did not go out.
type Notifier interface {
	// Notify schedules an immediate notification with the given title and body.
	Notify(ctx context.Context, title, body string) error
}
