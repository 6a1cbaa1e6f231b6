package service

import "context"

// Haptics triggers vibration feedback on the user's device. Best-effort:
// a failed pulse never fails the operation that requested it.
type Haptics interface {
	// Pulse fires a single haptic pulse.
	Pulse(ctx context.Context)
}

// Confirmer asks the user to confirm a destructive action before it runs.
// It resumes the calling flow with the user's choice; it does not block
// the process.
type Confirmer interface {
	// Confirm presents the message and reports whether the user confirmed.
	Confirm(ctx context.Context, message string) (bool, error)
}
