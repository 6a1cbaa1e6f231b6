// Package device provides server-side stand-ins for the collaborators that
// live on the handset: the vibration motor and the delete-confirmation
// prompt. The mobile shell performs the real interactions; these
// implementations keep the core's contracts satisfied when it runs behind
// an HTTP API.
package device

import (
	"context"
	"log/slog"

	"pantry/internal/domain/service"
)

// logHaptics records the pulse in the log. The handset vibrates on its own
// when the add response arrives.
type logHaptics struct {
	logger *slog.Logger
}

// NewLogHaptics is the constructor for logHaptics.
func NewLogHaptics(logger *slog.Logger) service.Haptics {
	return &logHaptics{logger: logger}
}

// Pulse fires a single haptic pulse.
func (h *logHaptics) Pulse(context.Context) {
	h.logger.Debug("[Haptics] pulse")
}

// staticConfirmer answers every confirmation with a fixed choice. The API
// deployment uses accept=true: the mobile shell has already shown the
// destructive-action prompt before the delete request is sent.
type staticConfirmer struct {
	accept bool
}

// NewStaticConfirmer is the constructor for staticConfirmer.
func NewStaticConfirmer(accept bool) service.Confirmer {
	return &staticConfirmer{accept: accept}
}

// Confirm reports the fixed choice for any message.
func (c *staticConfirmer) Confirm(context.Context, string) (bool, error) {
	return c.accept, nil
}
