// Package notification provides Notifier implementations for the product
// flow's best-effort "product added" announcements.
package notification

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pantry/config"
	"pantry/internal/domain/service"
)

// Provider names accepted in configuration.
const (
	ProviderNone = "none"
	ProviderLog  = "log"
	ProviderFCM  = "fcm"
)

// noopNotifier is a no-op implementation used when notifications are disabled.
type noopNotifier struct{}

func (n *noopNotifier) Notify(context.Context, string, string) error {
	return nil
}

// logNotifier writes the notification to the application log instead of a
// device. Used in development.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(_ context.Context, title, body string) error {
	n.logger.Info("[Notification]",
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}

// NotifierParams holds dependencies for the Notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	// If notifications are not configured, return a no-op notifier.
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNone {
		logger.Info("Notifications not configured, using no-op notifier")

		return &noopNotifier{}, nil
	}

	switch cfg.Provider {
	case ProviderLog:
		logger.Info("Using log notifier")

		return &logNotifier{logger: logger}, nil

	case ProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials path is required for fcm provider")
		}
		if cfg.Firebase.DeviceToken == "" {
			return nil, errors.New("device token is required for fcm provider")
		}
		logger.Info("Using FCM notifier",
			slog.String("credentials_path", cfg.Firebase.CredentialsPath),
		)

		return NewFirebaseNotifier(params.Ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}
}
