package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"pantry/internal/domain/service"
)

// firebaseNotifier delivers notifications to the registered device through
// Firebase Cloud Messaging. The app is single-device, so a single token
// from configuration is enough.
type firebaseNotifier struct {
	client      *messaging.Client
	deviceToken string
}

// NewFirebaseNotifier creates a new FCM-backed notifier instance.
func NewFirebaseNotifier(ctx context.Context, credentialsPath, deviceToken string) (service.Notifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseNotifier{
		client:      client,
		deviceToken: deviceToken,
	}, nil
}

// Notify sends an immediate push notification to the registered device.
func (n *firebaseNotifier) Notify(ctx context.Context, title, body string) error {
	message := &messaging.Message{
		Token: n.deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := n.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
