package notify

import (
	"context"
	"fmt"

	"clinic-backend/pkg/logger"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCM mengirim notifikasi lewat Firebase Cloud Messaging
type FCM struct {
	client *messaging.Client
}

// NewFCM inisialisasi koneksi ke Firebase dari file service account
func NewFCM(ctx context.Context, credentialsFile string) (*FCM, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}

	logger.Get().Info("Firebase Cloud Messaging siap", zap.String("credentials", credentialsFile))
	return &FCM{client: client}, nil
}

func (f *FCM) Notify(ctx context.Context, msg Message) error {
	id, err := f.client.Send(ctx, &messaging.Message{
		Topic: msg.Topic,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return fmt.Errorf("fcm send %s: %w", msg.Topic, err)
	}

	logger.FromContext(ctx).Debug("Notifikasi terkirim", zap.String("topic", msg.Topic), zap.String("message_id", id))
	return nil
}
