package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Notifier mengirim push notification ke satu device (FCM token).
type Notifier interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// NopNotifier dipakai kalau FCM tidak dikonfigurasi.
type NopNotifier struct{}

func (NopNotifier) Send(context.Context, string, string, string, map[string]string) error {
	return nil
}

type FCMNotifier struct {
	client *messaging.Client
}

// NewFCMNotifier menginisialisasi koneksi ke Firebase dari file service account JSON.
func NewFCMNotifier(ctx context.Context, credentialsFile string) (*FCMNotifier, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}
	return &FCMNotifier{client: client}, nil
}

func (n *FCMNotifier) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data, // Data tambahan (misal: appointment_id: "123")
	}

	if _, err := n.client.Send(ctx, message); err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}
	return nil
}
