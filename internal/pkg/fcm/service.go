package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	client *messaging.Client
}

func NewService(ctx context.Context) (*Service, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining messaging client: %w", err)
	}

	return &Service{client: client}, nil
}

// Message is a push to one device. Title and Body are shown by the OS,
// Data is handed to the app.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

func toMessaging(m *Message) *messaging.Message {
	msg := &messaging.Message{
		Data:  m.Data,
		Token: m.Token,
	}
	if m.Title != "" || m.Body != "" {
		msg.Notification = &messaging.Notification{
			Title: m.Title,
			Body:  m.Body,
		}
		msg.Android = &messaging.AndroidConfig{Priority: "high"}
	}

	return msg
}

func (s *Service) SendMessage(ctx context.Context, m *Message) error {
	_, err := s.client.Send(ctx, toMessaging(m))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

const batchSize = 500

// SendMessageBatch sends ms in chunks of 500 and returns how many devices
// rejected their message.
func (s *Service) SendMessageBatch(ctx context.Context, ms []*Message) (int, error) {
	messages := make([]*messaging.Message, len(ms))
	for i, m := range ms {
		messages[i] = toMessaging(m)
	}

	failures := make([]int, (len(messages)+batchSize-1)/batchSize)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(messages); i += batchSize {
		from := i
		to := i + batchSize
		if to > len(messages) {
			to = len(messages)
		}

		g.Go(func() error {
			resp, err := s.client.SendAll(ctx, messages[from:to])
			if err != nil {
				return fmt.Errorf("send message: %w", err)
			}
			failures[from/batchSize] = resp.FailureCount
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	failed := 0
	for _, f := range failures {
		failed += f
	}

	return failed, nil
}
