// Package kafka relays delivery notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/notification"
	"fastfeet/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// NotificationMessage is the JSON value of every record on the notification topic.
type NotificationMessage struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"deliveryId"`
	RecipientID string    `json:"recipientId"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Publisher struct {
	client *kgo.Client
	topic  string
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: topic}, nil
}

// EnsureTopic creates the notification topic with the broker's default partition
// count and replication factor. An existing topic is left untouched.
func (p *Publisher) EnsureTopic(ctx context.Context) error {
	resp, err := kadm.NewClient(p.client).CreateTopic(ctx, -1, -1, nil, p.topic)
	if err != nil {
		return err
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return resp.Err
	}
	return nil
}

// Publish produces one record per notification keyed by delivery id, so the
// messages of a delivery stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	records := make([]*kgo.Record, 0, len(notifications))
	for _, n := range notifications {
		value, err := json.Marshal(NotificationMessage{
			ID:          n.ID().String(),
			DeliveryID:  n.DeliveryID().String(),
			RecipientID: n.RecipientID().String(),
			Message:     n.Message(),
			CreatedAt:   n.CreatedAt(),
		})
		if err != nil {
			return err
		}

		records = append(records, &kgo.Record{
			Key:   []byte(n.DeliveryID().String()),
			Value: value,
		})
	}

	return p.client.ProduceSync(ctx, records...).FirstErr()
}

func (p *Publisher) Close() {
	p.client.Close()
}
