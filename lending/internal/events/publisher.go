package events

import (
	"context"
	"strconv"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

// Publisher writes lending events to Kafka keyed by user, so one user's
// events stay ordered.
type Publisher struct {
	enq   kafka.Enqueuer
	topic string
}

func NewPublisher(enq kafka.Enqueuer, topic string) *Publisher {
	return &Publisher{enq: enq, topic: topic}
}

func (p *Publisher) Publish(_ context.Context, event model.Event) error {
	return p.enq.Enqueue(p.topic, strconv.Itoa(event.UserID), event)
}
