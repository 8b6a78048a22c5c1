package kafka

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
)

type Config struct {
	Addrs   []string `envconfig:"KAFKA_ADDRS"`
	Topic   string   `envconfig:"KAFKA_LENDING_TOPIC" default:"lending"`
	Breaker circuit_breaker.Config
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Enqueuer interface {
	Enqueue(topic, key string, v any) error
	Close() error
}

func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       cb,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

// Enqueue sends v as JSON. Messages sharing a key land on the same partition.
func (q *enqueuerImpl) Enqueue(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

func (q *enqueuerImpl) Close() error {
	return q.producer.Close()
}
