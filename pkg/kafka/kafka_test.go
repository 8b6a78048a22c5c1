package kafka_test

import (
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"book_id":3}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})
	q := kafka.NewEnqueuer(producer, circuit_breaker.New(circuit_breaker.Config{
		RecordLength: 2, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1,
	}))

	require.NoError(t, q.Enqueue("lending", "7", map[string]int{"book_id": 3}))
	require.NoError(t, q.Close())
}

func TestEnqueuer_BreakerOpens(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	q := kafka.NewEnqueuer(producer, circuit_breaker.New(circuit_breaker.Config{
		RecordLength: 2, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1,
	}))

	require.ErrorIs(t, q.Enqueue("lending", "", 1), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, q.Enqueue("lending", "", 2), sarama.ErrOutOfBrokers)
	// no third expectation: the breaker must short-circuit
	require.ErrorIs(t, q.Enqueue("lending", "", 3), circuit_breaker.ErrOpenCB)
	require.NoError(t, q.Close())
}
