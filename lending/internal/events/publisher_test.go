package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/lending/internal/events"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
)

func TestPublisher_Publish(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	event := model.NewEvent(model.EventBookReturned, 7, at)
	event.BookID, event.LoanID, event.Amount = 3, 11, decimal.NewFromInt(5)

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		require.Equal(t, "BOOK_RETURNED", got["type"])
		require.Equal(t, float64(7), got["user_id"])
		require.Equal(t, float64(11), got["loan_id"])
		require.Equal(t, "5", got["amount"])
		require.Equal(t, event.ID.String(), got["id"])
		return nil
	})
	enq := kafka.NewEnqueuer(producer, circuit_breaker.New(circuit_breaker.Config{
		RecordLength: 5, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1,
	}))

	p := events.NewPublisher(enq, "lending")
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, enq.Close())
}
