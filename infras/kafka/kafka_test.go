package kafka_test

import (
	"context"
	"testing"

	"luna/config"
	"luna/infras/kafka"
	"luna/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

type bookingEvent struct {
	BookingID string  `json:"booking_id"`
	Total     float64 `json:"total_price"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "bk-1", Value: bookingEvent{BookingID: "bk-1", Total: 240000}}

	kafkaMsg, err := msg.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, []byte("bk-1"), kafkaMsg.Key)
	assert.JSONEq(t, `{"booking_id":"bk-1","total_price":240000}`, string(kafkaMsg.Value))

	decoded, err := kafka.DecodeValue[bookingEvent](kafkaMsg)

	assert.NoError(t, err)
	assert.Equal(t, "bk-1", decoded.BookingID)
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestClient_SendMessages_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	client := kafka.New(cfg, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "luna.bookings", kafka.Message{Key: "bk-1", Value: bookingEvent{BookingID: "bk-1"}})
	assert.NoError(t, err)

	err = client.SendMessages(context.Background(), "", kafka.Message{Key: "bk-1"})
	assert.Error(t, err)

	assert.NoError(t, client.Close())
}
