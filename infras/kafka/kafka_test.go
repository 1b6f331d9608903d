package kafka_test

import (
	"airline/config"
	"airline/infras/kafka"
	"context"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatEvent struct {
	SeatID     string `json:"seat_id"`
	SeatNumber string `json:"seat_number"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "seat-1", Value: seatEvent{SeatID: "seat-1", SeatNumber: "12A"}}

	kafkaMsg, err := msg.ToKafkaMessage("airline.reservations")
	require.NoError(t, err)

	assert.Equal(t, "airline.reservations", kafkaMsg.Topic)
	assert.Equal(t, []byte("seat-1"), kafkaMsg.Key)

	decoded, err := kafka.Decode[seatEvent](kafkaMsg)
	require.NoError(t, err)
	assert.Equal(t, "12A", decoded.SeatNumber)
}

func TestMessage_UnmarshalableValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[seatEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestClientWithoutBrokers(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k"}), kafka.ErrNoBrokers)
	assert.ErrorIs(t, client.Consume(context.Background(), "", "topic", nil), kafka.ErrNoBrokers)
	assert.NoError(t, client.Close())
}
