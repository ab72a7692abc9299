package service

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/Delvoid/ecom-admin/internal/dto"
)

// publishEvent emits a catalog mutation event. Publishing is best-effort:
// a dead broker never fails the request that triggered the event.
func publishEvent(producer *kafka.Conn, eventType string, data interface{}) {
	if producer == nil {
		return
	}

	msg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("failed to marshal event")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = producer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Msgf("failed to write event (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("giving up on event")
}
