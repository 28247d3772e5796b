package mq

import (
	"context"
	"encoding/json"

	"SproutAI/app/services/assistant/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishRecommendationServed sends the served-recommendation event to Kafka.
func PublishRecommendationServed(ctx context.Context, sc *svc.ServiceContext, evt RecommendationServedEvent) error {
	if sc.RecommendedWriter == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(evt.SessionId), Value: body}
	return sc.RecommendedWriter.WriteMessages(ctx, msg)
}

// PublishCatalogRefreshed sends the catalog-refreshed event to Kafka.
func PublishCatalogRefreshed(ctx context.Context, sc *svc.ServiceContext, evt CatalogRefreshedEvent) error {
	if sc.CatalogWriter == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: nil, Value: body}
	return sc.CatalogWriter.WriteMessages(ctx, msg)
}
