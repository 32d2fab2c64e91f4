package repository

import (
	"context"

	"github.com/search-enrichment-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до maxCount сообщений из стрима в рамках consumer group
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages подтверждает обработку нескольких сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим (data сериализуется в JSON)
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// PublishRaw публикует уже готовый JSON
	PublishRaw(ctx context.Context, stream string, payload []byte) error
}
