package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/domain/repository"
	"github.com/search-enrichment-service/internal/usecase"
	"github.com/search-enrichment-service/internal/worker"
)

const (
	defaultBatchSize = 20                     // максимум сообщений за раз
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second            // пауза при ошибке чтения
)

// SearchStore сохраняет обогащенный поиск (кеш и база)
type SearchStore interface {
	Store(ctx context.Context, result *usecase.EnrichmentResult) error
}

// Streams - имена входного, выходного стримов и стрима ошибок
type Streams struct {
	Input  string
	Output string
	Failed string
}

// Stats - счетчики воркера с момента запуска
type Stats struct {
	Read     uint64
	Enriched uint64
	Failed   uint64
	Skipped  uint64
}

// SearchEnrichmentWorker читает агрегированные поиски, обогащает их
// и публикует результат в выходной стрим
type SearchEnrichmentWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	enricher   usecase.DocumentEnricher
	store      SearchStore
	streams    Streams
	batchSize  int

	read     atomic.Uint64
	enriched atomic.Uint64
	failed   atomic.Uint64
	skipped  atomic.Uint64
}

// NewSearchEnrichmentWorker создает новый SearchEnrichmentWorker.
// store может быть nil, тогда результат только публикуется.
func NewSearchEnrichmentWorker(
	streamRepo repository.StreamRepository,
	enricher usecase.DocumentEnricher,
	store SearchStore,
	streams Streams,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *SearchEnrichmentWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if streams.Input == "" {
		streams.Input = domain.StreamSearchAggregated
	}
	if streams.Output == "" {
		streams.Output = domain.StreamSearchEnriched
	}
	if streams.Failed == "" {
		streams.Failed = domain.StreamSearchFailed
	}

	return &SearchEnrichmentWorker{
		BaseWorker: worker.NewBaseWorker("search-enrichment", consumerGroup, logger),
		streamRepo: streamRepo,
		enricher:   enricher,
		store:      store,
		streams:    streams,
		batchSize:  batchSize,
	}
}

// Stats возвращает снимок счетчиков
func (w *SearchEnrichmentWorker) Stats() Stats {
	return Stats{
		Read:     w.read.Load(),
		Enriched: w.enriched.Load(),
		Failed:   w.failed.Load(),
		Skipped:  w.skipped.Load(),
	}
}

// Start запускает воркер
func (w *SearchEnrichmentWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SearchEnrichmentWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.String("input_stream", w.streams.Input),
		zap.String("output_stream", w.streams.Output),
		zap.Int("max_batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.streams.Input, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	defer w.logStats("Worker finished")

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.sleep(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *SearchEnrichmentWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		w.streams.Input,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	w.read.Add(uint64(len(messages)))
	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		// каждое сообщение подтверждается: ошибка обогащения уходит в стрим ошибок
		messageIDs = append(messageIDs, msg.ID)

		payload, ok := msg.Payload()
		if !ok {
			logger.Warn("Message does not contain 'data' field, skipping",
				zap.String("message_id", msg.ID))
			w.skipped.Add(1)
			continue
		}

		w.processMessage(ctx, msg.ID, payload)
	}

	if err := w.streamRepo.AckMessages(ctx, w.streams.Input, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	w.logStats("Batch processed")
	return len(messages), nil
}

func (w *SearchEnrichmentWorker) processMessage(ctx context.Context, messageID string, payload []byte) {
	logger := w.Logger()

	result, err := w.enricher.EnrichDocument(payload)
	if err != nil {
		w.failed.Add(1)
		w.publishFailure(ctx, messageID, payload, err)
		return
	}

	if err := w.streamRepo.PublishRaw(ctx, w.streams.Output, result.Document); err != nil {
		w.failed.Add(1)
		logger.Error("Failed to publish enriched search",
			zap.String("message_id", messageID),
			zap.String("search_id", result.SearchID()),
			zap.Error(err))
		return
	}
	w.enriched.Add(1)

	if w.store == nil {
		return
	}
	if err := w.store.Store(ctx, result); err != nil {
		logger.Error("Failed to store enriched search",
			zap.String("message_id", messageID),
			zap.String("search_id", result.SearchID()),
			zap.Error(err))
	}
}

func (w *SearchEnrichmentWorker) publishFailure(ctx context.Context, messageID string, payload []byte, cause error) {
	logger := w.Logger()

	event := domain.SearchFailedEvent{
		MessageID: messageID,
		SearchID:  searchIDOf(payload),
		Error:     cause.Error(),
	}

	level := logger.Warn
	if !usecase.IsInputError(cause) {
		level = logger.Error
	}
	level("Failed to enrich search",
		zap.String("message_id", messageID),
		zap.String("search_id", event.SearchID),
		zap.Error(cause))

	if err := w.streamRepo.PublishToStream(ctx, w.streams.Failed, event); err != nil {
		logger.Error("Failed to publish failed event",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}

func (w *SearchEnrichmentWorker) logStats(msg string) {
	stats := w.Stats()
	w.Logger().Info(msg,
		zap.Uint64("read", stats.Read),
		zap.Uint64("enriched", stats.Enriched),
		zap.Uint64("failed", stats.Failed),
		zap.Uint64("skipped", stats.Skipped))
}

// sleep прерывается остановкой воркера или отменой контекста
func (w *SearchEnrichmentWorker) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// searchIDOf достает search_id из документа, который не удалось обогатить
func searchIDOf(payload []byte) string {
	var doc struct {
		SearchID string `json:"search_id"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return ""
	}
	return doc.SearchID
}
