package worker

import (
	"context"
)

// Worker - фоновый обработчик стрима
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться; повторный вызов безопасен
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
