package repository

import (
	"context"
	"errors"

	"github.com/search-enrichment-service/internal/domain"
)

// ErrSearchNotFound - поиск не найден в хранилище
var ErrSearchNotFound = errors.New("search not found")

// SearchRepository - хранилище обогащенных поисков
type SearchRepository interface {
	// Save сохраняет поиск и его рекомендации одной транзакцией
	Save(ctx context.Context, record *domain.SearchRecord) error

	// GetDocument возвращает сохраненный обогащенный документ
	GetDocument(ctx context.Context, searchID string) ([]byte, error)
}
