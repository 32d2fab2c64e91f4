package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/pkg/jsonmerge"
	"github.com/search-enrichment-service/internal/pkg/validator"
	"github.com/search-enrichment-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// EnrichmentResult - результат обогащения одного документа
type EnrichmentResult struct {
	// Document - исходный документ с наложенными вычисленными полями
	Document json.RawMessage
	// Enriched - вычисленные поля в типизированном виде
	Enriched *domain.EnrichedSearch
	// Tree - Document в виде дерева, для чтения сквозных полей (search_id, OnD, ...)
	Tree map[string]interface{}
}

// SearchID возвращает search_id из исходного документа, если он строковый
func (r *EnrichmentResult) SearchID() string {
	return stringField(r.Tree, "search_id")
}

// DocumentEnricher - обогащение сырого JSON документа
type DocumentEnricher interface {
	EnrichDocument(raw []byte) (*EnrichmentResult, error)
}

// EnrichmentUseCase - use case обогащения поисков.
// Справочники неизменяемы, поэтому один экземпляр обслуживает любое число горутин.
type EnrichmentUseCase struct {
	locations *domain.LocationIndex
	rates     *domain.RateTable
	logger    *zap.Logger
}

// NewEnrichmentUseCase создает новый EnrichmentUseCase
func NewEnrichmentUseCase(
	locations *domain.LocationIndex,
	rates *domain.RateTable,
	logger *zap.Logger,
) *EnrichmentUseCase {
	return &EnrichmentUseCase{
		locations: locations,
		rates:     rates,
		logger:    logger,
	}
}

// Locations - индекс локаций
func (uc *EnrichmentUseCase) Locations() *domain.LocationIndex {
	return uc.locations
}

// Rates - таблица курсов
func (uc *EnrichmentUseCase) Rates() *domain.RateTable {
	return uc.rates
}

// EnrichDocument: разбор -> обогащение -> сериализация -> слияние с исходным документом.
// Возвращает первую ошибку; частичного результата не бывает.
func (uc *EnrichmentUseCase) EnrichDocument(raw []byte) (*EnrichmentResult, error) {
	base, err := jsonmerge.Decode(raw)
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	baseObj, ok := base.(map[string]interface{})
	if !ok {
		return nil, &domain.ParseError{Err: fmt.Errorf("search document must be a JSON object")}
	}

	search, err := parseSearch(raw)
	if err != nil {
		return nil, err
	}

	enriched, err := EnrichSearch(search, uc.locations, uc.rates)
	if err != nil {
		return nil, err
	}

	overlay, err := toTree(enriched)
	if err != nil {
		return nil, err
	}

	// Merge заменяет массивы целиком и поэлементно их не сливает. Тогда неизвестные поля
	// рекомендаций и перелетов (nb_of_flights, flight_nb, ...) пропали бы из результата.
	// Чтобы они дошли до выхода, каждый элемент recos и flights в overlay заранее
	// собирается из исходного элемента с наложенными вычисленными полями. Сам Merge
	// остается прежним: массив из overlay по-прежнему заменяет исходный целиком.
	carryArrayElements(baseObj, overlay, "recos", "flights")

	merged := jsonmerge.Merge(baseObj, overlay).(map[string]interface{})

	document, err := json.Marshal(merged)
	if err != nil {
		return nil, &domain.SerializationError{Err: err}
	}

	uc.logger.Debug("Search enriched",
		zap.String("search_id", stringField(merged, "search_id")),
		zap.Int("recos", len(enriched.Recos)))

	return &EnrichmentResult{
		Document: document,
		Enriched: enriched,
		Tree:     merged,
	}, nil
}

// parseSearch разбирает и валидирует известную часть документа
func parseSearch(raw []byte) (*domain.Search, error) {
	var doc dto.SearchDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, &domain.ParseError{Field: typeErr.Field, Err: err}
		}
		return nil, &domain.ParseError{Err: err}
	}

	if err := validator.Validate(&doc); err != nil {
		if field, tag, ok := validator.FieldPath(err); ok {
			return nil, &domain.ParseError{Field: field, Err: fmt.Errorf("failed on %q rule", tag)}
		}
		return nil, &domain.ParseError{Err: err}
	}

	return doc.ToDomain()
}

// toTree сериализует обогащенный поиск в то же дерево, что и входной документ
func toTree(enriched *domain.EnrichedSearch) (map[string]interface{}, error) {
	data, err := json.Marshal(enriched)
	if err != nil {
		return nil, &domain.SerializationError{Err: err}
	}

	tree, err := jsonmerge.Decode(data)
	if err != nil {
		return nil, &domain.SerializationError{Err: err}
	}

	obj, ok := tree.(map[string]interface{})
	if !ok {
		return nil, &domain.SerializationError{Err: fmt.Errorf("enriched search is not an object")}
	}
	return obj, nil
}

// carryArrayElements для массива key (и вложенных массивов nested) заменяет каждый
// элемент overlay результатом слияния исходного элемента с ним
func carryArrayElements(base, overlay map[string]interface{}, key string, nested ...string) {
	baseItems, ok := base[key].([]interface{})
	if !ok {
		return
	}
	overlayItems, ok := overlay[key].([]interface{})
	if !ok {
		return
	}

	for i := range overlayItems {
		if i >= len(baseItems) {
			break
		}
		baseItem, ok := baseItems[i].(map[string]interface{})
		if !ok {
			continue
		}
		overlayItem, ok := overlayItems[i].(map[string]interface{})
		if !ok {
			continue
		}

		carried := jsonmerge.DeepCopy(baseItem).(map[string]interface{})
		if len(nested) > 0 {
			carryArrayElements(carried, overlayItem, nested[0], nested[1:]...)
		}
		overlayItems[i] = jsonmerge.Merge(carried, overlayItem)
	}
}

func stringField(tree map[string]interface{}, key string) string {
	if tree == nil {
		return ""
	}
	value, _ := tree[key].(string)
	return value
}
