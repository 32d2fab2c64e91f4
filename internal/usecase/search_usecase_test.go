package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/domain/repository"
	apperrors "github.com/search-enrichment-service/internal/pkg/errors"
	"github.com/search-enrichment-service/internal/usecase"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSearch(ctx context.Context, searchID string) ([]byte, error) {
	args := m.Called(ctx, searchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetSearch(ctx context.Context, searchID string, document []byte, ttl time.Duration) error {
	args := m.Called(ctx, searchID, document, ttl)
	return args.Error(0)
}

// MockSearchRepository is a mock of SearchRepository
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) Save(ctx context.Context, record *domain.SearchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSearchRepository) GetDocument(ctx context.Context, searchID string) ([]byte, error) {
	args := m.Called(ctx, searchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func enrichedResult(t *testing.T, document string) *usecase.EnrichmentResult {
	t.Helper()
	result, err := newEnrichmentUseCase().EnrichDocument([]byte(document))
	require.NoError(t, err)
	return result
}

func TestSearchUseCase_Store(t *testing.T) {
	ctx := context.Background()
	ttl := time.Hour

	t.Run("caches and saves flattened record", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)
		result := enrichedResult(t, endToEndDocument)

		mockCache.On("SetSearch", ctx, "abc-123", []byte(result.Document), ttl).Return(nil)
		mockRepo.On("Save", ctx, mock.MatchedBy(func(record *domain.SearchRecord) bool {
			return record.SearchID == "abc-123" &&
				record.SearchCountry == "FR" &&
				record.OnD == "NYC-LON" &&
				record.AdvancePurchase == 31 &&
				record.StayDuration == -1 &&
				record.TripType == "OW" &&
				record.Geo == "I" &&
				record.OnDDistance == 5570 &&
				len(record.Recos) == 1
		})).Return(nil)

		err := uc.Store(ctx, result)

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("search without id is not stored", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		input := `{"currency": "EUR", "search_date": "2024-01-01", "request_dep_date": "2024-01-02",
			"passengers_string": "ADT=1", "origin_city": "PAR", "destination_city": "NCE", "recos": []}`

		err := uc.Store(ctx, enrichedResult(t, input))

		assert.NoError(t, err)
		mockCache.AssertNotCalled(t, "SetSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("cache failure does not stop saving", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("SetSearch", ctx, "abc-123", mock.Anything, ttl).Return(errors.New("redis down"))
		mockRepo.On("Save", ctx, mock.Anything).Return(nil)

		err := uc.Store(ctx, enrichedResult(t, endToEndDocument))

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("SetSearch", ctx, "abc-123", mock.Anything, ttl).Return(nil)
		mockRepo.On("Save", ctx, mock.Anything).Return(errors.New("connection refused"))

		err := uc.Store(ctx, enrichedResult(t, endToEndDocument))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "abc-123")
	})

	t.Run("without repository only caches", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(nil, mockCache, zap.NewNop(), ttl)

		mockCache.On("SetSearch", ctx, "abc-123", mock.Anything, ttl).Return(nil)

		err := uc.Store(ctx, enrichedResult(t, endToEndDocument))

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})
}

func TestSearchUseCase_GetDocument(t *testing.T) {
	ctx := context.Background()
	ttl := time.Hour
	document := []byte(`{"search_id":"abc-123"}`)

	t.Run("cache hit", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("GetSearch", ctx, "abc-123").Return(document, nil)

		got, err := uc.GetDocument(ctx, "abc-123")

		require.NoError(t, err)
		assert.Equal(t, document, got)
		mockRepo.AssertNotCalled(t, "GetDocument", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads repository and refills cache", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("GetSearch", ctx, "abc-123").Return(nil, nil)
		mockRepo.On("GetDocument", ctx, "abc-123").Return(document, nil)
		mockCache.On("SetSearch", ctx, "abc-123", document, ttl).Return(nil)

		got, err := uc.GetDocument(ctx, "abc-123")

		require.NoError(t, err)
		assert.Equal(t, document, got)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("GetSearch", ctx, "missing").Return(nil, nil)
		mockRepo.On("GetDocument", ctx, "missing").Return(nil, repository.ErrSearchNotFound)

		_, err := uc.GetDocument(ctx, "missing")

		assert.Equal(t, apperrors.ErrSearchNotFound, err)
	})

	t.Run("database failure", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockRepo := &MockSearchRepository{}
		uc := usecase.NewSearchUseCase(mockRepo, mockCache, zap.NewNop(), ttl)

		mockCache.On("GetSearch", ctx, "abc-123").Return(nil, errors.New("redis down"))
		mockRepo.On("GetDocument", ctx, "abc-123").Return(nil, errors.New("connection refused"))

		_, err := uc.GetDocument(ctx, "abc-123")

		assert.Equal(t, apperrors.ErrDatabaseError, err)
	})

	t.Run("without repository a cache miss is not found", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(nil, mockCache, zap.NewNop(), ttl)

		mockCache.On("GetSearch", ctx, "abc-123").Return(nil, nil)

		_, err := uc.GetDocument(ctx, "abc-123")

		assert.Equal(t, apperrors.ErrSearchNotFound, err)
	})
}

func TestBuildSearchRecord(t *testing.T) {
	input := `{"search_id": "s-1", "currency": "EUR", "search_date": "2024-01-01", "request_dep_date": "2024-01-10",
		"request_return_date": "2024-01-17", "passengers_string": "ADT=1", "origin_city": "PAR", "destination_city": "NCE",
		"recos": [{"price": 10.005, "taxes": 1, "fees": 0, "nb_of_flights": 3, "flights": [
			{"dep_airport": "PAR", "arr_airport": "NCE", "marketing_airline": "AF", "cabin": "Y"},
			{"dep_airport": "NCE", "arr_airport": "PAR", "marketing_airline": "AF", "cabin": "Y"},
			{"dep_airport": "PAR", "arr_airport": "LON", "marketing_airline": "BA", "cabin": "Y"}]}]}`

	record := usecase.BuildSearchRecord(enrichedResult(t, input))

	assert.Equal(t, "s-1", record.SearchID)
	assert.Equal(t, "PAR-NCE", record.OnD)
	assert.Equal(t, int64(9), record.AdvancePurchase)
	assert.Equal(t, int64(7), record.StayDuration)
	assert.Equal(t, "RT", record.TripType)
	assert.Equal(t, "D", record.Geo)
	require.Len(t, record.Recos, 1)

	reco := record.Recos[0]
	assert.Equal(t, "s-1", reco.SearchID)
	assert.Equal(t, 0, reco.RecoIndex)
	assert.Equal(t, 3, reco.NbOfFlights)
	assert.Equal(t, []string{"AF", "BA"}, reco.Airlines)
	assert.Equal(t, "AF", reco.MainMarketingAirline)
}
