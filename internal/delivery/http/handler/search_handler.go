package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/pkg/errors"
	"github.com/search-enrichment-service/internal/pkg/utils"
)

// SearchReader - чтение сохраненных обогащенных поисков
type SearchReader interface {
	GetDocument(ctx context.Context, searchID string) ([]byte, error)
}

// SearchHandler - обработчик запросов сохраненных поисков
type SearchHandler struct {
	searchUC SearchReader
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC SearchReader, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// GetSearch godoc
// @Summary Обогащенный поиск по search_id
// @Description Возвращает обогащенный документ из кеша, при промахе из PostgreSQL
// @Tags Searches
// @Produce json
// @Param id path string true "search_id"
// @Success 200 {object} object "Обогащенный документ"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/searches/{id} [get]
func (h *SearchHandler) GetSearch(c *fiber.Ctx) error {
	searchID := c.Params("id")
	if searchID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": "id"}))
	}

	document, err := h.searchUC.GetDocument(c.UserContext(), searchID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRawJSON(c, document)
}
