package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/pkg/errors"
	"github.com/search-enrichment-service/internal/pkg/utils"
	"github.com/search-enrichment-service/internal/usecase"
)

// EnrichmentHandler - синхронное обогащение одного документа
type EnrichmentHandler struct {
	enricher usecase.DocumentEnricher
	logger   *zap.Logger
}

// NewEnrichmentHandler - создание нового EnrichmentHandler
func NewEnrichmentHandler(enricher usecase.DocumentEnricher, logger *zap.Logger) *EnrichmentHandler {
	return &EnrichmentHandler{
		enricher: enricher,
		logger:   logger,
	}
}

// Enrich godoc
// @Summary Обогащение поиска
// @Description Принимает документ поиска и возвращает его же с вычисленными полями: цены в EUR, расстояния, города, страны, тип поездки, geo. Неизвестные поля документа сохраняются.
// @Tags Enrichment
// @Accept json
// @Produce json
// @Param request body dto.SearchDocument true "Документ поиска"
// @Success 200 {object} object "Обогащенный документ"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/enrich [post]
func (h *EnrichmentHandler) Enrich(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Request body is empty"))
	}

	result, err := h.enricher.EnrichDocument(body)
	if err != nil {
		h.logger.Debug("Search enrichment rejected", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendRawJSON(c, result.Document)
}
