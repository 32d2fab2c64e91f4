package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/pkg/errors"
	"github.com/search-enrichment-service/internal/pkg/utils"
	"github.com/search-enrichment-service/internal/pkg/validator"
	"github.com/search-enrichment-service/internal/usecase/dto"
)

// ReferenceHandler - чтение справочников локаций и курсов
type ReferenceHandler struct {
	locations *domain.LocationIndex
	rates     *domain.RateTable
	logger    *zap.Logger
}

// NewReferenceHandler - создание нового ReferenceHandler
func NewReferenceHandler(locations *domain.LocationIndex, rates *domain.RateTable, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		locations: locations,
		rates:     rates,
		logger:    logger,
	}
}

// GetLocation godoc
// @Summary Локация по IATA коду
// @Tags Reference
// @Produce json
// @Param code path string true "IATA код аэропорта или города"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{code} [get]
func (h *ReferenceHandler) GetLocation(c *fiber.Ctx) error {
	code := strings.ToUpper(c.Params("code"))

	record, ok := h.locations.Lookup(code)
	if !ok {
		return utils.SendError(c, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{"code": code}))
	}

	return utils.SendSuccess(c, dto.LocationResponse{
		Code:        code,
		CountryCode: record.CountryCode,
		CityCode:    h.locations.CityOf(code),
		CityCodes:   record.CityCodes,
		Latitude:    record.Latitude,
		Longitude:   record.Longitude,
	}, nil)
}

// GetDistance godoc
// @Summary Расстояние между двумя кодами
// @Description Расстояние по большому кругу в километрах, с отбрасыванием дробной части
// @Tags Reference
// @Produce json
// @Param from query string true "IATA код отправления"
// @Param to query string true "IATA код прибытия"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistanceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/distance [get]
func (h *ReferenceHandler) GetDistance(c *fiber.Ctx) error {
	var req dto.DistanceRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		details := map[string]interface{}{}
		if field, tag, ok := validator.FieldPath(err); ok {
			details["field"] = field
			details["rule"] = tag
		}
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(details))
	}

	from := strings.ToUpper(req.From)
	to := strings.ToUpper(req.To)

	distance, ok := h.locations.DistanceBetween(from, to)
	if !ok {
		return utils.SendError(c, errors.ErrDistanceUnavailable.WithDetails(map[string]interface{}{
			"from": from,
			"to":   to,
		}))
	}

	return utils.SendSuccess(c, dto.DistanceResponse{
		From:       from,
		To:         to,
		DistanceKm: distance,
	}, nil)
}

// GetRate godoc
// @Summary Курс валюты к EUR
// @Description Сколько единиц валюты за 1 EUR. Для EUR всегда 1.
// @Tags Reference
// @Produce json
// @Param currency path string true "Код валюты ISO 4217"
// @Success 200 {object} utils.SuccessResponse{data=dto.RateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/rates/{currency} [get]
func (h *ReferenceHandler) GetRate(c *fiber.Ctx) error {
	currency, err := domain.ParseCurrency(strings.ToUpper(c.Params("currency")))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	rate, ok := h.rates.Rate(currency)
	if !ok {
		return utils.SendError(c, &domain.RateUnavailableError{Currency: currency})
	}

	return utils.SendSuccess(c, dto.RateResponse{
		Currency:   string(currency),
		Rate:       rate,
		RecordDate: h.rates.RecordDate(),
	}, nil)
}
