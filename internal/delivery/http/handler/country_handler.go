package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/pkg/utils"
	"github.com/attractions-service/internal/usecase"
)

// CountryHandler - обработчик запросов по странам
type CountryHandler struct {
	attractionUC *usecase.AttractionUseCase
	syncUC       *usecase.SyncUseCase
	logger       *zap.Logger
}

// NewCountryHandler - создание нового CountryHandler
func NewCountryHandler(attractionUC *usecase.AttractionUseCase, syncUC *usecase.SyncUseCase, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		attractionUC: attractionUC,
		syncUC:       syncUC,
		logger:       logger,
	}
}

// List godoc
// @Summary Список стран
// @Tags countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	countries, err := h.attractionUC.ListCountries(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, countries, &utils.Meta{
		Total: len(countries),
	})
}

// Popular godoc
// @Summary Топ достопримечательностей страны
// @Tags countries
// @Produce json
// @Param id path int true "ID страны"
// @Param limit query int false "Размер выборки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/countries/{id}/popular [get]
func (h *CountryHandler) Popular(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.attractionUC.PopularByCountry(c.Context(), id, c.QueryInt("limit"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}

// Search godoc
// @Summary Поиск локаций провайдера вокруг столицы страны
// @Description Найденные локации заводятся в каталоге записями-заготовками
// @Tags countries
// @Produce json
// @Param id path int true "ID страны"
// @Param q query string true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/countries/{id}/search [get]
func (h *CountryHandler) Search(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	query := c.Query("q")
	if query == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	imported, err := h.syncUC.SearchAndImport(c.Context(), id, query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, imported, &utils.Meta{
		Total: len(imported),
	})
}
