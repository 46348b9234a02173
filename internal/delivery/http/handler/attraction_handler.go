package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/pkg/utils"
	"github.com/attractions-service/internal/pkg/validator"
	"github.com/attractions-service/internal/usecase"
	"github.com/attractions-service/internal/usecase/dto"
)

// AttractionHandler - обработчик запросов каталога достопримечательностей
type AttractionHandler struct {
	attractionUC *usecase.AttractionUseCase
	logger       *zap.Logger
}

// NewAttractionHandler - создание нового AttractionHandler
func NewAttractionHandler(attractionUC *usecase.AttractionUseCase, logger *zap.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionUC: attractionUC,
		logger:       logger,
	}
}

// List godoc
// @Summary Список достопримечательностей
// @Description Активные достопримечательности по фильтрам, с опциональным радиусом от точки
// @Tags attractions
// @Produce json
// @Param country_id query int false "ID страны"
// @Param city query string false "Подстрока города"
// @Param category_id query int false "ID категории"
// @Param categories query string false "Имена категорий через запятую"
// @Param price_level query string false "Ценовая категория" Enums(free, budget, moderate, expensive, luxury)
// @Param latitude query number false "Широта центра"
// @Param longitude query number false "Долгота центра"
// @Param radius query number false "Радиус, км"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/attractions [get]
func (h *AttractionHandler) List(c *fiber.Ctx) error {
	req := parseListQuery(c)
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.attractionUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}

// GetByID godoc
// @Summary Достопримечательность по ID
// @Tags attractions
// @Produce json
// @Param id path int true "ID достопримечательности"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/attractions/{id} [get]
func (h *AttractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attraction, err := h.attractionUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attraction, nil)
}

// Popular godoc
// @Summary Топ достопримечательностей по лайкам и рейтингу
// @Tags attractions
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/attractions/popular [get]
func (h *AttractionHandler) Popular(c *fiber.Ctx) error {
	req := parseListQuery(c)
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.attractionUC.Popular(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}

// ByDistance godoc
// @Summary Достопримечательности в порядке обхода от точки
// @Description Жадное упорядочивание ближайшего соседа от стартовой точки
// @Tags attractions
// @Produce json
// @Param latitude query number true "Широта старта"
// @Param longitude query number true "Долгота старта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/attractions/by-distance [get]
func (h *AttractionHandler) ByDistance(c *fiber.Ctx) error {
	req := dto.ByDistanceRequest{
		Latitude:  queryFloat(c, "latitude"),
		Longitude: queryFloat(c, "longitude"),
		Filter:    parseListQuery(c),
	}
	// Без радиуса координаты - стартовая точка обхода, а не фильтр
	if req.Filter.RadiusKm == nil {
		req.Filter.Latitude = nil
		req.Filter.Longitude = nil
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.attractionUC.OrderByDistance(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}
