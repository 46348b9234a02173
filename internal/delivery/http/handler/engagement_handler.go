package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/pkg/utils"
	"github.com/attractions-service/internal/usecase"
)

// EngagementHandler - лайки и личные списки
type EngagementHandler struct {
	engagementUC *usecase.EngagementUseCase
	logger       *zap.Logger
}

// NewEngagementHandler - создание нового EngagementHandler
func NewEngagementHandler(engagementUC *usecase.EngagementUseCase, logger *zap.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: engagementUC,
		logger:       logger,
	}
}

// ToggleLike godoc
// @Summary Переключить лайк
// @Tags engagement
// @Produce json
// @Param id path int true "ID достопримечательности"
// @Param X-User-ID header int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/attractions/{id}/like [post]
func (h *EngagementHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attractionID, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.engagementUC.ToggleLike(c.Context(), userID, attractionID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ToggleSave godoc
// @Summary Переключить сохранение в личный список
// @Tags engagement
// @Produce json
// @Param id path int true "ID достопримечательности"
// @Param X-User-ID header int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/attractions/{id}/save [post]
func (h *EngagementHandler) ToggleSave(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attractionID, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.engagementUC.ToggleSave(c.Context(), userID, attractionID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// MyList godoc
// @Summary Личный список пользователя
// @Tags engagement
// @Produce json
// @Param X-User-ID header int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/my-list [get]
func (h *EngagementHandler) MyList(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.engagementUC.ListSaved(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}

// MyListByDistance godoc
// @Summary Личный список в порядке обхода от точки
// @Tags engagement
// @Produce json
// @Param X-User-ID header int true "ID пользователя"
// @Param latitude query number true "Широта старта"
// @Param longitude query number true "Долгота старта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/my-list/by-distance [get]
func (h *EngagementHandler) MyListByDistance(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attractions, err := h.engagementUC.SavedByDistance(c.Context(), userID,
		queryFloat(c, "latitude"), queryFloat(c, "longitude"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{
		Total: len(attractions),
	})
}

// MyListBudget godoc
// @Summary Оценка бюджета личного списка
// @Tags engagement
// @Produce json
// @Param X-User-ID header int true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/my-list/budget [get]
func (h *EngagementHandler) MyListBudget(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	budget, err := h.engagementUC.BudgetTotal(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, budget, nil)
}
