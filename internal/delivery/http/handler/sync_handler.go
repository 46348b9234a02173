package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/pkg/utils"
	"github.com/attractions-service/internal/usecase"
)

// SyncHandler - синхронизация записей с провайдером
type SyncHandler struct {
	syncUC *usecase.SyncUseCase
	logger *zap.Logger
}

// NewSyncHandler - создание нового SyncHandler
func NewSyncHandler(syncUC *usecase.SyncUseCase, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{
		syncUC: syncUC,
		logger: logger,
	}
}

// SyncAttraction godoc
// @Summary Синхронизировать достопримечательность с TripAdvisor
// @Description Обновляет запись деталями, фотографиями и отзывами провайдера. Повторный вызов в пределах TTL кеша не обращается к провайдеру; force=true игнорирует кеш.
// @Tags sync
// @Produce json
// @Param id path int true "ID достопримечательности"
// @Param force query bool false "Игнорировать кеш синхронизации"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/attractions/{id}/sync [post]
func (h *SyncHandler) SyncAttraction(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	payload, err := h.syncUC.SyncAttraction(c.Context(), id, c.QueryBool("force"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, payload, nil)
}
