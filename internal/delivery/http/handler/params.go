package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/usecase/dto"
)

// userIDFromHeader извлекает идентификатор пользователя из X-User-ID.
// Шлюз аутентификации проставляет заголовок до нас.
func userIDFromHeader(c *fiber.Ctx) (int64, error) {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return 0, errors.ErrMissingUser
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.ErrMissingUser
	}

	return userID, nil
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest
	}
	return id, nil
}

func queryInt64(c *fiber.Ctx, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *fiber.Ctx, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseListQuery собирает фильтры выборки из query-параметров
func parseListQuery(c *fiber.Ctx) dto.ListAttractionsRequest {
	req := dto.ListAttractionsRequest{
		CountryID:  queryInt64(c, "country_id"),
		City:       c.Query("city"),
		CategoryID: queryInt64(c, "category_id"),
		PriceLevel: c.Query("price_level"),
		MinReviews: queryInt(c, "min_reviews"),
		MinPhotos:  queryInt(c, "min_photos"),
		MinRating:  queryFloat(c, "min_rating"),
		Search:     c.Query("search"),
		Latitude:   queryFloat(c, "latitude"),
		Longitude:  queryFloat(c, "longitude"),
		RadiusKm:   queryFloat(c, "radius"),
		Limit:      c.QueryInt("limit"),
	}

	if raw := c.Query("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				req.Categories = append(req.Categories, name)
			}
		}
	}

	return req
}
