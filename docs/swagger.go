// Package docs Attractions Service API.
//
// Сервис каталога туристических достопримечательностей.
// Хранит записи, обогащённые данными TripAdvisor Content API, считает лайки
// и личные списки пользователей, упорядочивает выборки по близости.
//
// Основные возможности:
// - Каталог достопримечательностей с фильтрами и радиусом от точки
// - Синхронизация записей с TripAdvisor (детали, фотографии, отзывы)
// - Лайки и личные списки с оценкой бюджета
// - Упорядочивание выборок жадным обходом ближайшего соседа
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
