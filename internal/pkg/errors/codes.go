package errors

import "net/http"

var (
	ErrAttractionNotFound = New(
		"ATTRACTION_NOT_FOUND",
		"Attraction not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrCountryNotFound = New(
		"COUNTRY_NOT_FOUND",
		"Country not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrMissingUser = New(
		"MISSING_USER",
		"User identity is required",
		http.StatusUnauthorized,
	)

	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"Content provider failed or timed out",
		http.StatusBadGateway,
	)

	ErrNoProviderID = New(
		"NO_PROVIDER_ID",
		"Attraction has no TripAdvisor ID",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
