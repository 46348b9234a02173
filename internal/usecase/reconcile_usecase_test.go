package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/usecase"
)

func TestReconcileUseCase_Upsert(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("rejects empty external id", func(t *testing.T) {
		mockAttractions := &MockAttractionRepository{}
		mockCategories := &MockCategoryRepository{}
		uc := usecase.NewReconcileUseCase(mockAttractions, mockCategories, logger)

		result, err := uc.Upsert(ctx, "", domain.AttractionPatch{Name: ptrString("Louvre")})

		assert.Nil(t, result)
		assert.Equal(t, errors.ErrInvalidRequest, err)
		mockAttractions.AssertNotCalled(t, "Upsert")
	})

	t.Run("resolves category name before writing", func(t *testing.T) {
		mockAttractions := &MockAttractionRepository{}
		mockCategories := &MockCategoryRepository{}
		uc := usecase.NewReconcileUseCase(mockAttractions, mockCategories, logger)

		mockCategories.On("GetOrCreate", ctx, "museum").
			Return(&domain.Category{ID: 7, Name: "museum"}, nil)

		patch := domain.AttractionPatch{
			Name:         ptrString("Louvre"),
			CategoryName: ptrString("museum"),
		}
		expectedPatch := patch
		expectedPatch.CategoryID = ptrInt64(7)

		stored := &domain.Attraction{ID: 1, TripAdvisorID: "ta-1", Name: "Louvre", CategoryID: ptrInt64(7)}
		mockAttractions.On("Upsert", ctx, "ta-1", expectedPatch).Return(stored, nil)

		result, err := uc.Upsert(ctx, "ta-1", patch)

		require.NoError(t, err)
		assert.Equal(t, int64(7), *result.CategoryID)
		mockCategories.AssertExpectations(t)
		mockAttractions.AssertExpectations(t)
	})

	t.Run("patch without category skips category lookup", func(t *testing.T) {
		mockAttractions := &MockAttractionRepository{}
		mockCategories := &MockCategoryRepository{}
		uc := usecase.NewReconcileUseCase(mockAttractions, mockCategories, logger)

		patch := domain.AttractionPatch{Rating: ptrFloat64(4.5)}
		stored := &domain.Attraction{ID: 2, TripAdvisorID: "ta-2", Rating: ptrFloat64(4.5)}
		mockAttractions.On("Upsert", ctx, "ta-2", patch).Return(stored, nil)

		result, err := uc.Upsert(ctx, "ta-2", patch)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
		mockCategories.AssertNotCalled(t, "GetOrCreate")
	})

	t.Run("category resolution failure aborts the write", func(t *testing.T) {
		mockAttractions := &MockAttractionRepository{}
		mockCategories := &MockCategoryRepository{}
		uc := usecase.NewReconcileUseCase(mockAttractions, mockCategories, logger)

		mockCategories.On("GetOrCreate", ctx, "museum").
			Return(nil, errors.ErrDatabaseError)

		patch := domain.AttractionPatch{CategoryName: ptrString("museum")}
		result, err := uc.Upsert(ctx, "ta-3", patch)

		assert.Nil(t, result)
		assert.Equal(t, errors.ErrDatabaseError, err)
		mockAttractions.AssertNotCalled(t, "Upsert")
	})

	t.Run("repeated upsert with same data is idempotent", func(t *testing.T) {
		mockAttractions := &MockAttractionRepository{}
		mockCategories := &MockCategoryRepository{}
		uc := usecase.NewReconcileUseCase(mockAttractions, mockCategories, logger)

		patch := domain.AttractionPatch{Name: ptrString("Sagrada Família")}
		stored := &domain.Attraction{ID: 3, TripAdvisorID: "ta-4", Name: "Sagrada Família"}
		mockAttractions.On("Upsert", ctx, "ta-4", patch).Return(stored, nil).Twice()

		first, err := uc.Upsert(ctx, "ta-4", patch)
		require.NoError(t, err)
		second, err := uc.Upsert(ctx, "ta-4", patch)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		mockAttractions.AssertExpectations(t)
	})
}
