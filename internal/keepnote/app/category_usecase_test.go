package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/domain/entities"
)

func TestCategoryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creation date is assigned by the server", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		category := &entities.Category{ID: 1, Name: "Work", CreatedBy: "jack"}

		categoriesRepo.On("Create", mock.Anything, category).Return(nil).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		err := uc.Create(ctx, category)

		require.NoError(t, err)
		assert.False(t, category.CreationDate.IsZero())
		categoriesRepo.AssertExpectations(t)
	})

	t.Run("Error - duplicate category id", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		category := &entities.Category{ID: 1, Name: "Work", CreatedBy: "jack"}

		categoriesRepo.On("Create", mock.Anything, category).Return(entities.ErrCategoryConflict).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		err := uc.Create(ctx, category)

		assert.ErrorIs(t, err, entities.ErrCategoryConflict)
		categoriesRepo.AssertExpectations(t)
	})
}

func TestCategoryUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - stored category is returned", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		stored := &entities.Category{ID: 1, Name: "Work", Description: "Work related notes", CreatedBy: "jack"}

		categoriesRepo.On("GetByID", mock.Anything, 1).Return(stored, nil).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		category, err := uc.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, stored, category)
		categoriesRepo.AssertExpectations(t)
	})

	t.Run("Error - category not found", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		categoriesRepo.On("GetByID", mock.Anything, 42).Return(nil, entities.ErrCategoryNotFound).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		category, err := uc.GetByID(ctx, 42)

		assert.Nil(t, category)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
		categoriesRepo.AssertExpectations(t)
	})
}

func TestCategoryUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - id is taken from the argument", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		category := &entities.Category{Name: "Personal", CreatedBy: "jack"}
		updated := &entities.Category{ID: 1, Name: "Personal", CreatedBy: "jack"}

		categoriesRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *entities.Category) bool {
			return c.ID == 1
		})).Return(updated, nil).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		got, err := uc.Update(ctx, category, 1)

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		categoriesRepo.AssertExpectations(t)
	})

	t.Run("Error - category not found", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		category := &entities.Category{Name: "Personal"}

		categoriesRepo.On("Update", mock.Anything, mock.Anything).Return(nil, entities.ErrCategoryNotFound).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		got, err := uc.Update(ctx, category, 42)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
		categoriesRepo.AssertExpectations(t)
	})
}

func TestCategoryUseCase_ListByCreator(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - empty list is not an error", func(t *testing.T) {
		categoriesRepo := new(mockCategoryRepository)

		categoriesRepo.On("ListByCreator", mock.Anything, "nobody").Return([]*entities.Category{}, nil).Once()

		uc := app.NewCategoryUseCase(categoriesRepo)

		categories, err := uc.ListByCreator(ctx, "nobody")

		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
		categoriesRepo.AssertExpectations(t)
	})
}
