package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/keepnote/adapters/postgres"
	"keepnote/internal/keepnote/domain/entities"
)

func TestCategoryRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputCategory := &entities.Category{
		ID:           1,
		Name:         "Work",
		Description:  "Work related notes",
		CreationDate: time.Now().UTC().Truncate(time.Microsecond),
		CreatedBy:    "jack",
	}

	t.Run("Успешное создание категории", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO categories").
			WithArgs(inputCategory.ID, inputCategory.Name, inputCategory.Description, inputCategory.CreationDate, inputCategory.CreatedBy).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewCategoryRepository(mock)

		err = repo.Create(ctx, inputCategory)

		require.NoError(t, err)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Дубликат идентификатора категории", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		duplicateErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		mock.ExpectExec("INSERT INTO categories").
			WithArgs(inputCategory.ID, inputCategory.Name, inputCategory.Description, inputCategory.CreationDate, inputCategory.CreatedBy).
			WillReturnError(duplicateErr)

		repo := postgres.NewCategoryRepository(mock)

		err = repo.Create(ctx, inputCategory)

		assert.ErrorIs(t, err, entities.ErrCategoryConflict)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

func TestCategoryRepository_GetByID(t *testing.T) {
	ctx := testContext(t)

	testCategory := entities.Category{
		ID:           1,
		Name:         "Work",
		Description:  "Work related notes",
		CreationDate: time.Now().UTC().Truncate(time.Microsecond),
		CreatedBy:    "jack",
	}

	t.Run("Успешное получение категории", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"category_id", "category_name", "category_descr", "category_creation_date", "category_creator"}).
			AddRow(testCategory.ID, testCategory.Name, testCategory.Description, testCategory.CreationDate, testCategory.CreatedBy)

		mock.ExpectQuery("SELECT category_id, category_name, category_descr, category_creation_date, category_creator").
			WithArgs(testCategory.ID).
			WillReturnRows(rows)

		repo := postgres.NewCategoryRepository(mock)

		category, err := repo.GetByID(ctx, testCategory.ID)

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, testCategory, *category)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Категория не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT category_id, category_name, category_descr, category_creation_date, category_creator").
			WithArgs(42).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewCategoryRepository(mock)

		category, err := repo.GetByID(ctx, 42)

		assert.Nil(t, category)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	ctx := testContext(t)

	inputCategory := &entities.Category{
		ID:          1,
		Name:        "Personal",
		Description: "Personal notes",
		CreatedBy:   "jack",
	}
	creationDate := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное обновление категории", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"category_id", "category_name", "category_descr", "category_creation_date", "category_creator"}).
			AddRow(inputCategory.ID, inputCategory.Name, inputCategory.Description, creationDate, inputCategory.CreatedBy)

		mock.ExpectQuery("UPDATE categories").
			WithArgs(inputCategory.ID, inputCategory.Name, inputCategory.Description, inputCategory.CreatedBy).
			WillReturnRows(rows)

		repo := postgres.NewCategoryRepository(mock)

		updated, err := repo.Update(ctx, inputCategory)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, inputCategory.Name, updated.Name)
		assert.Equal(t, creationDate, updated.CreationDate)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Категория не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE categories").
			WithArgs(inputCategory.ID, inputCategory.Name, inputCategory.Description, inputCategory.CreatedBy).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewCategoryRepository(mock)

		updated, err := repo.Update(ctx, inputCategory)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Категория не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM categories").
			WithArgs(42).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewCategoryRepository(mock)

		err = repo.Delete(ctx, 42)

		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

func TestCategoryRepository_ListByCreator(t *testing.T) {
	ctx := testContext(t)

	creationDate := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение списка категорий", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"category_id", "category_name", "category_descr", "category_creation_date", "category_creator"}).
			AddRow(1, "Work", "Work related notes", creationDate, "jack").
			AddRow(2, "Personal", "Personal notes", creationDate, "jack")

		mock.ExpectQuery("SELECT category_id, category_name, category_descr, category_creation_date, category_creator").
			WithArgs("jack").
			WillReturnRows(rows)

		repo := postgres.NewCategoryRepository(mock)

		categories, err := repo.ListByCreator(ctx, "jack")

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Work", categories[0].Name)
		assert.Equal(t, "Personal", categories[1].Name)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пустой список для пользователя без категорий", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"category_id", "category_name", "category_descr", "category_creation_date", "category_creator"})

		mock.ExpectQuery("SELECT category_id, category_name, category_descr, category_creation_date, category_creator").
			WithArgs("nobody").
			WillReturnRows(rows)

		repo := postgres.NewCategoryRepository(mock)

		categories, err := repo.ListByCreator(ctx, "nobody")

		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT category_id, category_name, category_descr, category_creation_date, category_creator").
			WithArgs("jack").
			WillReturnError(dbError)

		repo := postgres.NewCategoryRepository(mock)

		categories, err := repo.ListByCreator(ctx, "jack")

		assert.Nil(t, categories)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error listing categories")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
