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

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - added date is assigned by the server", func(t *testing.T) {
		usersRepo := new(mockUserRepository)

		user := &entities.User{
			ID:       "jack",
			Name:     "Jack",
			Password: "jack-password",
			Mobile:   "9999999999",
		}

		usersRepo.On("Create", mock.Anything, user).Return(nil).Once()

		uc := app.NewUserUseCase(usersRepo)

		err := uc.Register(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.AddedDate.IsZero())
		usersRepo.AssertExpectations(t)
	})

	t.Run("Error - duplicate user id", func(t *testing.T) {
		usersRepo := new(mockUserRepository)

		user := &entities.User{ID: "jack", Name: "Jack", Password: "jack-password"}

		usersRepo.On("Create", mock.Anything, user).Return(entities.ErrUserConflict).Once()

		uc := app.NewUserUseCase(usersRepo)

		err := uc.Register(ctx, user)

		assert.ErrorIs(t, err, entities.ErrUserConflict)
		usersRepo.AssertExpectations(t)
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	storedUser := &entities.User{
		ID:       "jack",
		Name:     "Jack",
		Password: "jack-password",
	}

	tests := []struct {
		name       string
		userID     string
		password   string
		setupMocks func(usersRepo *mockUserRepository)
		expectedOK bool
		expectedEr error
	}{
		{
			name:     "Success - password matches",
			userID:   "jack",
			password: "jack-password",
			setupMocks: func(usersRepo *mockUserRepository) {
				usersRepo.On("GetByID", mock.Anything, "jack").Return(storedUser, nil).Once()
			},
			expectedOK: true,
		},
		{
			name:     "Failure - password mismatch",
			userID:   "jack",
			password: "wrong-password",
			setupMocks: func(usersRepo *mockUserRepository) {
				usersRepo.On("GetByID", mock.Anything, "jack").Return(storedUser, nil).Once()
			},
			expectedOK: false,
		},
		{
			name:     "Error - unknown user",
			userID:   "ghost",
			password: "whatever",
			setupMocks: func(usersRepo *mockUserRepository) {
				usersRepo.On("GetByID", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedOK: false,
			expectedEr: entities.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usersRepo := new(mockUserRepository)
			tt.setupMocks(usersRepo)

			uc := app.NewUserUseCase(usersRepo)

			ok, err := uc.Authenticate(ctx, tt.userID, tt.password)

			if tt.expectedEr != nil {
				assert.ErrorIs(t, err, tt.expectedEr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOK, ok)
			usersRepo.AssertExpectations(t)
		})
	}
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - id is taken from the argument", func(t *testing.T) {
		usersRepo := new(mockUserRepository)

		user := &entities.User{Name: "Jack Updated", Password: "new-password"}
		updated := &entities.User{ID: "jack", Name: "Jack Updated", Password: "new-password"}

		usersRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.ID == "jack"
		})).Return(updated, nil).Once()

		uc := app.NewUserUseCase(usersRepo)

		got, err := uc.Update(ctx, user, "jack")

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		usersRepo.AssertExpectations(t)
	})

	t.Run("Error - user not found", func(t *testing.T) {
		usersRepo := new(mockUserRepository)

		user := &entities.User{Name: "Nobody"}

		usersRepo.On("Update", mock.Anything, mock.Anything).Return(nil, entities.ErrUserNotFound).Once()

		uc := app.NewUserUseCase(usersRepo)

		got, err := uc.Update(ctx, user, "ghost")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		usersRepo.AssertExpectations(t)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Error - user not found", func(t *testing.T) {
		usersRepo := new(mockUserRepository)

		usersRepo.On("Delete", mock.Anything, "ghost").Return(entities.ErrUserNotFound).Once()

		uc := app.NewUserUseCase(usersRepo)

		err := uc.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		usersRepo.AssertExpectations(t)
	})
}
