package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func sampleUsers() []*domain.User {
	createdAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return []*domain.User{
		{ID: 1, Name: "Ann", Email: "ann@example.com", CreatedAt: createdAt},
		{ID: 2, Name: "Bo", Email: "bo@example.com", CreatedAt: createdAt},
	}
}

func userIDs(users []*domain.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestUserService_FindAll(t *testing.T) {
	t.Run("успешное получение всех пользователей", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		users := sampleUsers()

		ctx := context.Background()
		mockUserRepo.On("FindAll", mock.Anything).Return(users, nil).Once()

		result, err := service.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.ElementsMatch(t, []int64{1, 2}, userIDs(result))
		assert.Equal(t, "Ann", result[0].Name)
		assert.Equal(t, "Bo", result[1].Name)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("строки возвращаются без преобразований", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		users := []*domain.User{
			{ID: 7, Name: "  spaced  ", Email: "UPPER@EXAMPLE.COM"},
			{ID: 3, Name: "", Email: "empty-name@example.com"},
		}

		mockUserRepo.On("FindAll", mock.Anything).Return(users, nil).Once()

		result, err := service.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Same(t, users[0], result[0])
		assert.Same(t, users[1], result[1])
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("успешное получение пустого списка", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		mockUserRepo.On("FindAll", mock.Anything).Return(nil, nil).Once()

		result, err := service.FindAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, result, 0)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка БД пробрасывается без изменений", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		dbErr := errors.New("database error")
		mockUserRepo.On("FindAll", mock.Anything).Return(nil, dbErr).Once()

		result, err := service.FindAll(context.Background())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Same(t, dbErr, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("контекст передается в репозиторий", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		type ctxKey struct{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "request-1")
		mockUserRepo.On("FindAll", ctx).Return(sampleUsers(), nil).Once()

		_, err := service.FindAll(ctx)

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("два вызова подряд без записи возвращают одинаковый результат", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		mockUserRepo.On("FindAll", mock.Anything).Return(sampleUsers(), nil).Twice()

		first, err := service.FindAll(context.Background())
		require.NoError(t, err)
		second, err := service.FindAll(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		mockUserRepo.AssertNumberOfCalls(t, "FindAll", 2)
	})
}

func TestUserService_FindAllConcurrent(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	service := NewUserService(mockUserRepo)

	const calls = 16
	mockUserRepo.On("FindAll", mock.Anything).Return(sampleUsers(), nil).Times(calls)

	results := make([][]*domain.User, calls)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < calls; i++ {
		g.Go(func() error {
			users, err := service.FindAll(ctx)
			results[i] = users
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, users := range results {
		assert.ElementsMatch(t, []int64{1, 2}, userIDs(users))
	}
	mockUserRepo.AssertExpectations(t)
}
