//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/bagdasarian/users-service/internal/repository/postgres"
	"github.com/bagdasarian/users-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func ids(users []*domain.User) []int64 {
	result := make([]int64, 0, len(users))
	for _, u := range users {
		result = append(result, u.ID)
	}
	return result
}

func TestUsersIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userService := service.NewUserService(postgres.NewUserRepository(db))

	// Пустая таблица - пустой результат без ошибки
	users, err := userService.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	annID := insertUser(t, db, "Ann", "ann@example.com")
	boID := insertUser(t, db, "Bo", "bo@example.com")

	users, err = userService.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []int64{annID, boID}, ids(users))
	for _, u := range users {
		assert.NotEmpty(t, u.Name)
		assert.False(t, u.CreatedAt.IsZero())
		assert.Nil(t, u.UpdatedAt)
	}

	// Повторный вызов без записи возвращает тот же набор
	again, err := userService.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids(users), ids(again))

	// updated_at читается, если заполнен
	_, err = db.Exec(`UPDATE users SET updated_at = now() WHERE id = $1`, annID)
	require.NoError(t, err)
	users, err = userService.FindAll(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == annID {
			assert.NotNil(t, u.UpdatedAt)
		}
	}
}

func TestUsersIntegration_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userService := service.NewUserService(postgres.NewUserRepository(db))

	var expected []int64
	for _, name := range []string{"Ann", "Bo", "Cy", "Di"} {
		expected = append(expected, insertUser(t, db, name, name+"@example.com"))
	}

	const calls = 8
	results := make([][]*domain.User, calls)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < calls; i++ {
		g.Go(func() error {
			users, err := userService.FindAll(gctx)
			results[i] = users
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, users := range results {
		assert.ElementsMatch(t, expected, ids(users))
	}
}

func TestUsersIntegration_ClosedConnection(t *testing.T) {
	db := setupTestDB(t)

	userService := service.NewUserService(postgres.NewUserRepository(db))
	require.NoError(t, db.Close())

	users, err := userService.FindAll(context.Background())

	require.Error(t, err)
	assert.Nil(t, users)
	assert.Equal(t, "sql: database is closed", err.Error())
}
