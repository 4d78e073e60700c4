package handler

import (
	"time"

	"github.com/bagdasarian/users-service/internal/domain"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	var updatedAt *string
	if user.UpdatedAt != nil {
		updatedAtStr := user.UpdatedAt.Format(time.RFC3339)
		updatedAt = &updatedAtStr
	}

	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updatedAt,
	}
}

// domainUsersToHTTP всегда возвращает не-nil слайс, чтобы пустой список кодировался как []
func domainUsersToHTTP(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}
	return result
}

// NewListUsersResponse - то же представление, что отдает GET /users
func NewListUsersResponse(users []*domain.User) ListUsersResponse {
	return ListUsersResponse{Users: domainUsersToHTTP(users)}
}
