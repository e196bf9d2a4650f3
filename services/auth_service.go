package services

import (
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
)

type AuthService struct {
	store *database.Store
}

func NewAuthService(store *database.Store) *AuthService {
	return &AuthService{store: store}
}

// Login checks the pair against the user fixtures. No session is created; the
// caller keeps the returned identity and sends the user id back on later requests.
func (s *AuthService) Login(email, password string) (models.UserResponse, error) {
	if email == "" || password == "" {
		return models.UserResponse{}, newError(KindBadRequest, "Email and password are required")
	}

	user, ok := s.store.FindUser(email, password)
	if !ok {
		return models.UserResponse{}, newError(KindUnauthorized, "Invalid email or password")
	}
	return user.Public(), nil
}
