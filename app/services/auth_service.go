// Package services holds the business rules between controllers and
// repositories.
package services

import (
	"errors"
	"time"

	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/config"
	"eshop-back/pkg/auth"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// login failure never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an address that already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// AuthService implements registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account and returns a fresh token. The account role
// is always User, whatever the client sent; the first Admin comes from the
// seeder, promotion is a manual operation.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		AccType:      models.AccountTypeUser,
		PasswordHash: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return "", err
	}

	return s.issueToken(&user)
}

// Login verifies the credentials and returns a fresh token. Unknown email
// and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(&user)
}

// issueToken signs a token for user and persists it with its expiry on the
// user row, mirroring what the storefront's account page displays.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, user.AccType.String())
	if err != nil {
		return "", err
	}

	expire := time.Now().Add(config.TokenTTL)
	user.Token = &token
	user.TokenExpire = &expire
	if err := s.users.Update(user); err != nil {
		return "", err
	}

	return token, nil
}
