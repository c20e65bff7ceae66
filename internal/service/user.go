package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ibdesk/internal/model"
	"ibdesk/internal/repo"
)

// ErrInvalidCredentials — email не найден либо пароль не совпал.
// Причина не раскрывается наружу намеренно.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService инкапсулирует проверку учётных данных операторов.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Authenticate сверяет пароль с bcrypt-хешем из справочника.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// SeedUser — стартовая запись справочника операторов.
type SeedUser struct {
	Email    string
	Name     string
	Password string
}

// DefaultSeedUsers — операторы, создаваемые на пустой базе.
var DefaultSeedUsers = []SeedUser{
	{Email: "test@gmail.com", Name: "test", Password: "123456"},
	{Email: "test1@gmail.com", Name: "testhello", Password: "123456hello"},
}

// Seed наполняет пустой справочник стартовыми операторами.
// На непустой базе ничего не делает.
func (s *UserService) Seed(ctx context.Context, users []SeedUser) error {
	n, err := s.repo.CountUsers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, su := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := s.repo.CreateUser(ctx, &model.User{
			Email:        su.Email,
			Name:         su.Name,
			PasswordHash: string(hash),
		}); err != nil {
			return err
		}
	}
	return nil
}
