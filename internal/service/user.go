package service

import (
	"DocKeeper/internal/model"
	"DocKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Сообщение единое, чтобы не раскрывать, какие email зарегистрированы.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// стоимость bcrypt подобрана под ~100мс на хеш
const bcryptCost = 12

// UserService — регистрация и проверка учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с хешированным паролем.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	email = NormalizeEmail(email)

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		FullName: strings.TrimSpace(fullName),
		Password: string(hash),
	}
	return s.repo.CreateUser(ctx, user)
}

// Login проверяет email и пароль, возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// NormalizeEmail приводит email к каноничному виду хранения.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
