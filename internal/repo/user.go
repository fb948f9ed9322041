package repo

import (
	"DocKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository минимальный контракт доступа к User.
type UserRepository interface {
	// CreateUser создаёт пользователя. Дубликат email — ошибка уникального индекса.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail ищет пользователя по email. Если нет — gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
