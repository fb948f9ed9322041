package repo

import (
	"DocKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// CardRepository — контракт доступа к карточкам. Все операции чтения и
// изменения привязаны к паре (id, user_id): чужая или несуществующая
// карточка неотличимы и дают gorm.ErrRecordNotFound.
type CardRepository interface {
	// Create сохраняет новую карточку.
	Create(ctx context.Context, card *model.Card) error

	// ListByOwner возвращает карточки владельца, новые первыми.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Card, error)

	// GetOwned ищет карточку по (id, ownerID).
	GetOwned(ctx context.Context, id string, ownerID int64) (*model.Card, error)

	// UpdateOwned меняет заголовок и описание карточки владельца.
	UpdateOwned(ctx context.Context, id string, ownerID int64, title, desc string) (*model.Card, error)

	// DeleteOwned удаляет карточку владельца. false — ничего не удалено.
	DeleteOwned(ctx context.Context, id string, ownerID int64) (bool, error)
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepository создаёт реализацию репозитория для Card.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (r *cardRepo) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepo) GetOwned(ctx context.Context, id string, ownerID int64) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) UpdateOwned(ctx context.Context, id string, ownerID int64, title, desc string) (*model.Card, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{"title": title, "desc": desc})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetOwned(ctx, id, ownerID)
}

func (r *cardRepo) DeleteOwned(ctx context.Context, id string, ownerID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Card{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
