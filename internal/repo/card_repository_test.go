package repo

import (
	"DocKeeper/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestCard(ownerID int64, title string) *model.Card {
	return &model.Card{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Title:    title,
		Desc:     "desc",
		FileSize: "N/A",
		TagColor: "green",
	}
}

func TestCardRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	r := NewCardRepository(db)
	ctx := context.Background()

	owner := newTestUser(t, db, "list-owner@x.com")

	first := newTestCard(owner.ID, "first")
	assert.NoError(t, r.Create(ctx, first))

	// вторая карточка создаётся позже — должна оказаться первой в списке
	time.Sleep(10 * time.Millisecond)
	second := newTestCard(owner.ID, "second")
	assert.NoError(t, r.Create(ctx, second))

	cards, err := r.ListByOwner(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "second", cards[0].Title)
	assert.Equal(t, "first", cards[1].Title)
}

func TestCardRepository_OwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	r := NewCardRepository(db)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice-scope@x.com")
	bob := newTestUser(t, db, "bob-scope@x.com")

	card := newTestCard(alice.ID, "alice card")
	assert.NoError(t, r.Create(ctx, card))

	// карточка Алисы не видна в списке Боба
	bobCards, err := r.ListByOwner(ctx, bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, bobCards)

	// чтение, изменение и удаление чужой карточки — ErrRecordNotFound
	got, err := r.GetOwned(ctx, card.ID, bob.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	updated, err := r.UpdateOwned(ctx, card.ID, bob.ID, "hacked", "hacked")
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err := r.DeleteOwned(ctx, card.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	// владелец по-прежнему видит исходные данные
	got, err = r.GetOwned(ctx, card.ID, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice card", got.Title)
}

func TestCardRepository_UpdateOwned(t *testing.T) {
	db := newTestDB(t)
	r := NewCardRepository(db)
	ctx := context.Background()

	owner := newTestUser(t, db, "upd-owner@x.com")
	card := newTestCard(owner.ID, "before")
	assert.NoError(t, r.Create(ctx, card))

	updated, err := r.UpdateOwned(ctx, card.ID, owner.ID, "after", "new desc")
	assert.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new desc", updated.Desc)

	// несуществующий id — ErrRecordNotFound
	_, err = r.UpdateOwned(ctx, uuid.NewString(), owner.ID, "x", "y")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCardRepository_DeleteOwned(t *testing.T) {
	db := newTestDB(t)
	r := NewCardRepository(db)
	ctx := context.Background()

	owner := newTestUser(t, db, "del-owner@x.com")
	card := newTestCard(owner.ID, "to delete")
	assert.NoError(t, r.Create(ctx, card))

	deleted, err := r.DeleteOwned(ctx, card.ID, owner.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// повторное удаление — ничего не удалено, но не ошибка
	deleted, err = r.DeleteOwned(ctx, card.ID, owner.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	cards, err := r.ListByOwner(ctx, owner.ID)
	assert.NoError(t, err)
	assert.Empty(t, cards)
}
