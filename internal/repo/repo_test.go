package repo

import (
	"DocKeeper/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Card{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// newTestUser создаёт пользователя для карточных тестов
func newTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FullName: "Test User", Password: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}
