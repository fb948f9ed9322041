package model

import "time"

// User — зарегистрированный пользователь сервиса.
type User struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"not null;uniqueIndex" json:"email"` // хранится в нижнем регистре, без пробелов по краям
	FullName string `gorm:"not null" json:"fullname"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш, наружу не отдаётся

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
