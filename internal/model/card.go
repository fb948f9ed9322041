package model

import "time"

// Card — карточка документа пользователя, опционально со ссылкой на файл
// во внешнем объектном хранилище.
//
// Инвариант: FileURL, StorageKey и TagOpen всегда выставляются и сбрасываются
// вместе — карточка либо имеет файл (все три заполнены), либо нет.
type Card struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // владелец, ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title string `gorm:"not null"`
	Desc  string `gorm:"not null"`

	FileSize   string  `gorm:"not null;default:N/A"` // человекочитаемый размер, например "1.25mb"
	FileURL    *string // публичный URL файла в хранилище
	StorageKey *string // ключ удаления объекта; наружу не сериализуется

	// Отображаемый тег, производный от наличия файла
	TagOpen  bool   `gorm:"not null;default:false"`
	TagLabel string `gorm:"not null;default:''"`
	TagColor string `gorm:"not null;default:green"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// HasFile сообщает, привязан ли к карточке файл.
func (c *Card) HasFile() bool {
	return c.StorageKey != nil && *c.StorageKey != ""
}
