package service

import (
	"DocKeeper/internal/model"
	"DocKeeper/internal/objstore"
	"DocKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrEmptyFields — пустой заголовок или описание карточки.
	ErrEmptyFields = errors.New("title and description cannot be empty")

	// ErrCardNotOwned — карточка не существует или принадлежит другому
	// пользователю. Случаи намеренно не различаются.
	ErrCardNotOwned = errors.New("card not found or not owned")

	// ErrUploadFailed — объектное хранилище не приняло файл.
	ErrUploadFailed = errors.New("file upload failed")
)

// CardService координирует репозиторий карточек и объектное хранилище:
// файл загружается до записи в БД, удаляется после проверки владения.
type CardService struct {
	cards  repo.CardRepository
	blobs  objstore.BlobStore
	logger *zap.SugaredLogger
}

func NewCardService(cards repo.CardRepository, blobs objstore.BlobStore, logger *zap.SugaredLogger) *CardService {
	return &CardService{cards: cards, blobs: blobs, logger: logger}
}

// Create создаёт карточку, при наличии файла сперва загружая его в хранилище.
// Неудачная загрузка отменяет создание целиком — осиротевшей записи в БД
// не появляется. Неудачная запись в БД после загрузки оставляет объект
// в хранилище: это осознанный, логируемый исход без компенсирующего удаления.
func (s *CardService) Create(ctx context.Context, ownerID int64, title, desc string, file *objstore.Upload) (*model.Card, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(desc) == "" {
		return nil, ErrEmptyFields
	}

	card := &model.Card{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Title:    title,
		Desc:     desc,
		FileSize: "N/A",
		TagColor: "green",
	}

	if file != nil {
		res, err := s.blobs.Upload(ctx, ownerID, *file)
		if err != nil {
			s.logger.Errorw("card create: upload failed", "owner_id", ownerID, "error", err)
			return nil, ErrUploadFailed
		}
		card.FileURL = &res.URL
		card.StorageKey = &res.Key
		card.FileSize = formatFileSize(res.Size)
		card.TagOpen = true
		card.TagLabel = "Download"
	}

	if err := s.cards.Create(ctx, card); err != nil {
		if card.StorageKey != nil {
			// объект уже в хранилище, записи о нём не будет — фиксируем сироту
			s.logger.Errorw("card create: persist failed after upload, remote object orphaned",
				"owner_id", ownerID, "storage_key", *card.StorageKey, "error", err)
		} else {
			s.logger.Errorw("card create: persist failed", "owner_id", ownerID, "error", err)
		}
		return nil, err
	}

	return card, nil
}

// List возвращает карточки владельца, новые первыми.
func (s *CardService) List(ctx context.Context, ownerID int64) ([]model.Card, error) {
	return s.cards.ListByOwner(ctx, ownerID)
}

// Update меняет заголовок и описание карточки владельца.
func (s *CardService) Update(ctx context.Context, id string, ownerID int64, title, desc string) (*model.Card, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(desc) == "" {
		return nil, ErrEmptyFields
	}

	card, err := s.cards.UpdateOwned(ctx, id, ownerID, title, desc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotOwned
		}
		s.logger.Errorw("card update failed", "card_id", id, "owner_id", ownerID, "error", err)
		return nil, err
	}
	return card, nil
}

// Delete удаляет карточку владельца и, при наличии, её файл из хранилища.
// Неудача удаления файла логируется и не блокирует удаление записи.
func (s *CardService) Delete(ctx context.Context, id string, ownerID int64) error {
	card, err := s.cards.GetOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardNotOwned
		}
		s.logger.Errorw("card delete: lookup failed", "card_id", id, "owner_id", ownerID, "error", err)
		return err
	}

	if card.HasFile() {
		if err := s.blobs.Delete(ctx, *card.StorageKey); err != nil {
			s.logger.Errorw("card delete: remote cleanup failed",
				"card_id", id, "owner_id", ownerID, "storage_key", *card.StorageKey, "error", err)
		}
	}

	deleted, err := s.cards.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		s.logger.Errorw("card delete failed", "card_id", id, "owner_id", ownerID, "error", err)
		return err
	}
	if !deleted {
		return ErrCardNotOwned
	}
	return nil
}

// formatFileSize — человекочитаемый размер в мегабайтах, как в выдаче карточки.
func formatFileSize(sizeBytes int64) string {
	return fmt.Sprintf("%.2fmb", float64(sizeBytes)/(1024*1024))
}
