package handlers

import (
	"DocKeeper/internal/config"
	"DocKeeper/internal/middleware"
	"DocKeeper/internal/objstore"
	"DocKeeper/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CardHandler обрабатывает CRUD карточек документов.
type CardHandler struct {
	CardService *service.CardService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewCardHandler создаёт хендлер карточек
func NewCardHandler(cardService *service.CardService, logger *zap.SugaredLogger, cfg *config.Config) *CardHandler {
	return &CardHandler{CardService: cardService, Logger: logger, Config: cfg}
}

type updateCardRequest struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Create создаёт карточку из multipart-формы, файл опционален
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.FileMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Create card: invalid multipart form", "user_id", userID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	title := r.FormValue("title")
	desc := r.FormValue("desc")

	// Файл опционален: без него карточка создаётся с закрытым тегом
	var upload *objstore.Upload
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			h.Logger.Warnw("Create card: failed to read file", "user_id", userID, "error", readErr)
			writeError(w, http.StatusBadRequest, "failed to read file")
			return
		}
		upload = &objstore.Upload{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		}
	case errors.Is(err, http.ErrMissingFile):
		// карточка без файла
	default:
		h.Logger.Warnw("Create card: bad file part", "user_id", userID, "error", err)
		writeError(w, http.StatusBadRequest, "bad file part")
		return
	}

	card, err := h.CardService.Create(r.Context(), userID, title, desc, upload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields):
			writeError(w, http.StatusBadRequest, "title and description cannot be empty.")
		case errors.Is(err, service.ErrUploadFailed):
			writeError(w, http.StatusInternalServerError, "server error: could not create card or upload file.")
		default:
			h.Logger.Errorw("Create card: service error", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "server error: could not create card.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toCardDTO(card))
}

// List возвращает карточки владельца, новые первыми
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cards, err := h.CardService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List cards: service error", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "server error: could not fetch cards.")
		return
	}

	// пустой список сериализуем как [], а не null
	dtos := make([]CardDTO, 0, len(cards))
	for i := range cards {
		dtos = append(dtos, toCardDTO(&cards[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Update меняет заголовок и описание карточки
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cardID := chi.URLParam(r, "id")

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update card: invalid request body", "card_id", cardID, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	card, err := h.CardService.Update(r.Context(), cardID, userID, req.Title, req.Desc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields):
			writeError(w, http.StatusBadRequest, "title and description cannot be empty.")
		case errors.Is(err, service.ErrCardNotOwned):
			writeError(w, http.StatusForbidden, "forbidden: card not found or you do not own this card.")
		default:
			h.Logger.Errorw("Update card: service error", "card_id", cardID, "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "server error: could not update card.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toCardDTO(card))
}

// Delete удаляет карточку и её файл из хранилища
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cardID := chi.URLParam(r, "id")

	if err := h.CardService.Delete(r.Context(), cardID, userID); err != nil {
		if errors.Is(err, service.ErrCardNotOwned) {
			writeError(w, http.StatusForbidden, "forbidden: card not found or you do not own this card.")
			return
		}
		h.Logger.Errorw("Delete card: service error", "card_id", cardID, "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "server error: could not delete card.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Card and associated file deleted successfully.",
	})
}
