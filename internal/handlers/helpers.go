package handlers

import (
	"DocKeeper/internal/model"
	"encoding/json"
	"net/http"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// TagDTO — отображаемый тег карточки.
type TagDTO struct {
	IsOpen bool   `json:"isOpen"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// CardDTO — карточка в ответе API. Ключ удаления наружу не отдаётся.
type CardDTO struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Desc      string  `json:"desc"`
	FileSize  string  `json:"filesize"`
	FileURL   *string `json:"fileURL"`
	Tag       TagDTO  `json:"tag"`
	UserID    int64   `json:"userId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toCardDTO(c *model.Card) CardDTO {
	return CardDTO{
		ID:       c.ID,
		Title:    c.Title,
		Desc:     c.Desc,
		FileSize: c.FileSize,
		FileURL:  c.FileURL,
		Tag: TagDTO{
			IsOpen: c.TagOpen,
			Label:  c.TagLabel,
			Color:  c.TagColor,
		},
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
