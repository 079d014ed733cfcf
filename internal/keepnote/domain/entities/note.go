package entities

import (
	"errors"
	"time"
)

// Ошибки уровня сущности заметки.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNoteConflict = errors.New("note already exists")
)

// Note представляет собой заметку пользователя.
//
// Category и Reminder хранят снимок записи, разрешенный на момент
// создания или обновления заметки. Последующее удаление категории или
// напоминания не затрагивает заметку.
type Note struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	CreationDate time.Time `json:"creation_date"`
	CreatedBy    string    `json:"created_by"`
	Category     *Category `json:"category,omitempty"`
	Reminder     *Reminder `json:"reminder,omitempty"`
}
