package entities

import (
	"errors"
	"time"
)

// Ошибки уровня сущности напоминания.
var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrReminderConflict = errors.New("reminder already exists")
)

// Reminder представляет собой напоминание, привязываемое к заметкам.
type Reminder struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	CreationDate time.Time `json:"creation_date"`
	CreatedBy    string    `json:"created_by"`
}
