package entities

import (
	"errors"
	"time"
)

// Ошибки уровня сущности категории.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category already exists")
)

// Category представляет собой категорию заметок.
// ID задается клиентом, поэтому дубликат при создании - конфликт.
type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creation_date"`
	CreatedBy    string    `json:"created_by"`
}
