// Package entities defines the domain entities for the keepnote service.
package entities

import (
	"errors"
	"time"
)

// Ошибки уровня сущности пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("user already exists")
)

// User представляет собой учетную запись пользователя.
// ID выбирается пользователем при регистрации и глобально уникален.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	Mobile    string    `json:"mobile"`
	AddedDate time.Time `json:"added_date"`
}
