// Package session определяет типизированную запись сессии запроса.
package session

// Session связывает обрабатываемый запрос с идентификатором вошедшего
// пользователя. Нулевое значение означает анонимный запрос.
type Session struct {
	UserID string
}

// Present сообщает, установлена ли для запроса аутентифицированная сессия.
func (s Session) Present() bool {
	return s.UserID != ""
}

// Matches сообщает, совпадает ли идентификатор сессии с указанным
// пользователем. Для отсутствующей сессии возвращает false, не ошибку.
func (s Session) Matches(userID string) bool {
	return s.UserID != "" && s.UserID == userID
}
