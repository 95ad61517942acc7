package crud

import "context"

// Document — документ удалённой коллекции: идентификатор, выданный хранилищем, и поля.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store — клиент документного хранилища, с которым работает View.
// Реализация передаётся явно при создании View (в тестах подменяется фейком).
type Store interface {
	// ListAll возвращает все документы коллекции в порядке хранилища.
	ListAll(ctx context.Context, collection string) ([]Document, error)
	// Create создаёт документ и возвращает присвоенный хранилищем идентификатор.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update полностью заменяет поля документа id.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete удаляет документ id.
	Delete(ctx context.Context, collection, id string) error
}

// Alerter показывает пользователю блокирующее сообщение.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc позволяет использовать обычную функцию как Alerter.
type AlertFunc func(msg string)

// Alert вызывает f(msg).
func (f AlertFunc) Alert(msg string) { f(msg) }
