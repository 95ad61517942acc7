package crud

import "fmt"

// Имена полей формы и ключи полей документа.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Record — запись пользователя, зеркало документа удалённой коллекции.
type Record struct {
	ID       string
	Email    string
	Password string
}

// Draft — редактируемая копия полей записи.
// Пустой EditTarget означает режим создания.
type Draft struct {
	Email      string
	Password   string
	EditTarget string
}

// Mode — состояние контроллера формы.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Mode возвращает режим, в котором находится черновик.
func (d Draft) Mode() Mode {
	if d.EditTarget != "" {
		return ModeEdit
	}
	return ModeCreate
}

func (d Draft) complete() bool {
	return d.Email != "" && d.Password != ""
}

// fields собирает поля документа (полная замена при обновлении).
func (d Draft) fields() map[string]any {
	return map[string]any{
		FieldEmail:    d.Email,
		FieldPassword: d.Password,
	}
}

func (d Draft) record(id string) Record {
	return Record{ID: id, Email: d.Email, Password: d.Password}
}

// recordFromDocument переносит поля документа в Record.
// Нестроковые значения приводятся к строке, отсутствующие остаются пустыми.
func recordFromDocument(doc Document) Record {
	return Record{
		ID:       doc.ID,
		Email:    stringField(doc.Fields, FieldEmail),
		Password: stringField(doc.Fields, FieldPassword),
	}
}

func stringField(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
