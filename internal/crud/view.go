// Package crud содержит представление для управления записями пользователей
// в коллекции удалённого документного хранилища: загрузка списка, форма
// добавления/редактирования и действия над строками таблицы.
package crud

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// DefaultCollection — коллекция, с которой работает представление по умолчанию.
const DefaultCollection = "users"

// AlertFillAllFields — текст блокирующего сообщения при незаполненной форме.
const AlertFillAllFields = "Fill all fields."

var (
	// ErrMissingFields возвращается Submit, если одно из полей формы пустое.
	ErrMissingFields = errors.New("all fields are required")
	// ErrUnknownField возвращается Change для неизвестного имени поля.
	ErrUnknownField = errors.New("unknown form field")
)

// View хранит локальный список записей и черновик формы.
//
// Локальный список — кэш коллекции: после первичной загрузки он меняется только
// после подтверждения удалённого вызова. Мьютекс защищает состояние, но не
// удерживается во время удалённых вызовов, поэтому при параллельных отправках
// формы побеждает последний применённый локальный патч.
type View struct {
	store      Store
	collection string
	alerter    Alerter
	logger     *zap.SugaredLogger

	mu      sync.Mutex
	records []Record
	draft   Draft
}

// NewView создаёт представление поверх store для коллекции collection.
func NewView(store Store, collection string, alerter Alerter, logger *zap.SugaredLogger) *View {
	if collection == "" {
		collection = DefaultCollection
	}
	if alerter == nil {
		alerter = AlertFunc(func(string) {})
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &View{
		store:      store,
		collection: collection,
		alerter:    alerter,
		logger:     logger,
	}
}

// Collection возвращает имя коллекции.
func (v *View) Collection() string { return v.collection }

// Load читает всю коллекцию и заменяет локальный список.
// При ошибке список не меняется.
func (v *View) Load(ctx context.Context) error {
	docs, err := v.store.ListAll(ctx, v.collection)
	if err != nil {
		v.logger.Errorw("load failed", "collection", v.collection, "error", err)
		return fmt.Errorf("list %s: %w", v.collection, err)
	}
	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, recordFromDocument(d))
	}

	v.mu.Lock()
	v.records = records
	v.mu.Unlock()
	return nil
}

// Change обновляет одно поле черновика по имени поля ввода.
func (v *View) Change(name, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch name {
	case FieldEmail:
		v.draft.Email = value
	case FieldPassword:
		v.draft.Password = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Submit отправляет черновик: создаёт документ в режиме создания
// или полностью заменяет поля редактируемого документа.
// После успеха черновик очищается и форма возвращается в режим создания.
// Ошибка удалённого вызова только логируется, черновик остаётся для повтора.
func (v *View) Submit(ctx context.Context) error {
	d := v.Draft()
	if !d.complete() {
		v.alerter.Alert(AlertFillAllFields)
		return ErrMissingFields
	}

	if d.Mode() == ModeEdit {
		if err := v.store.Update(ctx, v.collection, d.EditTarget, d.fields()); err != nil {
			v.logger.Errorw("submit failed", "mode", ModeEdit.String(), "collection", v.collection, "id", d.EditTarget, "error", err)
			return fmt.Errorf("update %s: %w", d.EditTarget, err)
		}
		v.mu.Lock()
		for i := range v.records {
			if v.records[i].ID == d.EditTarget {
				v.records[i] = d.record(d.EditTarget)
			}
		}
		v.draft = Draft{}
		v.mu.Unlock()
		return nil
	}

	id, err := v.store.Create(ctx, v.collection, d.fields())
	if err != nil {
		v.logger.Errorw("submit failed", "mode", ModeCreate.String(), "collection", v.collection, "error", err)
		return fmt.Errorf("create: %w", err)
	}
	v.mu.Lock()
	v.records = append(v.records, d.record(id))
	v.draft = Draft{}
	v.mu.Unlock()
	return nil
}

// EditRow переводит форму в режим редактирования записи r.
// Удалённых вызовов не делает.
func (v *View) EditRow(r Record) {
	v.mu.Lock()
	v.draft = Draft{Email: r.Email, Password: r.Password, EditTarget: r.ID}
	v.mu.Unlock()
}

// Reset очищает черновик и возвращает форму в режим создания.
func (v *View) Reset() {
	v.mu.Lock()
	v.draft = Draft{}
	v.mu.Unlock()
}

// Delete удаляет документ id в хранилище, затем убирает запись из локального списка.
// Отсутствующий в списке id — не ошибка: удалённый вызов всё равно выполняется.
func (v *View) Delete(ctx context.Context, id string) error {
	if err := v.store.Delete(ctx, v.collection, id); err != nil {
		v.logger.Errorw("delete failed", "collection", v.collection, "id", id, "error", err)
		return fmt.Errorf("delete %s: %w", id, err)
	}
	v.mu.Lock()
	kept := v.records[:0]
	for _, r := range v.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	v.records = kept
	v.mu.Unlock()
	return nil
}

// Records возвращает копию локального списка.
func (v *View) Records() []Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Record, len(v.records))
	copy(out, v.records)
	return out
}

// Find ищет запись по идентификатору в локальном списке.
func (v *View) Find(id string) (Record, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Draft возвращает копию черновика.
func (v *View) Draft() Draft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// Mode возвращает текущий режим формы.
func (v *View) Mode() Mode { return v.Draft().Mode() }

// Heading — заголовок карточки формы.
func (v *View) Heading() string {
	if v.Mode() == ModeEdit {
		return "Edit User"
	}
	return "Add User"
}

// SubmitLabel — надпись на кнопке отправки.
func (v *View) SubmitLabel() string {
	if v.Mode() == ModeEdit {
		return "Update User"
	}
	return "Add User"
}
