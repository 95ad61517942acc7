package repo

import (
	"UserCRUD/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// DocumentRepository — доступ к документам коллекций владельца.
type DocumentRepository interface {
	// ListByCollection возвращает документы коллекции по возрастанию created_at.
	ListByCollection(ctx context.Context, ownerID int64, collection string) ([]model.Document, error)

	// GetByID возвращает документ или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, ownerID int64, collection, id string) (*model.Document, error)

	Create(ctx context.Context, doc *model.Document) error

	// Replace полностью заменяет данные документа.
	// Если документ не найден — gorm.ErrRecordNotFound.
	Replace(ctx context.Context, ownerID int64, collection, id, data string) error

	// Delete удаляет документ; отсутствие документа ошибкой не считается.
	Delete(ctx context.Context, ownerID int64, collection, id string) error
}

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository создаёт реализацию репозитория документов.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) scope(ctx context.Context, ownerID int64, collection string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Document{}).
		Where("owner_id = ? AND collection = ?", ownerID, collection)
}

func (r *documentRepo) ListByCollection(ctx context.Context, ownerID int64, collection string) ([]model.Document, error) {
	var docs []model.Document
	err := r.scope(ctx, ownerID, collection).
		Order("created_at ASC").Order("id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) GetByID(ctx context.Context, ownerID int64, collection, id string) (*model.Document, error) {
	var d model.Document
	if err := r.scope(ctx, ownerID, collection).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepo) Replace(ctx context.Context, ownerID int64, collection, id, data string) error {
	tx := r.scope(ctx, ownerID, collection).Where("id = ?", id).
		Updates(map[string]any{"data": data, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, ownerID int64, collection, id string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND collection = ? AND id = ?", ownerID, collection, id).
		Delete(&model.Document{}).Error
}
