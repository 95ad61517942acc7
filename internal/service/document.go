package service

import (
	"UserCRUD/internal/model"
	"UserCRUD/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrInvalidDocumentID = errors.New("invalid document id")
)

var collectionRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateCollection проверяет имя коллекции.
func ValidateCollection(name string) error {
	if name == "" || !collectionRe.MatchString(name) {
		return fmt.Errorf("%w: %q (allowed: letters, digits, . _ -)", ErrInvalidCollection, name)
	}
	return nil
}

// Doc — документ с разобранными полями.
type Doc struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentService инкапсулирует работу с документами коллекций пользователя.
type DocumentService struct {
	repo   repo.DocumentRepository
	logger *zap.SugaredLogger
}

func NewDocumentService(r repo.DocumentRepository, logger *zap.SugaredLogger) *DocumentService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DocumentService{repo: r, logger: logger}
}

// List возвращает все документы коллекции в порядке создания.
func (s *DocumentService) List(ctx context.Context, ownerID int64, collection string) ([]Doc, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByCollection(ctx, ownerID, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Doc, 0, len(rows))
	for _, row := range rows {
		d, err := decodeDoc(row)
		if err != nil {
			// битый документ не должен ломать выдачу всей коллекции
			s.logger.Warnw("List: skip undecodable document", "id", row.ID, "collection", collection, "error", err)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Get возвращает документ по id.
func (s *DocumentService) Get(ctx context.Context, ownerID int64, collection, id string) (Doc, error) {
	if err := ValidateCollection(collection); err != nil {
		return Doc{}, err
	}
	row, err := s.repo.GetByID(ctx, ownerID, collection, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Doc{}, ErrDocumentNotFound
		}
		return Doc{}, err
	}
	return decodeDoc(*row)
}

// Create сохраняет новый документ и возвращает присвоенный id.
func (s *DocumentService) Create(ctx context.Context, ownerID int64, collection string, fields map[string]any) (string, error) {
	if err := ValidateCollection(collection); err != nil {
		return "", err
	}
	data, err := encodeFields(fields)
	if err != nil {
		return "", err
	}
	doc := &model.Document{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Collection: collection,
		Data:       data,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

// Replace полностью заменяет поля документа.
func (s *DocumentService) Replace(ctx context.Context, ownerID int64, collection, id string, fields map[string]any) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidDocumentID
	}
	data, err := encodeFields(fields)
	if err != nil {
		return err
	}
	if err := s.repo.Replace(ctx, ownerID, collection, id, data); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

// Delete удаляет документ. Удаление несуществующего документа успешно.
func (s *DocumentService) Delete(ctx context.Context, ownerID int64, collection, id string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidDocumentID
	}
	return s.repo.Delete(ctx, ownerID, collection, id)
}

func encodeFields(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode fields: %w", err)
	}
	return string(b), nil
}

func decodeDoc(row model.Document) (Doc, error) {
	fields := map[string]any{}
	if row.Data != "" {
		if err := json.Unmarshal([]byte(row.Data), &fields); err != nil {
			return Doc{}, fmt.Errorf("decode document %s: %w", row.ID, err)
		}
	}
	return Doc{ID: row.ID, Fields: fields, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}
