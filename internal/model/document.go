package model

import "time"

// Document — серверная модель документа коллекции.
// Поля документа хранятся как JSON-объект в Data.
type Document struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	OwnerID    int64  `gorm:"not null;index:idx_documents_owner_collection"` // ссылка на users.id
	Collection string `gorm:"not null;index:idx_documents_owner_collection"`

	// Связи
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Data string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
