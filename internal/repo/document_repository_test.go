package repo

import (
	"UserCRUD/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// хелпер для создания документа
func mkDoc(id string, owner int64, collection, data string, created time.Time) model.Document {
	return model.Document{
		ID:         id,
		OwnerID:    owner,
		Collection: collection,
		Data:       data,
		CreatedAt:  created.UTC(),
		UpdatedAt:  created.UTC(),
	}
}

func TestDocumentRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	t1 := time.Now().UTC().Add(-3 * time.Hour)
	t2 := time.Now().UTC().Add(-2 * time.Hour)
	t3 := time.Now().UTC().Add(-1 * time.Hour)

	docs := []model.Document{
		mkDoc("b", 1, "users", `{"email":"b"}`, t2),
		mkDoc("a", 1, "users", `{"email":"a"}`, t1),
		mkDoc("c", 1, "users", `{"email":"c"}`, t3),
		mkDoc("o", 1, "other", `{}`, t1), // другая коллекция
		mkDoc("x", 2, "users", `{}`, t1), // другой владелец
	}
	for i := range docs {
		d := docs[i]
		require.NoError(t, r.Create(ctx, &d))
	}

	list, err := r.ListByCollection(ctx, 1, "users")
	require.NoError(t, err)
	if assert.Len(t, list, 3) {
		assert.Equal(t, "a", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
		assert.Equal(t, "c", list[2].ID)
	}

	got, err := r.GetByID(ctx, 1, "users", "b")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"b"}`, got.Data)

	// чужой документ не виден
	got, err = r.GetByID(ctx, 1, "users", "x")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	empty, err := r.ListByCollection(ctx, 3, "users")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDocumentRepository_Replace(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	base := mkDoc("d1", 7, "users", `{"email":"old"}`, time.Now().Add(-time.Hour))
	require.NoError(t, r.Create(ctx, &base))

	require.NoError(t, r.Replace(ctx, 7, "users", "d1", `{"email":"new"}`))
	got, err := r.GetByID(ctx, 7, "users", "d1")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"new"}`, got.Data)
	assert.WithinDuration(t, time.Now().UTC(), got.UpdatedAt, 2*time.Second)

	// нет такого документа / чужой владелец
	assert.Equal(t, gorm.ErrRecordNotFound, r.Replace(ctx, 7, "users", "nope", `{}`))
	assert.Equal(t, gorm.ErrRecordNotFound, r.Replace(ctx, 8, "users", "d1", `{}`))
}

func TestDocumentRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	d := mkDoc("d1", 5, "users", `{}`, time.Now())
	require.NoError(t, r.Create(ctx, &d))

	// чужой владелец не может удалить
	require.NoError(t, r.Delete(ctx, 6, "users", "d1"))
	_, err := r.GetByID(ctx, 5, "users", "d1")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, 5, "users", "d1"))
	_, err = r.GetByID(ctx, 5, "users", "d1")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// повторное удаление — не ошибка
	assert.NoError(t, r.Delete(ctx, 5, "users", "d1"))
}
