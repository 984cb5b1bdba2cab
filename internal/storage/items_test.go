package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/codeboxhq/codebox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	db, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestSaveAndGetItem(t *testing.T) {
	db := newTestStorage(t)
	ctx := context.Background()

	item := model.NewItem(model.RecognitionResult{
		Category:       model.CategoryPickup,
		Code:           "AB1234",
		Platform:       "丰巢",
		StationName:    "小区东门驿站",
		StationAddress: "幸福路12号",
	}, "您的丰巢快递已到，取件码AB1234")

	require.NoError(t, db.SaveItem(ctx, &item))

	got, err := db.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "AB1234", got.Code)
	assert.Equal(t, model.CategoryPickup, got.Category)
	assert.Equal(t, "丰巢", got.Platform)
	assert.Equal(t, "小区东门驿站", got.StationName)
	assert.Equal(t, "幸福路12号", got.StationAddress)
	assert.Equal(t, "您的丰巢快递已到，取件码AB1234", got.OriginalText)
	assert.False(t, got.Used)
	assert.Nil(t, got.ExpiresAt)
}

func TestGetItemNotFound(t *testing.T) {
	db := newTestStorage(t)

	_, err := db.GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSaveItemValidation(t *testing.T) {
	db := newTestStorage(t)
	ctx := context.Background()

	assert.Error(t, db.SaveItem(ctx, nil))
	assert.Error(t, db.SaveItem(ctx, &model.Item{Code: "123456"}))
}

func TestListItems(t *testing.T) {
	db := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seed := []model.Item{
		{ID: "a", Code: "111111", Category: model.CategoryVerification, CreatedAt: base},
		{ID: "b", Code: "AB1234", Category: model.CategoryPickup, Platform: "丰巢", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Code: "222222", Category: model.CategoryVerification, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, db.SaveItem(ctx, &seed[i]))
	}

	t.Run("all items most recent first", func(t *testing.T) {
		items, err := db.ListItems(ctx, ItemFilter{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "c", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
		assert.Equal(t, "a", items[2].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		items, err := db.ListItems(ctx, ItemFilter{Category: model.CategoryVerification})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "c", items[0].ID)
		assert.Equal(t, "a", items[1].ID)
	})

	t.Run("limit", func(t *testing.T) {
		items, err := db.ListItems(ctx, ItemFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "c", items[0].ID)
	})
}

func TestMarkUsedAndDelete(t *testing.T) {
	db := newTestStorage(t)
	ctx := context.Background()

	item := model.Item{ID: "x", Code: "583920", Category: model.CategoryVerification}
	require.NoError(t, db.SaveItem(ctx, &item))

	require.NoError(t, db.MarkUsed(ctx, "x"))
	got, err := db.GetItem(ctx, "x")
	require.NoError(t, err)
	assert.True(t, got.Used)

	assert.ErrorIs(t, db.MarkUsed(ctx, "missing"), ErrItemNotFound)

	require.NoError(t, db.DeleteItem(ctx, "x"))
	_, err = db.GetItem(ctx, "x")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, db.DeleteItem(ctx, "x"), ErrItemNotFound)
}
