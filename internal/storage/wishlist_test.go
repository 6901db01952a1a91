package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JEWELVISTA_BACK-END/internal/models"
)

func TestWishlistStore_PutAndList(t *testing.T) {
	t.Parallel()

	store := NewDynamoWishlistStore(newFakeDynamo(), "WishlistTable")
	ctx := context.Background()

	entry := &models.WishlistEntry{
		Email:     "alice@example.com",
		ItemID:    "ring1",
		ItemName:  "Gold Ring",
		AddedDate: "2026-08-31 12:00:00",
	}
	require.NoError(t, store.Put(ctx, entry))

	entries, err := store.List(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ring1", entries[0].ItemID)
	assert.Equal(t, "Gold Ring", entries[0].ItemName)
	assert.Equal(t, "2026-08-31 12:00:00", entries[0].AddedDate)
}

func TestWishlistStore_UpsertOverwritesWholesale(t *testing.T) {
	t.Parallel()

	store := NewDynamoWishlistStore(newFakeDynamo(), "WishlistTable")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.WishlistEntry{
		Email: "a@x.com", ItemID: "ring1", ItemName: "Gold Ring", Description: "old",
	}))
	require.NoError(t, store.Put(ctx, &models.WishlistEntry{
		Email: "a@x.com", ItemID: "ring1", ItemName: "Rose Gold Ring",
	}))

	entries, err := store.List(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rose Gold Ring", entries[0].ItemName)
	// Wholesale overwrite: the old description does not survive
	assert.Empty(t, entries[0].Description)
}

func TestWishlistStore_ListIsScopedToOwner(t *testing.T) {
	t.Parallel()

	store := NewDynamoWishlistStore(newFakeDynamo(), "WishlistTable")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.WishlistEntry{Email: "u1@x.com", ItemID: "ring1", ItemName: "Ring"}))
	require.NoError(t, store.Put(ctx, &models.WishlistEntry{Email: "u2@x.com", ItemID: "ring1", ItemName: "Ring"}))
	require.NoError(t, store.Put(ctx, &models.WishlistEntry{Email: "u2@x.com", ItemID: "vanki1", ItemName: "Vanki"}))

	u1, err := store.List(ctx, "u1@x.com")
	require.NoError(t, err)
	require.Len(t, u1, 1)
	assert.Equal(t, "u1@x.com", u1[0].Email)

	u2, err := store.List(ctx, "u2@x.com")
	require.NoError(t, err)
	assert.Len(t, u2, 2)
}

func TestWishlistStore_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewDynamoWishlistStore(newFakeDynamo(), "WishlistTable")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.WishlistEntry{Email: "a@x.com", ItemID: "ring1", ItemName: "Ring"}))

	require.NoError(t, store.Delete(ctx, "a@x.com", "ring1"))
	entries, err := store.List(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Second delete of the same key is a no-op, not an error
	require.NoError(t, store.Delete(ctx, "a@x.com", "ring1"))

	// Deleting a key that never existed is also fine
	require.NoError(t, store.Delete(ctx, "a@x.com", "never-added"))
}
