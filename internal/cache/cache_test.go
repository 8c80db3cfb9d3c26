package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Minute), mr
}

func TestCollectionKey_Deterministic(t *testing.T) {
	a := CollectionKey("leads", map[string]string{"status": "qualified", "page": "2"})
	b := CollectionKey("leads", map[string]string{"page": "2", "status": "qualified"})
	assert.Equal(t, a, b)
	assert.Equal(t, "crm:leads:page=2:status=qualified", a)
	assert.Equal(t, "crm:leads", CollectionKey("leads", nil))
}

func TestStore_GetSetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	type row struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	key := CollectionKey("accounts", map[string]string{"per_page": "100"})
	store.Set(ctx, key, []row{{ID: "a1", Name: "Acme"}})

	var got []row
	require.True(t, store.Get(ctx, key, &got))
	assert.Equal(t, "Acme", got[0].Name)
}

func TestStore_InvalidateCollections(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	leadsKey := CollectionKey("leads", map[string]string{"status": "qualified"})
	dealsKey := CollectionKey("deals", nil)
	detailKey := DetailKey("leads", "L1")
	accountsKey := CollectionKey("accounts", nil)
	visitsKey := CollectionKey("visits", nil)

	for _, k := range []string{leadsKey, dealsKey, detailKey, accountsKey, visitsKey} {
		store.Set(ctx, k, "cached")
	}

	store.InvalidateCollections(ctx, "leads", "deals", "accounts", "contacts")

	var out string
	assert.False(t, store.Get(ctx, leadsKey, &out))
	assert.False(t, store.Get(ctx, dealsKey, &out))
	assert.False(t, store.Get(ctx, detailKey, &out))
	assert.False(t, store.Get(ctx, accountsKey, &out))
	// untouched collections stay cached
	assert.True(t, store.Get(ctx, visitsKey, &out))
}

func TestStore_NilSafe(t *testing.T) {
	var store *Store
	ctx := context.Background()

	var out string
	assert.False(t, store.Get(ctx, "crm:leads", &out))
	store.Set(ctx, "crm:leads", "x")
	store.InvalidateCollections(ctx, "leads")
	store.InvalidateKey(ctx, "crm:leads")
}
