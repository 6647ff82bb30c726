package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(title, createdBy string) *Event {
	return &Event{
		Title:            title,
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-09-12",
		Time:             "09:00",
		Location:         "Hall A",
		Price:            "Free",
		Category:         "Other",
		ImageURL:         "📅",
		CreatedBy:        createdBy,
	}
}

func TestMemoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	store := NewMemoryStore()

	first := seedEvent("one", "a@example.com")
	second := seedEvent("two", "a@example.com")

	require.NoError(t, store.Create(first))
	require.NoError(t, store.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryStore_GetByID(t *testing.T) {
	store := NewMemoryStore()
	e := seedEvent("one", "a@example.com")
	require.NoError(t, store.Create(e))

	got, err := store.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)

	_, err = store.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	e := seedEvent("one", "a@example.com")
	require.NoError(t, store.Create(e))

	got, err := store.GetByID(e.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := store.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", again.Title)
}

func TestMemoryStore_ListByCreator(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Create(seedEvent("one", "a@example.com")))
	require.NoError(t, store.Create(seedEvent("two", "b@example.com")))
	require.NoError(t, store.Create(seedEvent("three", "a@example.com")))

	events, err := store.ListByCreator("a@example.com")
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = store.ListByCreator("missing@example.com")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMemoryStore_Replace(t *testing.T) {
	store := NewMemoryStore()
	e := seedEvent("one", "a@example.com")
	require.NoError(t, store.Create(e))

	updated := *e
	updated.Title = "renamed"
	require.NoError(t, store.Replace(&updated))

	got, err := store.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	missing := seedEvent("ghost", "a@example.com")
	missing.ID = 42
	assert.ErrorIs(t, store.Replace(missing), ErrNotFound)
}

func TestMemoryStore_DeleteRemovesAndReturns(t *testing.T) {
	store := NewMemoryStore()
	e := seedEvent("one", "a@example.com")
	require.NoError(t, store.Create(e))

	removed, err := store.Delete(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", removed.Title)

	events, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = store.Delete(e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_IDsNotReusedAfterDelete(t *testing.T) {
	store := NewMemoryStore()
	e := seedEvent("one", "a@example.com")
	require.NoError(t, store.Create(e))

	_, err := store.Delete(e.ID)
	require.NoError(t, err)

	next := seedEvent("two", "a@example.com")
	require.NoError(t, store.Create(next))
	assert.Equal(t, uint(2), next.ID)
}
