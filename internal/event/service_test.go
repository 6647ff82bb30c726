package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh021/event-listing-backend/internal/auditlog"
)

func newTestService() *Service {
	return NewService(NewMemoryStore(), auditlog.NewNoopService())
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &CreateEventRequest{
		Title:            "Launch Party",
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-11-20",
		Location:         "Rooftop",
		Price:            "$10",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, DefaultTime, created.Time)
	assert.Equal(t, DefaultCategory, created.Category)
	assert.Equal(t, DefaultImageURL, created.ImageURL)
}

func TestService_CreateKeepsExplicitValues(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &CreateEventRequest{
		Title:            "Launch Party",
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-11-20",
		Time:             "20:00",
		Location:         "Rooftop",
		Price:            "$10",
		Category:         "Music",
		ImageURL:         "https://example.com/p.png",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "20:00", created.Time)
	assert.Equal(t, "Music", created.Category)
	assert.Equal(t, "https://example.com/p.png", created.ImageURL)
}

func TestService_ReplacePreservesCreation(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &CreateEventRequest{
		Title:            "Original",
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-11-20",
		Location:         "Rooftop",
		Price:            "$10",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")
	require.NoError(t, err)

	replaced, err := svc.Replace(context.Background(), created.ID, &ReplaceEventRequest{
		Title:            "Renamed",
		ShortDescription: "short2",
		FullDescription:  "full2",
		Date:             "2026-12-01",
		Location:         "Basement",
		Price:            "$15",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, created.ID, replaced.ID)
	assert.True(t, replaced.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, "Renamed", replaced.Title)
	// Defaults re-applied on replace as well
	assert.Equal(t, DefaultTime, replaced.Time)
}

func TestService_ReplaceUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Replace(context.Background(), 7, &ReplaceEventRequest{
		Title:            "Ghost",
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-12-01",
		Location:         "Nowhere",
		Price:            "Free",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteReturnsRecord(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &CreateEventRequest{
		Title:            "Doomed",
		ShortDescription: "short",
		FullDescription:  "full",
		Date:             "2026-11-20",
		Location:         "Rooftop",
		Price:            "$10",
		CreatedBy:        "host@example.com",
	}, "127.0.0.1")
	require.NoError(t, err)

	removed, err := svc.Delete(context.Background(), created.ID, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Doomed", removed.Title)

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
