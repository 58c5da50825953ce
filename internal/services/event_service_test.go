// internal/services/event_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAndReadBack(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventService(db, &fakeImageCleaner{})

	date := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	created, err := events.Create(&EventRequest{
		Title:       "Feira de Produtores",
		Slug:        "feira-de-produtores",
		Date:        date,
		Location:    "Praça Central",
		Description: "Feira mensal com barracas dos associados.",
	})
	require.NoError(t, err)

	fetched, err := events.GetBySlug("feira-de-produtores")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Feira de Produtores", fetched.Title)
	assert.True(t, fetched.Date.Equal(date))
}

func TestEventService_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventService(db, &fakeImageCleaner{})

	older := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	_, err := events.Create(&EventRequest{
		Title: "Encontro de Março", Slug: "encontro-de-marco", Date: older,
		Location: "Sede", Description: "Reunião ordinária dos associados.",
	})
	require.NoError(t, err)
	_, err = events.Create(&EventRequest{
		Title: "Encontro de Junho", Slug: "encontro-de-junho", Date: newer,
		Location: "Sede", Description: "Reunião ordinária dos associados.",
	})
	require.NoError(t, err)

	list, err := events.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Encontro de Junho", list[0].Title)
	assert.Equal(t, "Encontro de Março", list[1].Title)
}

func TestEventService_UpcomingSkipsPastEvents(t *testing.T) {
	db := setupTestDB(t)
	events := NewEventService(db, &fakeImageCleaner{})

	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 1, 0)

	_, err := events.Create(&EventRequest{
		Title: "Evento Passado", Slug: "evento-passado", Date: past,
		Location: "Sede", Description: "Já aconteceu, não deve aparecer.",
	})
	require.NoError(t, err)
	_, err = events.Create(&EventRequest{
		Title: "Evento Futuro", Slug: "evento-futuro", Date: future,
		Location: "Sede", Description: "Ainda vai acontecer.",
	})
	require.NoError(t, err)

	upcoming, err := events.Upcoming(10)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Evento Futuro", upcoming[0].Title)
}

func TestEventService_ImageCleanupOnChangeAndDelete(t *testing.T) {
	db := setupTestDB(t)
	cleaner := &fakeImageCleaner{}
	events := NewEventService(db, cleaner)

	oldURL := "https://cdn.example.com/object/public/apfam/events/feira-old.jpg"
	newURL := "https://cdn.example.com/object/public/apfam/events/feira-new.jpg"

	created, err := events.Create(&EventRequest{
		Title:       "Feira de Produtores",
		Slug:        "feira-de-produtores",
		Date:        time.Now().AddDate(0, 2, 0),
		Location:    "Praça Central",
		Description: "Feira mensal com barracas dos associados.",
		ImageURL:    oldURL,
	})
	require.NoError(t, err)

	_, err = events.Update(created.ID, &EventRequest{
		Title:       "Feira de Produtores",
		Slug:        "feira-de-produtores",
		Date:        time.Now().AddDate(0, 2, 0),
		Location:    "Praça Central",
		Description: "Feira mensal com barracas dos associados.",
		ImageURL:    newURL,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{oldURL}, cleaner.cleaned)

	require.NoError(t, events.Delete(created.ID))
	assert.Equal(t, []string{oldURL, newURL}, cleaner.cleaned)
}
