// internal/views/views_test.go
package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apfam/apfam-backend/internal/models"
)

func TestNewProductView_FlattensRelations(t *testing.T) {
	c1 := models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Laticínios"}
	c2 := models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Orgânicos"}
	a1 := models.Associate{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Maria da Serra", Slug: "maria-da-serra"}

	product := models.Product{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		Name:        "Queijo Minas",
		Slug:        "queijo-minas",
		Description: "Queijo curado produzido na serra.",
		ImageURL:    "https://cdn.example.com/object/public/apfam/products/queijo.jpg",
		Categories:  []models.Category{c1, c2},
		Associates:  []models.Associate{a1},
	}

	view := NewProductView(&product)

	assert.Equal(t, product.ID, view.ID)
	assert.Equal(t, "Queijo Minas", view.Name)
	assert.Equal(t, "queijo-minas", view.Slug)
	// Relation order survives the flattening.
	assert.Equal(t, []uuid.UUID{c1.ID, c2.ID}, view.CategoryIDs)
	assert.Equal(t, []string{"Laticínios", "Orgânicos"}, view.CategoryNames)
	require.Len(t, view.Associates, 1)
	assert.Equal(t, "maria-da-serra", view.Associates[0].Slug)
}

func TestNewProductView_EmptyRelationsAreNonNil(t *testing.T) {
	product := models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Produto Solto",
		Slug:      "produto-solto",
	}

	view := NewProductView(&product)

	// Empty lists must serialize as [] and blank scalars as "".
	assert.NotNil(t, view.CategoryIDs)
	assert.NotNil(t, view.CategoryNames)
	assert.NotNil(t, view.Associates)
	assert.Empty(t, view.CategoryIDs)
	assert.Equal(t, "", view.ImageURL)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"categoryIds":[]`)
	assert.Contains(t, string(raw), `"associates":[]`)
	assert.Contains(t, string(raw), `"imageUrl":""`)
}

func TestNewAssociateViews_PreservesOrderAndCount(t *testing.T) {
	associates := []models.Associate{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Primeira", Slug: "primeira", Bio: "b", Location: "l"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Segunda", Slug: "segunda", Bio: "b", Location: "l"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Terceira", Slug: "terceira", Bio: "b", Location: "l"},
	}

	views := NewAssociateViews(associates)

	require.Len(t, views, len(associates))
	for i := range associates {
		assert.Equal(t, associates[i].ID, views[i].ID)
		assert.Equal(t, associates[i].Name, views[i].Name)
		assert.NotNil(t, views[i].Products)
	}
}

func TestNewEventView_CamelCaseJSON(t *testing.T) {
	event := models.Event{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Title:       "Feira de Produtores",
		Slug:        "feira-de-produtores",
		Date:        time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC),
		Location:    "Praça Central",
		Description: "Feira mensal com barracas dos associados.",
	}

	raw, err := json.Marshal(NewEventView(&event))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"title":"Feira de Produtores"`)
	assert.Contains(t, string(raw), `"imageUrl":""`)
	assert.NotContains(t, string(raw), `"image_url"`)
}

func TestNewViews_EmptyInputYieldsEmptySlice(t *testing.T) {
	assert.NotNil(t, NewProductViews(nil))
	assert.NotNil(t, NewAssociateViews(nil))
	assert.NotNil(t, NewEventViews(nil))
	assert.NotNil(t, NewCategoryViews(nil))
	assert.NotNil(t, NewContactMessageViews(nil))

	assert.Empty(t, NewProductViews([]models.Product{}))
}
