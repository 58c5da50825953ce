// internal/views/views.go

// Package views holds the flat read models served to the site, plus the
// mappers that build them from relational rows. Mapping is pure and total:
// every input row yields exactly one view, optional scalars come out as ""
// and join lists as empty (never nil) slices, preserving source order.
package views

import (
	"time"

	"github.com/google/uuid"

	"github.com/apfam/apfam-backend/internal/models"
)

type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductRef is the short product shape embedded in associate views.
type ProductRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// AssociateRef is the short associate shape embedded in product views.
type AssociateRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type ProductView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"imageUrl"`
	CategoryIDs   []uuid.UUID    `json:"categoryIds"`
	CategoryNames []string       `json:"categoryNames"`
	Associates    []AssociateRef `json:"associates"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type AssociateView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Bio       string       `json:"bio"`
	Location  string       `json:"location"`
	AvatarURL string       `json:"avatarUrl"`
	Products  []ProductRef `json:"products"`
	CreatedAt time.Time    `json:"createdAt"`
}

type EventView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
}

type ContactMessageView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProductionType string    `json:"productionType"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewCategoryView(c *models.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}

func NewCategoryViews(categories []models.Category) []CategoryView {
	out := make([]CategoryView, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryView(&categories[i]))
	}
	return out
}

// NewProductView flattens a product row with its preloaded categories and
// associates into the catalog shape.
func NewProductView(p *models.Product) ProductView {
	categoryIDs := make([]uuid.UUID, 0, len(p.Categories))
	categoryNames := make([]string, 0, len(p.Categories))
	for i := range p.Categories {
		categoryIDs = append(categoryIDs, p.Categories[i].ID)
		categoryNames = append(categoryNames, p.Categories[i].Name)
	}

	associates := make([]AssociateRef, 0, len(p.Associates))
	for i := range p.Associates {
		associates = append(associates, AssociateRef{
			ID:   p.Associates[i].ID,
			Name: p.Associates[i].Name,
			Slug: p.Associates[i].Slug,
		})
	}

	return ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		CategoryIDs:   categoryIDs,
		CategoryNames: categoryNames,
		Associates:    associates,
		CreatedAt:     p.CreatedAt,
	}
}

func NewProductViews(products []models.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, NewProductView(&products[i]))
	}
	return out
}

func NewAssociateView(a *models.Associate) AssociateView {
	products := make([]ProductRef, 0, len(a.Products))
	for i := range a.Products {
		products = append(products, ProductRef{
			ID:   a.Products[i].ID,
			Name: a.Products[i].Name,
			Slug: a.Products[i].Slug,
		})
	}

	return AssociateView{
		ID:        a.ID,
		Name:      a.Name,
		Slug:      a.Slug,
		Bio:       a.Bio,
		Location:  a.Location,
		AvatarURL: a.AvatarURL,
		Products:  products,
		CreatedAt: a.CreatedAt,
	}
}

func NewAssociateViews(associates []models.Associate) []AssociateView {
	out := make([]AssociateView, 0, len(associates))
	for i := range associates {
		out = append(out, NewAssociateView(&associates[i]))
	}
	return out
}

func NewEventView(e *models.Event) EventView {
	return EventView{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Date:        e.Date,
		Location:    e.Location,
		Description: e.Description,
		ImageURL:    e.ImageURL,
	}
}

func NewEventViews(events []models.Event) []EventView {
	out := make([]EventView, 0, len(events))
	for i := range events {
		out = append(out, NewEventView(&events[i]))
	}
	return out
}

func NewContactMessageView(m *models.ContactMessage) ContactMessageView {
	return ContactMessageView{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		ProductionType: m.ProductionType,
		Message:        m.Message,
		CreatedAt:      m.CreatedAt,
	}
}

func NewContactMessageViews(messages []models.ContactMessage) []ContactMessageView {
	out := make([]ContactMessageView, 0, len(messages))
	for i := range messages {
		out = append(out, NewContactMessageView(&messages[i]))
	}
	return out
}
