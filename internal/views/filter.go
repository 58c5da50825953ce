// internal/views/filter.go
package views

import (
	"strings"

	"github.com/google/uuid"
)

// In-memory catalog filtering, matching the public pages' behavior: a record
// passes when the free-text query is a case-insensitive substring of any of
// its configured fields AND it holds at least one membership from the filter
// set. A blank query and an empty filter set each match everything. Input
// order is preserved; this filters, it never ranks.

// FilterProducts matches the query against name and description, and the
// category set against the product's category memberships.
func FilterProducts(products []ProductView, query string, categoryIDs []uuid.UUID) []ProductView {
	q := normalizeQuery(query)
	selected := idSet(categoryIDs)

	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		if !matchesText(q, p.Name, p.Description) {
			continue
		}
		if !matchesMembership(selected, p.CategoryIDs) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAssociates matches the query against name, location and the names of
// the associate's products, and the product set against its memberships.
func FilterAssociates(associates []AssociateView, query string, productIDs []uuid.UUID) []AssociateView {
	q := normalizeQuery(query)
	selected := idSet(productIDs)

	out := make([]AssociateView, 0, len(associates))
	for _, a := range associates {
		fields := make([]string, 0, len(a.Products)+2)
		fields = append(fields, a.Name, a.Location)
		for _, p := range a.Products {
			fields = append(fields, p.Name)
		}
		if !matchesText(q, fields...) {
			continue
		}

		memberships := make([]uuid.UUID, 0, len(a.Products))
		for _, p := range a.Products {
			memberships = append(memberships, p.ID)
		}
		if !matchesMembership(selected, memberships) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterEvents matches the query against title, location and description.
func FilterEvents(events []EventView, query string) []EventView {
	q := normalizeQuery(query)

	out := make([]EventView, 0, len(events))
	for _, e := range events {
		if !matchesText(q, e.Title, e.Location, e.Description) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchesText reports whether any field contains the normalized query.
// A blank query matches everything.
func matchesText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// matchesMembership is OR within the selected set: at least one membership
// must be selected. An empty set matches everything.
func matchesMembership(selected map[uuid.UUID]struct{}, memberships []uuid.UUID) bool {
	if len(selected) == 0 {
		return true
	}
	for _, id := range memberships {
		if _, ok := selected[id]; ok {
			return true
		}
	}
	return false
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
