// internal/catalog/catalog.go

// Package catalog holds the product category intelligence records. A Catalog
// is merged once from authored category groups and is read-only afterwards,
// so it can be shared between goroutines without locking.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"product-intel/internal/domain"
	"product-intel/internal/validator"
)

// Group is one authored set of categories, keyed by category id.
type Group struct {
	Name       string
	Categories map[string]domain.ProductIntelligence
}

type Catalog struct {
	byID   map[string]domain.ProductIntelligence
	order  []string
	groups []string
	owner  map[string]string
}

// Merge combines groups into one catalog. Every problem found is reported in
// the returned error; an id defined twice is never overwritten.
func Merge(groups ...Group) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]domain.ProductIntelligence),
		owner: make(map[string]string),
	}

	var errs []error
	for _, g := range groups {
		c.groups = append(c.groups, g.Name)

		for _, key := range slices.Sorted(maps.Keys(g.Categories)) {
			rec := g.Categories[key]

			if rec.ID != key {
				errs = append(errs, &KeyMismatchError{Group: g.Name, Key: key, ID: rec.ID})
				continue
			}
			if err := validator.Struct(rec); err != nil {
				errs = append(errs, &InvalidRecordError{Group: g.Name, ID: key, Err: err})
				continue
			}
			if first, ok := c.owner[key]; ok {
				errs = append(errs, &DuplicateKeyError{ID: key, FirstGroup: first, SecondGroup: g.Name})
				continue
			}

			c.byID[key] = rec.Clone()
			c.owner[key] = g.Name
			c.order = append(c.order, key)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("merge catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

// Default merges every authored category group.
func Default() (*Catalog, error) {
	return Merge(WorldDomination(), EverydayEssentials(), CreatorEconomy())
}

// Get returns the record for id; ok is false for unknown ids.
func (c *Catalog) Get(id string) (domain.ProductIntelligence, bool) {
	rec, ok := c.byID[id]
	if !ok {
		return domain.ProductIntelligence{}, false
	}
	return rec.Clone(), true
}

// GroupOf returns the name of the group that defined id.
func (c *Catalog) GroupOf(id string) (string, bool) {
	g, ok := c.owner[id]
	return g, ok
}

// ListAll returns every record, groups in merge order and ids sorted within a group.
func (c *Catalog) ListAll() []domain.ProductIntelligence {
	out := make([]domain.ProductIntelligence, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) Groups() []string {
	return slices.Clone(c.groups)
}

// Search matches query case-insensitively against id, name and keywords.
// An empty query returns the full listing.
func (c *Catalog) Search(query string) []domain.ProductIntelligence {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.ListAll()
	}

	var out []domain.ProductIntelligence
	for _, id := range c.order {
		rec := c.byID[id]
		if matches(rec, q) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func matches(rec domain.ProductIntelligence, q string) bool {
	if strings.Contains(rec.ID, q) || strings.Contains(strings.ToLower(rec.Name), q) {
		return true
	}
	for _, kw := range rec.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
