// Package shop provides the catalog of items that can be bought for the pet.
package shop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/moodpet/internal/models"
)

// ErrUnknownItem is returned when an item id is not in the catalog
var ErrUnknownItem = errors.New("unknown shop item")

func delta(v int) *int { return &v }

// Catalog is an ordered, read-only list of shop items
type Catalog []models.ShopItem

// Default returns the built-in catalog
func Default() Catalog {
	return Catalog{
		{ID: "treat", Name: "Treat", Icon: "🍪", Price: 20, Effect: models.ItemEffect{Happiness: delta(10)}},
		{ID: "meal", Name: "Hearty Meal", Icon: "🍲", Price: 30, Effect: models.ItemEffect{Hunger: delta(25)}},
		{ID: "toy", Name: "Squeaky Toy", Icon: "🧸", Price: 50, Effect: models.ItemEffect{Happiness: delta(20)}},
		{ID: "spa", Name: "Spa Day", Icon: "🛁", Price: 80, Effect: models.ItemEffect{Happiness: delta(30), Hunger: delta(10)}},
		{ID: "feast", Name: "Feast", Icon: "🍱", Price: 120, Effect: models.ItemEffect{Happiness: delta(15), Hunger: delta(40)}},
	}
}

// Find looks up an item by id, case-insensitively
func (c Catalog) Find(id string) (models.ShopItem, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, item := range c {
		if item.ID == id {
			return item, nil
		}
	}
	return models.ShopItem{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// DescribeEffect renders an item's effect for listings, e.g. "+10 happiness, +25 hunger"
func DescribeEffect(e models.ItemEffect) string {
	var parts []string
	if e.Happiness != nil {
		parts = append(parts, fmt.Sprintf("%+d happiness", *e.Happiness))
	}
	if e.Hunger != nil {
		parts = append(parts, fmt.Sprintf("%+d hunger", *e.Hunger))
	}
	if len(parts) == 0 {
		return "no effect"
	}
	return strings.Join(parts, ", ")
}
