package app

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/goblinking/internal/config"
	"github.com/samdwyer/goblinking/internal/rando"
	"github.com/samdwyer/goblinking/internal/registry"
	"github.com/samdwyer/goblinking/internal/telemetry"
)

// FoodCategory is the database used for the single and unique food draws.
const FoodCategory = "Food"

// Roll is the result of one "Randomize equipment" choice.
type Roll struct {
	Food       string   // One random food entry
	UniqueFood []string // Distinct food entries
	Equipment  []string // Cross-category equipment draws
}

// Lines formats the roll for display.
func (r Roll) Lines() []string {
	lines := []string{
		"One item: " + r.Food,
		fmt.Sprintf("%d unique items: %s", len(r.UniqueFood), strings.Join(r.UniqueFood, ", ")),
		"",
		"Equipment:",
	}
	for _, item := range r.Equipment {
		lines = append(lines, "  "+item)
	}
	return lines
}

// RollEquipment draws one food entry, cfg.UniqueItems unique food entries and
// cfg.NumItems equipment entries from reg.
func RollEquipment(ctx context.Context, reg *registry.Registry, sampler *rando.Sampler, cfg config.Config) (Roll, error) {
	ctx, span := telemetry.Tracer("app").Start(ctx, "app.roll_equipment")
	span.SetAttributes(
		attribute.Int("roll.num_items", cfg.NumItems),
		attribute.Int("roll.unique_items", cfg.UniqueItems),
		attribute.StringSlice("roll.categories", reg.Names()),
	)
	defer span.End()

	food, ok := reg.ByName(FoodCategory)
	if !ok {
		return Roll{}, fmt.Errorf("no %s database in registry", FoodCategory)
	}

	one, err := sampler.One(ctx, food.Location)
	if err != nil {
		return Roll{}, err
	}
	unique, err := sampler.Unique(ctx, food.Location, cfg.UniqueItems)
	if err != nil {
		return Roll{}, err
	}
	items, err := sampler.Equipment(ctx, reg, cfg.NumItems, cfg.Verbose)
	if err != nil {
		return Roll{}, err
	}

	return Roll{Food: one, UniqueFood: unique, Equipment: items}, nil
}
