package world

import (
	"context"
	"log/slog"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// CreateItem adds a new item definition to the catalog
func (s *Store) CreateItem(ctx context.Context, fields model.ItemFields) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.Item{
		ID:          s.random.ID(),
		Name:        fields.Name,
		NameColor:   fields.NameColor,
		Description: fields.Description,
		Rarity:      fields.Rarity,
		Icon:        fields.Icon,
		Weight:      fields.Weight,
		Category:    fields.Category,
	}
	s.items = append(s.items, item)

	if err := s.persist(ctx, repository.Items); err != nil {
		return model.Item{}, err
	}
	s.logger.Info("item created", slog.String("item_id", item.ID), slog.String("name", item.Name))
	return item, nil
}

// UpdateItem merges the patch into a catalog item. Copies already placed in
// lobbies, inventories or listings keep their old values.
func (s *Store) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&s.items[i])

	if err := s.persist(ctx, repository.Items); err != nil {
		return false, err
	}
	s.logger.Info("item updated", slog.String("item_id", id))
	return true, nil
}

// DeleteItem removes a catalog item and any staging entry for it
func (s *Store) DeleteItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.itemIndex(id) < 0 {
		return false, nil
	}
	s.items = filter(s.items, func(it model.Item) bool { return it.ID != id })
	s.staging = filter(s.staging, func(si model.StagingItem) bool { return si.ItemID != id })

	if err := s.persist(ctx, repository.Items); err != nil {
		return false, err
	}
	s.logger.Info("item deleted", slog.String("item_id", id))
	return true, nil
}

// Items returns the catalog
func (s *Store) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item{}, s.items...)
}

// Item returns one catalog item
func (s *Store) Item(id string) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.itemIndex(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateCraftRecipe records a two-ingredient recipe. Ingredient and result
// ids are not checked against the catalog.
func (s *Store) CreateCraftRecipe(ctx context.Context, name, ingredientA, ingredientB, resultItemID string) (model.CraftRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := model.CraftRecipe{
		ID:   s.random.ID(),
		Name: name,
		Ingredients: []model.RecipeIngredient{
			{ItemID: ingredientA, Quantity: 1},
			{ItemID: ingredientB, Quantity: 1},
		},
		ResultItemID: resultItemID,
	}
	s.recipes = append(s.recipes, recipe)

	if err := s.persist(ctx, repository.Recipes); err != nil {
		return model.CraftRecipe{}, err
	}
	s.logger.Info("recipe created", slog.String("recipe_id", recipe.ID), slog.String("name", name))
	return recipe, nil
}

// DeleteCraftRecipe removes a recipe
func (s *Store) DeleteCraftRecipe(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.recipes)
	s.recipes = filter(s.recipes, func(r model.CraftRecipe) bool { return r.ID != id })
	if len(s.recipes) == before {
		return false, nil
	}

	if err := s.persist(ctx, repository.Recipes); err != nil {
		return false, err
	}
	s.logger.Info("recipe deleted", slog.String("recipe_id", id))
	return true, nil
}

// Recipes returns every craft recipe
func (s *Store) Recipes() []model.CraftRecipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CraftRecipe{}, s.recipes...)
}
