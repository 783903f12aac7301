package world

import (
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

func (s *StoreSuite) TestCreateItem() {
	s.random.QueueID("lamp")

	item, err := s.store.CreateItem(s.ctx, model.ItemFields{
		Name:        "Lamp",
		NameColor:   "#fff",
		Description: "Bright",
		Rarity:      model.RarityUncommon,
		Icon:        "🪔",
		Weight:      1.0,
		Category:    "Tools",
	})
	s.Require().NoError(err)
	s.Equal(model.Item{
		ID:          "lamp",
		Name:        "Lamp",
		NameColor:   "#fff",
		Description: "Bright",
		Rarity:      model.RarityUncommon,
		Icon:        "🪔",
		Weight:      1.0,
		Category:    "Tools",
	}, item)

	got, ok := s.store.Item("lamp")
	s.True(ok)
	s.Equal(item, got)

	var saved []model.Item
	_, err = s.repo.Load(s.ctx, repository.Items, &saved)
	s.Require().NoError(err)
	s.Equal([]model.Item{item}, saved)
}

func (s *StoreSuite) TestCreateItemIDsAreUnique() {
	a := s.seedItem("A", model.RarityCommon, 1)
	b := s.seedItem("B", model.RarityCommon, 1)
	s.NotEqual(a.ID, b.ID)
}

func (s *StoreSuite) TestUpdateItemMergesFields() {
	item := s.seedItem("Lamp", model.RarityCommon, 1)
	name := "Oil lamp"
	weight := 2.5

	ok, err := s.store.UpdateItem(s.ctx, item.ID, model.ItemPatch{Name: &name, Weight: &weight})
	s.Require().NoError(err)
	s.True(ok)

	got, _ := s.store.Item(item.ID)
	s.Equal("Oil lamp", got.Name)
	s.Equal(2.5, got.Weight)
	s.Equal(model.RarityCommon, got.Rarity)
	s.Equal("*", got.Icon)
}

func (s *StoreSuite) TestUpdateItemMissing() {
	name := "Ghost"
	ok, err := s.store.UpdateItem(s.ctx, "missing", model.ItemPatch{Name: &name})
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(s.store.Items())
}

func (s *StoreSuite) TestUpdateItemDoesNotTouchPlacedCopies() {
	item := s.seedItem("Lamp", model.RarityCommon, 1)
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 1)
	s.Require().NoError(err)

	name := "Renamed"
	_, err = s.store.UpdateItem(s.ctx, item.ID, model.ItemPatch{Name: &name})
	s.Require().NoError(err)

	s.Equal("Lamp", s.store.LobbyItems("1")[0].Item.Name)
}

func (s *StoreSuite) TestDeleteItemPurgesStaging() {
	keep := s.seedItem("Keep", model.RarityCommon, 1)
	drop := s.seedItem("Drop", model.RarityCommon, 1)
	s.store.AddToStaging(keep.ID, 1)
	s.store.AddToStaging(drop.ID, 4)

	ok, err := s.store.DeleteItem(s.ctx, drop.ID)
	s.Require().NoError(err)
	s.True(ok)

	s.Equal([]model.StagingItem{{ItemID: keep.ID, Quantity: 1}}, s.store.Staging())
	_, found := s.store.Item(drop.ID)
	s.False(found)
}

func (s *StoreSuite) TestDeleteItemDoesNotCascade() {
	item := s.seedItem("Lamp", model.RarityCommon, 1)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 1)
	s.Require().NoError(err)
	_, err = s.store.CreateCraftRecipe(s.ctx, "Double lamp", item.ID, "other", item.ID)
	s.Require().NoError(err)

	_, err = s.store.DeleteItem(s.ctx, item.ID)
	s.Require().NoError(err)

	s.Len(s.store.LobbyItems("1"), 1)
	s.Len(s.store.Inventory("u1", "1"), 1)
	s.Len(s.store.Recipes(), 1)
}

func (s *StoreSuite) TestDeleteItemMissing() {
	ok, err := s.store.DeleteItem(s.ctx, "missing")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestItemsReturnsCopy() {
	s.seedItem("Lamp", model.RarityCommon, 1)
	items := s.store.Items()
	items[0].Name = "changed"
	s.Equal("Lamp", s.store.Items()[0].Name)
}

// Recipe tests

func (s *StoreSuite) TestCreateCraftRecipe() {
	s.random.QueueID("recipe-1")

	recipe, err := s.store.CreateCraftRecipe(s.ctx, "Fire sword", "1", "2", "3")
	s.Require().NoError(err)
	s.Equal(model.CraftRecipe{
		ID:   "recipe-1",
		Name: "Fire sword",
		Ingredients: []model.RecipeIngredient{
			{ItemID: "1", Quantity: 1},
			{ItemID: "2", Quantity: 1},
		},
		ResultItemID: "3",
	}, recipe)

	var saved []model.CraftRecipe
	_, err = s.repo.Load(s.ctx, repository.Recipes, &saved)
	s.Require().NoError(err)
	s.Equal([]model.CraftRecipe{recipe}, saved)
}

func (s *StoreSuite) TestDeleteCraftRecipe() {
	recipe, err := s.store.CreateCraftRecipe(s.ctx, "Fire sword", "1", "2", "3")
	s.Require().NoError(err)

	ok, err := s.store.DeleteCraftRecipe(s.ctx, recipe.ID)
	s.Require().NoError(err)
	s.True(ok)
	s.Empty(s.store.Recipes())

	ok, err = s.store.DeleteCraftRecipe(s.ctx, recipe.ID)
	s.Require().NoError(err)
	s.False(ok)
}
