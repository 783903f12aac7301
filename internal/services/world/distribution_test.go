package world

import (
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/testutil"
)

// Staging tests

func (s *StoreSuite) TestAddToStagingSumsQuantity() {
	s.store.AddToStaging("2", 2)
	s.store.AddToStaging("1", 1)
	s.store.AddToStaging("2", 3)

	s.Equal([]model.StagingItem{
		{ItemID: "2", Quantity: 5},
		{ItemID: "1", Quantity: 1},
	}, s.store.Staging())
}

func (s *StoreSuite) TestRemoveFromStaging() {
	s.store.AddToStaging("1", 1)
	s.store.AddToStaging("2", 1)

	s.store.RemoveFromStaging("1")
	s.Equal([]model.StagingItem{{ItemID: "2", Quantity: 1}}, s.store.Staging())

	s.store.RemoveFromStaging("missing")
	s.Len(s.store.Staging(), 1)
}

func (s *StoreSuite) TestReAddAfterRemoveReplacesQuantity() {
	s.store.AddToStaging("1", 1)
	s.store.RemoveFromStaging("1")
	s.store.AddToStaging("1", 5)

	s.Equal([]model.StagingItem{{ItemID: "1", Quantity: 5}}, s.store.Staging())
}

func (s *StoreSuite) TestClearStaging() {
	s.store.AddToStaging("1", 1)
	s.store.ClearStaging()
	s.Empty(s.store.Staging())
}

// Distribution tests

func (s *StoreSuite) TestDistributeScenario() {
	store := New(s.repo, s.clock, s.random, testutil.NopLogger(), DefaultConfig())
	s.Require().NoError(store.Load(s.ctx))
	before := store.LobbyItems("1")
	logBefore := len(store.EventLog(""))

	store.AddToStaging("2", 2)
	created, err := store.DistributeStagingToLobby(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(2, created)

	after := store.LobbyItems("1")
	s.Require().Len(after, len(before)+2)
	added := after[len(before):]
	s.Equal("Зелье здоровья", added[0].Item.Name)
	s.Equal("Зелье здоровья", added[1].Item.Name)
	s.NotEqual(added[0].ID, added[1].ID)

	s.Empty(store.Staging())

	log := store.EventLog("")
	s.Require().Len(log, logBefore+1)
	s.Contains(log[0].Message, "x2")
	s.Equal(model.LogInfo, log[0].Type)
	s.Equal("1", log[0].TableID)
}

func (s *StoreSuite) TestDistributeCreatesDistinctItems() {
	item := s.seedItem("Arrow", model.RarityCommon, 0.1)
	s.store.AddToStaging(item.ID, 3)

	created, err := s.store.DistributeStagingToLobby(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal(3, created)

	lobby := s.store.LobbyItems("2")
	s.Require().Len(lobby, 3)
	ids := map[string]bool{}
	for _, li := range lobby {
		s.Equal("2", li.TableID)
		s.Equal(item, li.Item)
		ids[li.ID] = true
	}
	s.Len(ids, 3)
	s.Empty(s.store.LobbyItems("1"))
	s.Empty(s.store.Staging())
}

func (s *StoreSuite) TestDistributeLogsOncePerItem() {
	a := s.seedItem("Arrow", model.RarityCommon, 0.1)
	b := s.seedItem("Bow", model.RarityRare, 1)
	s.store.AddToStaging(a.ID, 2)
	s.store.AddToStaging(b.ID, 1)

	_, err := s.store.DistributeStagingToLobby(s.ctx, "1")
	s.Require().NoError(err)

	log := s.store.EventLog("1")
	s.Require().Len(log, 2)
	s.Equal("Game master added to lobby: Bow (x1)", log[0].Message)
	s.Equal("Game master added to lobby: Arrow (x2)", log[1].Message)
}

func (s *StoreSuite) TestDistributeSkipsDeletedItems() {
	s.store.AddToStaging("missing", 2)

	created, err := s.store.DistributeStagingToLobby(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(0, created)
	s.Empty(s.store.LobbyItems("1"))
	s.Empty(s.store.Staging())
}

func (s *StoreSuite) TestDistributeEmptyStaging() {
	created, err := s.store.DistributeStagingToLobby(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(0, created)
}

func (s *StoreSuite) TestAddItemToLobby() {
	item := s.seedItem("Torch", model.RarityCommon, 1)

	ok, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 2)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.store.LobbyItems("1"), 2)
	s.Equal("Game master added to lobby: Torch (x2)", s.store.EventLog("1")[0].Message)
}

func (s *StoreSuite) TestAddItemToLobbyUnknownItem() {
	ok, err := s.store.AddItemToLobby(s.ctx, "missing", "1", 1)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(s.store.EventLog(""))
}

// Pickup tests

func (s *StoreSuite) TestPickupMovesItemToInventory() {
	item := s.seedItem("Torch", model.RarityCommon, 1)
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 1)
	s.Require().NoError(err)
	lobbyItem := s.store.LobbyItems("1")[0]

	ok, err := s.store.PickupItem(s.ctx, lobbyItem.ID, "u1", "alice")
	s.Require().NoError(err)
	s.True(ok)

	s.Empty(s.store.LobbyItems("1"))
	s.Equal([]model.InventoryItem{{Item: item, UserID: "u1", TableID: "1", Quantity: 1}}, s.store.Inventory("u1", "1"))

	entry := s.store.EventLog("1")[0]
	s.Equal("alice picked up: Torch", entry.Message)
	s.Equal(model.LogSuccess, entry.Type)
}

func (s *StoreSuite) TestPickupSameItemTwiceStacks() {
	item := s.seedItem("Torch", model.RarityCommon, 1)
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 2)
	s.Require().NoError(err)
	lobby := s.store.LobbyItems("1")

	for _, li := range lobby {
		ok, err := s.store.PickupItem(s.ctx, li.ID, "u1", "alice")
		s.Require().NoError(err)
		s.True(ok)
	}

	inv := s.store.Inventory("u1", "1")
	s.Require().Len(inv, 1)
	s.Equal(item.ID, inv[0].ID)
	s.Equal(2, inv[0].Quantity)
}

func (s *StoreSuite) TestPickupAlreadyTaken() {
	item := s.seedItem("Torch", model.RarityCommon, 1)
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "1", 1)
	s.Require().NoError(err)
	id := s.store.LobbyItems("1")[0].ID

	ok, err := s.store.PickupItem(s.ctx, id, "u1", "alice")
	s.Require().NoError(err)
	s.True(ok)
	logLen := len(s.store.EventLog(""))

	ok, err = s.store.PickupItem(s.ctx, id, "u2", "bob")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(s.store.Inventory("u2", "1"))
	s.Len(s.store.EventLog(""), logLen)
}

func (s *StoreSuite) TestPickupUsesLobbyItemTable() {
	item := s.seedItem("Torch", model.RarityCommon, 1)
	_, err := s.store.AddItemToLobby(s.ctx, item.ID, "2", 1)
	s.Require().NoError(err)

	_, err = s.store.PickupItem(s.ctx, s.store.LobbyItems("2")[0].ID, "u1", "alice")
	s.Require().NoError(err)

	s.Empty(s.store.Inventory("u1", "1"))
	s.Len(s.store.Inventory("u1", "2"), 1)
}

func (s *StoreSuite) TestInventoriesAreScopedByUserAndTable() {
	item := s.seedItem("Torch", model.RarityCommon, 1)
	s.giveItem(item, "u1", "alice", "1")
	s.giveItem(item, "u2", "bob", "1")
	s.giveItem(item, "u1", "alice", "2")

	s.Equal(1, s.store.Inventory("u1", "1")[0].Quantity)
	s.Equal(1, s.store.Inventory("u2", "1")[0].Quantity)
	s.Equal(1, s.store.Inventory("u1", "2")[0].Quantity)
}

func (s *StoreSuite) TestInventorySummary() {
	sword := s.seedItem("Sword", model.RarityRare, 3.5)
	potion := s.seedItem("Potion", model.RarityCommon, 0.5)
	crown := s.seedItem("Crown", model.RarityLegendary, 2)
	s.giveItem(sword, "u1", "alice", "1")
	s.giveItem(potion, "u1", "alice", "1")
	s.giveItem(potion, "u1", "alice", "1")
	s.giveItem(crown, "u1", "alice", "1")
	s.giveItem(crown, "u1", "alice", "2")

	s.Equal(model.InventorySummary{
		TotalQuantity: 4,
		UniqueItems:   3,
		RareOrBetter:  2,
		TotalWeight:   6.5,
	}, s.store.InventorySummary("u1", "1"))

	s.Equal(model.InventorySummary{}, s.store.InventorySummary("u9", "1"))
}
