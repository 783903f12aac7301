package world

import (
	"time"

	"github.com/mcoot/foundry/internal/model"
)

func (s *StoreSuite) TestListItemOnAuction() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	s.random.QueueID("listing-1")

	ok, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	s.True(ok)

	s.Empty(s.store.Inventory("u1", "1"))
	s.Equal([]model.AuctionListing{{
		ID:         "listing-1",
		SellerID:   "u1",
		SellerName: "alice",
		Item:       item,
		Price:      50,
		TableID:    "1",
		ListedAt:   s.clock.Now(),
	}}, s.store.AuctionListings("1"))

	entry := s.store.EventLog("1")[0]
	s.Equal("alice listed on auction: Sword for 50 gold", entry.Message)
	s.Equal(model.LogInfo, entry.Type)
}

func (s *StoreSuite) TestListItemDecrementsStack() {
	item := s.seedItem("Arrow", model.RarityCommon, 0.1)
	s.giveItem(item, "u1", "alice", "1")
	s.giveItem(item, "u1", "alice", "1")

	ok, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 5, "1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, s.store.Inventory("u1", "1")[0].Quantity)
}

func (s *StoreSuite) TestListItemNotHeld() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "2")
	logLen := len(s.store.EventLog(""))

	ok, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.store.ListItemOnAuction(s.ctx, "u2", "bob", item.ID, 50, "2")
	s.Require().NoError(err)
	s.False(ok)

	s.Empty(s.store.AuctionListings("1"))
	s.Empty(s.store.AuctionListings("2"))
	s.Len(s.store.EventLog(""), logLen)
}

func (s *StoreSuite) TestListingKeepsSnapshot() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)

	name := "Renamed"
	_, err = s.store.UpdateItem(s.ctx, item.ID, model.ItemPatch{Name: &name})
	s.Require().NoError(err)
	_, err = s.store.DeleteItem(s.ctx, item.ID)
	s.Require().NoError(err)

	s.Equal("Sword", s.store.AuctionListings("1")[0].Item.Name)
}

func (s *StoreSuite) TestBuyAuctionItem() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	listing := s.store.AuctionListings("1")[0]

	s.clock.Advance(time.Minute)
	ok, err := s.store.BuyAuctionItem(s.ctx, "u2", "bob", listing.ID)
	s.Require().NoError(err)
	s.True(ok)

	s.Empty(s.store.AuctionListings("1"))
	s.Equal([]model.InventoryItem{{Item: item, UserID: "u2", TableID: "1", Quantity: 1}}, s.store.Inventory("u2", "1"))
	s.Empty(s.store.Inventory("u1", "1"))

	entry := s.store.EventLog("1")[0]
	s.Equal("bob bought Sword from alice for 50 gold", entry.Message)
	s.Equal(model.LogSuccess, entry.Type)
}

func (s *StoreSuite) TestBuyStacksWithExistingItem() {
	item := s.seedItem("Arrow", model.RarityCommon, 0.1)
	s.giveItem(item, "u1", "alice", "1")
	s.giveItem(item, "u2", "bob", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 1, "1")
	s.Require().NoError(err)

	ok, err := s.store.BuyAuctionItem(s.ctx, "u2", "bob", s.store.AuctionListings("1")[0].ID)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(2, s.store.Inventory("u2", "1")[0].Quantity)
}

func (s *StoreSuite) TestBuyOwnListingRejected() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	listing := s.store.AuctionListings("1")[0]

	ok, err := s.store.BuyAuctionItem(s.ctx, "u1", "alice", listing.ID)
	s.Require().NoError(err)
	s.False(ok)
	s.Len(s.store.AuctionListings("1"), 1)
	s.Empty(s.store.Inventory("u1", "1"))
}

func (s *StoreSuite) TestBuyMissingListing() {
	ok, err := s.store.BuyAuctionItem(s.ctx, "u2", "bob", "missing")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestBuyTwiceOnlyFirstSucceeds() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	id := s.store.AuctionListings("1")[0].ID

	ok, err := s.store.BuyAuctionItem(s.ctx, "u2", "bob", id)
	s.Require().NoError(err)
	s.True(ok)
	ok, err = s.store.BuyAuctionItem(s.ctx, "u3", "carol", id)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(s.store.Inventory("u3", "1"))
}

func (s *StoreSuite) TestRemoveAuctionListing() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	listing := s.store.AuctionListings("1")[0]

	ok, err := s.store.RemoveAuctionListing(s.ctx, listing.ID, "u1")
	s.Require().NoError(err)
	s.True(ok)

	s.Empty(s.store.AuctionListings("1"))
	s.Equal(1, s.store.Inventory("u1", "1")[0].Quantity)
	s.Equal("alice withdrew from auction: Sword", s.store.EventLog("1")[0].Message)
}

func (s *StoreSuite) TestRemoveAuctionListingByOtherUser() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 50, "1")
	s.Require().NoError(err)
	listing := s.store.AuctionListings("1")[0]

	ok, err := s.store.RemoveAuctionListing(s.ctx, listing.ID, "u2")
	s.Require().NoError(err)
	s.False(ok)
	s.Len(s.store.AuctionListings("1"), 1)

	ok, err = s.store.RemoveAuctionListing(s.ctx, "missing", "u1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestAuctionListingsScopedByTable() {
	item := s.seedItem("Sword", model.RarityRare, 3)
	s.giveItem(item, "u1", "alice", "1")
	s.giveItem(item, "u1", "alice", "2")
	_, err := s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 10, "1")
	s.Require().NoError(err)
	_, err = s.store.ListItemOnAuction(s.ctx, "u1", "alice", item.ID, 20, "2")
	s.Require().NoError(err)

	s.Equal(10, s.store.AuctionListings("1")[0].Price)
	s.Equal(20, s.store.AuctionListings("2")[0].Price)

	listing, ok := s.store.AuctionListing(s.store.AuctionListings("2")[0].ID)
	s.True(ok)
	s.Equal("2", listing.TableID)
}
