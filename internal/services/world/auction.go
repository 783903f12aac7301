package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// ListItemOnAuction moves one unit of the seller's item into a new listing.
// It reports false when the seller holds none of the item at that table.
// Price is taken as given.
func (s *Store) ListItemOnAuction(ctx context.Context, userID, username, itemID string, price int, tableID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.inventoryIndex(itemID, userID, tableID)
	if i < 0 || s.inventory[i].Quantity < 1 {
		return false, nil
	}
	item := s.inventory[i].Item

	s.inventory[i].Quantity--
	if s.inventory[i].Quantity == 0 {
		s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
	}

	listing := model.AuctionListing{
		ID:         s.random.ID(),
		SellerID:   userID,
		SellerName: username,
		Item:       item,
		Price:      price,
		TableID:    tableID,
		ListedAt:   s.clock.Now(),
	}
	s.auctionListings = append(s.auctionListings, listing)
	s.appendLog(fmt.Sprintf("%s listed on auction: %s for %d gold", username, item.Name, price), model.LogInfo, tableID)

	if err := s.persist(ctx, repository.Inventory, repository.AuctionListings, repository.EventLog); err != nil {
		return false, err
	}
	s.logger.Info("item listed",
		slog.String("listing_id", listing.ID),
		slog.String("seller_id", userID),
		slog.Int("price", price),
	)
	return true, nil
}

// BuyAuctionItem transfers a listing's item to the buyer. It reports false
// when the listing is gone or the buyer is the seller. No currency changes hands.
func (s *Store) BuyAuctionItem(ctx context.Context, buyerID, buyerName, listingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.listingIndex(listingID)
	if i < 0 {
		return false, nil
	}
	listing := s.auctionListings[i]
	if listing.SellerID == buyerID {
		return false, nil
	}

	s.auctionListings = append(s.auctionListings[:i], s.auctionListings[i+1:]...)
	s.creditInventory(listing.Item, buyerID, listing.TableID)
	s.appendLog(
		fmt.Sprintf("%s bought %s from %s for %d gold", buyerName, listing.Item.Name, listing.SellerName, listing.Price),
		model.LogSuccess,
		listing.TableID,
	)

	if err := s.persist(ctx, repository.AuctionListings, repository.Inventory, repository.EventLog); err != nil {
		return false, err
	}
	s.logger.Info("listing bought", slog.String("listing_id", listingID), slog.String("buyer_id", buyerID))
	return true, nil
}

// RemoveAuctionListing withdraws a listing and returns the item to its seller.
// It reports false unless the listing exists and belongs to userID.
func (s *Store) RemoveAuctionListing(ctx context.Context, listingID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.listingIndex(listingID)
	if i < 0 || s.auctionListings[i].SellerID != userID {
		return false, nil
	}
	listing := s.auctionListings[i]

	s.auctionListings = append(s.auctionListings[:i], s.auctionListings[i+1:]...)
	s.creditInventory(listing.Item, userID, listing.TableID)
	s.appendLog(fmt.Sprintf("%s withdrew from auction: %s", listing.SellerName, listing.Item.Name), model.LogInfo, listing.TableID)

	if err := s.persist(ctx, repository.AuctionListings, repository.Inventory, repository.EventLog); err != nil {
		return false, err
	}
	s.logger.Info("listing withdrawn", slog.String("listing_id", listingID))
	return true, nil
}

// AuctionListings returns the open listings at a table
func (s *Store) AuctionListings(tableID string) []model.AuctionListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.auctionListings, func(l model.AuctionListing) bool { return l.TableID == tableID })
}

// AuctionListing returns one listing by id
func (s *Store) AuctionListing(id string) (model.AuctionListing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.listingIndex(id)
	if i < 0 {
		return model.AuctionListing{}, false
	}
	return s.auctionListings[i], true
}

func (s *Store) listingIndex(id string) int {
	for i := range s.auctionListings {
		if s.auctionListings[i].ID == id {
			return i
		}
	}
	return -1
}
