package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// AddToStaging queues quantity copies of an item, summing with any queued entry
func (s *Store) AddToStaging(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staging {
		if s.staging[i].ItemID == itemID {
			s.staging[i].Quantity += quantity
			return
		}
	}
	s.staging = append(s.staging, model.StagingItem{ItemID: itemID, Quantity: quantity})
}

// RemoveFromStaging drops the queued entry for an item
func (s *Store) RemoveFromStaging(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging = filter(s.staging, func(si model.StagingItem) bool { return si.ItemID != itemID })
}

// ClearStaging empties the staging buffer
func (s *Store) ClearStaging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging = nil
}

// Staging returns the queued entries
func (s *Store) Staging() []model.StagingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.StagingItem{}, s.staging...)
}

// AddItemToLobby places quantity copies of a catalog item in a table's lobby
func (s *Store) AddItemToLobby(ctx context.Context, itemID, tableID string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addToLobby(itemID, tableID, quantity); !ok {
		return false, nil
	}
	if err := s.persist(ctx, repository.LobbyItems, repository.EventLog); err != nil {
		return false, err
	}
	return true, nil
}

// DistributeStagingToLobby moves every staged entry into a table's lobby and
// clears the staging buffer. It returns the number of lobby items created.
// Entries whose item has left the catalog are dropped.
func (s *Store) DistributeStagingToLobby(ctx context.Context, tableID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, si := range s.staging {
		n, ok := s.addToLobby(si.ItemID, tableID, si.Quantity)
		if !ok {
			s.logger.Warn("staged item missing from catalog", slog.String("item_id", si.ItemID))
			continue
		}
		created += n
	}
	s.staging = nil

	if err := s.persist(ctx, repository.LobbyItems, repository.EventLog); err != nil {
		return 0, err
	}
	s.logger.Info("staging distributed", slog.String("table_id", tableID), slog.Int("lobby_items", created))
	return created, nil
}

// addToLobby expands one catalog item into lobby copies with distinct ids and
// logs a summary entry. Callers hold s.mu and persist.
func (s *Store) addToLobby(itemID, tableID string, quantity int) (int, bool) {
	i := s.itemIndex(itemID)
	if i < 0 {
		return 0, false
	}
	item := s.items[i]

	for n := 0; n < quantity; n++ {
		s.lobbyItems = append(s.lobbyItems, model.LobbyItem{
			ID:      s.random.ID(),
			TableID: tableID,
			Item:    item,
		})
	}
	s.appendLog(fmt.Sprintf("Game master added to lobby: %s (x%d)", item.Name, quantity), model.LogInfo, tableID)
	return max(quantity, 0), true
}

// PickupItem moves one lobby item into the user's inventory at that table.
// It reports false when the lobby item is already gone.
func (s *Store) PickupItem(ctx context.Context, lobbyItemID, userID, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var picked *model.LobbyItem
	for i := range s.lobbyItems {
		if s.lobbyItems[i].ID == lobbyItemID {
			li := s.lobbyItems[i]
			picked = &li
			break
		}
	}
	if picked == nil {
		return false, nil
	}

	s.lobbyItems = filter(s.lobbyItems, func(li model.LobbyItem) bool { return li.ID != lobbyItemID })
	s.creditInventory(picked.Item, userID, picked.TableID)
	s.appendLog(fmt.Sprintf("%s picked up: %s", username, picked.Item.Name), model.LogSuccess, picked.TableID)

	if err := s.persist(ctx, repository.LobbyItems, repository.Inventory, repository.EventLog); err != nil {
		return false, err
	}
	s.logger.Info("item picked up",
		slog.String("lobby_item_id", lobbyItemID),
		slog.String("user_id", userID),
		slog.String("table_id", picked.TableID),
	)
	return true, nil
}

// LobbyItems returns the unclaimed items at a table
func (s *Store) LobbyItems(tableID string) []model.LobbyItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.lobbyItems, func(li model.LobbyItem) bool { return li.TableID == tableID })
}

// Inventory returns a user's stacks at a table
func (s *Store) Inventory(userID, tableID string) []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventoryFor(userID, tableID)
}

// InventorySummary totals a user's inventory at a table
func (s *Store) InventorySummary(userID, tableID string) model.InventorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary model.InventorySummary
	for _, inv := range s.inventoryFor(userID, tableID) {
		summary.TotalQuantity += inv.Quantity
		summary.UniqueItems++
		if inv.Rarity.AtLeast(model.RarityRare) {
			summary.RareOrBetter++
		}
		summary.TotalWeight += inv.Weight * float64(inv.Quantity)
	}
	return summary
}

func (s *Store) inventoryFor(userID, tableID string) []model.InventoryItem {
	return filter(s.inventory, func(inv model.InventoryItem) bool {
		return inv.UserID == userID && inv.TableID == tableID
	})
}

// inventoryIndex finds the stack keyed by (itemID, userID, tableID)
func (s *Store) inventoryIndex(itemID, userID, tableID string) int {
	for i := range s.inventory {
		inv := s.inventory[i]
		if inv.ID == itemID && inv.UserID == userID && inv.TableID == tableID {
			return i
		}
	}
	return -1
}

// creditInventory adds one unit of item to the user's stack, creating it
// from the snapshot when absent. Callers hold s.mu.
func (s *Store) creditInventory(item model.Item, userID, tableID string) {
	if i := s.inventoryIndex(item.ID, userID, tableID); i >= 0 {
		s.inventory[i].Quantity++
		return
	}
	s.inventory = append(s.inventory, model.InventoryItem{
		Item:     item,
		UserID:   userID,
		TableID:  tableID,
		Quantity: 1,
	})
}
