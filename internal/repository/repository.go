package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/storage"
)

// Collection names one snapshot key in storage
type Collection string

const (
	Items           Collection = "foundry_items"
	Recipes         Collection = "foundry_recipes"
	LobbyItems      Collection = "foundry_lobby_items"
	TablePasswords  Collection = "foundry_table_passwords"
	ActivePlayers   Collection = "foundry_active_players"
	AuctionListings Collection = "foundry_auction_listings"
	GlobalChat      Collection = "foundry_global_chat"
	ChatMessages    Collection = "foundry_chat_messages"
	Inventory       Collection = "foundry_inventory"
	EventLog        Collection = "foundry_event_log"
	Users           Collection = "foundry_users"
	CurrentUser     Collection = "foundry_user"
)

// Repository loads and saves whole collections as JSON snapshots
type Repository struct {
	storage storage.Storage
}

// New creates a repository over the given storage
func New(s storage.Storage) *Repository {
	return &Repository{storage: s}
}

// Load decodes the snapshot for collection into dst.
// It reports false, leaving dst untouched, when no snapshot exists.
func (r *Repository) Load(ctx context.Context, collection Collection, dst any) (bool, error) {
	data, err := r.storage.Get(ctx, string(collection))
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", collection, err)
	}
	return true, nil
}

// Save replaces the snapshot for collection with v
func (r *Repository) Save(ctx context.Context, collection Collection, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := r.storage.Set(ctx, string(collection), data); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Delete removes the snapshot for collection
func (r *Repository) Delete(ctx context.Context, collection Collection) error {
	if err := r.storage.Delete(ctx, string(collection)); err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}
