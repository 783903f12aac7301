package world

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/foundry/internal/dependencies/clock"
	"github.com/mcoot/foundry/internal/dependencies/random"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// Config holds configuration for the world store
type Config struct {
	// Tables lists the rooms players can join
	Tables []model.Table

	// SeedDefaults fills the catalog, lobby and event log on first start
	SeedDefaults bool
}

// DefaultConfig returns default world configuration
func DefaultConfig() Config {
	return Config{
		Tables:       DefaultTables(),
		SeedDefaults: true,
	}
}

// Store owns every game entity. Each operation holds the store lock from
// the first read through the final snapshot save.
//
// Two stores over the same storage do not see each other's changes after
// Load; whichever saves a collection last wins.
type Store struct {
	repo   *repository.Repository
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
	cfg    Config

	mu              sync.Mutex
	items           []model.Item
	recipes         []model.CraftRecipe
	lobbyItems      []model.LobbyItem
	inventory       []model.InventoryItem
	staging         []model.StagingItem
	activePlayers   []model.ActivePlayer
	auctionListings []model.AuctionListing
	tablePasswords  model.TablePasswords
	chatMessages    []model.ChatMessage
	globalChat      []model.GlobalChatMessage
	eventLog        []model.LogEntry
}

// New creates a world store. Call Load before use.
func New(
	repo *repository.Repository,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Store {
	if cfg.Tables == nil {
		cfg.Tables = DefaultTables()
	}
	return &Store{
		repo:           repo,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "world-store")),
		cfg:            cfg,
		tablePasswords: model.TablePasswords{},
	}
}

// Load replaces in-memory state with the saved snapshots
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.recipes = nil
	s.lobbyItems = nil
	s.inventory = nil
	s.staging = nil
	s.activePlayers = nil
	s.auctionListings = nil
	s.tablePasswords = model.TablePasswords{}
	s.chatMessages = nil
	s.globalChat = nil
	s.eventLog = nil

	var seeded []repository.Collection
	for _, c := range []repository.Collection{
		repository.Items,
		repository.Recipes,
		repository.LobbyItems,
		repository.Inventory,
		repository.ActivePlayers,
		repository.AuctionListings,
		repository.TablePasswords,
		repository.ChatMessages,
		repository.GlobalChat,
		repository.EventLog,
	} {
		found, err := s.repo.Load(ctx, c, s.target(c))
		if err != nil {
			return err
		}
		if !found && s.cfg.SeedDefaults && s.seed(c) {
			seeded = append(seeded, c)
		}
	}
	if s.tablePasswords == nil {
		s.tablePasswords = model.TablePasswords{}
	}

	if err := s.persist(ctx, seeded...); err != nil {
		return err
	}

	s.logger.Info("world loaded",
		slog.Int("items", len(s.items)),
		slog.Int("lobby_items", len(s.lobbyItems)),
		slog.Int("listings", len(s.auctionListings)),
		slog.Int("seeded", len(seeded)),
	)
	return nil
}

// seed installs defaults for a collection missing from storage and reports
// whether anything was seeded
func (s *Store) seed(c repository.Collection) bool {
	switch c {
	case repository.Items:
		s.items = DefaultItems()
	case repository.LobbyItems:
		s.lobbyItems = DefaultLobbyItems()
	case repository.EventLog:
		s.eventLog = []model.LogEntry{{
			ID:        s.random.ID(),
			Timestamp: s.clock.Now(),
			Message:   welcomeMessage,
			Type:      model.LogInfo,
		}}
	default:
		return false
	}
	return true
}

// target returns the field a collection decodes into
func (s *Store) target(c repository.Collection) any {
	switch c {
	case repository.Items:
		return &s.items
	case repository.Recipes:
		return &s.recipes
	case repository.LobbyItems:
		return &s.lobbyItems
	case repository.Inventory:
		return &s.inventory
	case repository.ActivePlayers:
		return &s.activePlayers
	case repository.AuctionListings:
		return &s.auctionListings
	case repository.TablePasswords:
		return &s.tablePasswords
	case repository.ChatMessages:
		return &s.chatMessages
	case repository.GlobalChat:
		return &s.globalChat
	case repository.EventLog:
		return &s.eventLog
	}
	panic(fmt.Sprintf("world: unknown collection %q", c))
}

// persist writes the snapshot of each collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, collections ...repository.Collection) error {
	for _, c := range collections {
		var v any
		switch c {
		case repository.Items:
			v = nonNil(s.items)
		case repository.Recipes:
			v = nonNil(s.recipes)
		case repository.LobbyItems:
			v = nonNil(s.lobbyItems)
		case repository.Inventory:
			v = nonNil(s.inventory)
		case repository.ActivePlayers:
			v = nonNil(s.activePlayers)
		case repository.AuctionListings:
			v = nonNil(s.auctionListings)
		case repository.TablePasswords:
			v = s.tablePasswords
		case repository.ChatMessages:
			v = nonNil(s.chatMessages)
		case repository.GlobalChat:
			v = nonNil(s.globalChat)
		case repository.EventLog:
			v = nonNil(s.eventLog)
		default:
			return fmt.Errorf("world: unknown collection %q", c)
		}
		if err := s.repo.Save(ctx, c, v); err != nil {
			s.logger.Error("failed to save snapshot", slog.String("collection", string(c)), slog.Any("error", err))
			return err
		}
	}
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// filter returns a copy of the elements matching keep
func filter[T any](v []T, keep func(T) bool) []T {
	out := make([]T, 0, len(v))
	for _, e := range v {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
