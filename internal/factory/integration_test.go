package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/foundry/internal/model"
	redisstorage "github.com/mcoot/foundry/internal/storage/redis"
	sqlitestorage "github.com/mcoot/foundry/internal/storage/sqlite"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a full session from login through trading
func (s *IntegrationSuite) TestCompleteSessionFlow() {
	// Step 1: the game master logs in and stages potions
	ok, err := s.app.Identity.Login(s.ctx, "admin", "1111")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.app.World.AddToStaging("2", 2)
	created, err := s.app.World.DistributeStagingToLobby(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(2, created)

	// Step 2: a new player registers, logs in and joins the table
	user, err := s.app.Identity.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	ok, err = s.app.Identity.Login(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().NoError(s.app.World.JoinTable(s.ctx, user.ID, user.Username, user.Role, "1"))

	// Step 3: she picks up every potion
	for _, li := range s.app.World.LobbyItems("1") {
		if li.Item.ID != "2" {
			continue
		}
		ok, err := s.app.World.PickupItem(s.ctx, li.ID, user.ID, user.Username)
		s.Require().NoError(err)
		s.Require().True(ok)
	}
	inv := s.app.World.Inventory(user.ID, "1")
	s.Require().Len(inv, 1)
	s.Equal(3, inv[0].Quantity)

	// Step 4: she lists one and player1 buys it
	ok, err = s.app.World.ListItemOnAuction(s.ctx, user.ID, user.Username, "2", 15, "1")
	s.Require().NoError(err)
	s.Require().True(ok)
	listing := s.app.World.AuctionListings("1")[0]

	ok, err = s.app.World.BuyAuctionItem(s.ctx, "2", "player1", listing.ID)
	s.Require().NoError(err)
	s.True(ok)

	s.Equal(2, s.app.World.Inventory(user.ID, "1")[0].Quantity)
	s.Equal(1, s.app.World.Inventory("2", "1")[0].Quantity)

	// Step 5: a fresh session over the same storage sees everything
	other := s.app.Reload()
	current, ok := other.Identity.CurrentUser()
	s.True(ok)
	s.Equal("alice", current.Username)
	s.Equal(s.app.World.Inventory(user.ID, "1"), other.World.Inventory(user.ID, "1"))
	s.Equal(s.app.World.EventLog(""), other.World.EventLog(""))
	s.Len(other.Identity.Users(), 4)
}

// Test: two sessions writing the same collection, the later save wins
func (s *IntegrationSuite) TestSessionsOverwriteEachOther() {
	other := s.app.Reload()

	_, err := s.app.World.CreateItem(s.ctx, model.ItemFields{Name: "Lantern"})
	s.Require().NoError(err)
	_, err = other.World.CreateItem(s.ctx, model.ItemFields{Name: "Rope"})
	s.Require().NoError(err)

	third := s.app.Reload()
	names := []string{}
	for _, it := range third.World.Items() {
		names = append(names, it.Name)
	}
	s.Contains(names, "Rope")
	s.NotContains(names, "Lantern")
}

func (s *IntegrationSuite) TestNewWithMemoryStorage() {
	app, err := New(s.ctx, Config{})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.Len(app.World.Items(), 3)
	s.Len(app.Identity.Users(), 3)
}

func (s *IntegrationSuite) TestNewWithRedisStorage() {
	mini := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	app, err := New(s.ctx, Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.True(mini.Exists("foundry:foundry_items"))
	s.True(mini.Exists("foundry:foundry_users"))
}

func (s *IntegrationSuite) TestNewWithSQLiteStorage() {
	cfg := sqlitestorage.Config{Path: filepath.Join(s.T().TempDir(), "foundry.db")}

	app, err := New(s.ctx, Config{StorageType: StorageTypeSQLite, SQLiteConfig: &cfg})
	s.Require().NoError(err)
	_, err = app.World.CreateItem(s.ctx, model.ItemFields{Name: "Lantern"})
	s.Require().NoError(err)
	s.Require().NoError(app.Close())

	reopened, err := New(s.ctx, Config{StorageType: StorageTypeSQLite, SQLiteConfig: &cfg})
	s.Require().NoError(err)
	defer func() { _ = reopened.Close() }()
	s.Len(reopened.World.Items(), 4)
}

func (s *IntegrationSuite) TestNewRejectsMissingBackendConfig() {
	_, err := New(s.ctx, Config{StorageType: StorageTypeRedis})
	s.Error(err)

	_, err = New(s.ctx, Config{StorageType: StorageTypeSQLite})
	s.Error(err)

	_, err = New(s.ctx, Config{StorageType: "etcd"})
	s.Error(err)
}
