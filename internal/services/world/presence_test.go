package world

import (
	"time"

	"github.com/mcoot/foundry/internal/model"
)

func (s *StoreSuite) TestJoinTable() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))

	s.Equal([]model.ActivePlayer{{
		UserID:   "u1",
		Username: "alice",
		Role:     model.RolePlayer,
		TableID:  "1",
		JoinedAt: s.clock.Now(),
	}}, s.store.ActivePlayers("1"))

	entry := s.store.EventLog("1")[0]
	s.Equal("alice joined the game", entry.Message)
	s.Equal(model.LogInfo, entry.Type)
}

func (s *StoreSuite) TestJoinAnotherTableMovesPlayer() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "2"))

	s.Empty(s.store.ActivePlayers("1"))
	players := s.store.ActivePlayers("2")
	s.Require().Len(players, 1)
	s.Equal(s.clock.Now(), players[0].JoinedAt)
}

func (s *StoreSuite) TestRejoinSameTableKeepsSingleRecord() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))
	s.Len(s.store.ActivePlayers("1"), 1)
}

func (s *StoreSuite) TestLeaveTable() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))

	ok, err := s.store.LeaveTable(s.ctx, "u1", "1")
	s.Require().NoError(err)
	s.True(ok)
	s.Empty(s.store.ActivePlayers("1"))

	entry := s.store.EventLog("1")[0]
	s.Equal("alice left the game", entry.Message)
	s.Equal(model.LogWarning, entry.Type)
}

func (s *StoreSuite) TestLeaveWrongTable() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))

	ok, err := s.store.LeaveTable(s.ctx, "u1", "2")
	s.Require().NoError(err)
	s.False(ok)
	s.Len(s.store.ActivePlayers("1"), 1)
}

func (s *StoreSuite) TestKickPlayer() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))

	ok, err := s.store.KickPlayer(s.ctx, "u1", "1")
	s.Require().NoError(err)
	s.True(ok)
	s.Empty(s.store.ActivePlayers("1"))
	s.Equal("alice was kicked from the game", s.store.EventLog("1")[0].Message)

	// Kicked players may come straight back
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))
	s.Len(s.store.ActivePlayers("1"), 1)
}

func (s *StoreSuite) TestKickAbsentPlayer() {
	ok, err := s.store.KickPlayer(s.ctx, "u1", "1")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(s.store.EventLog(""))
}

func (s *StoreSuite) TestTablesCountPlayers() {
	s.Require().NoError(s.store.JoinTable(s.ctx, "u1", "alice", model.RolePlayer, "1"))
	s.Require().NoError(s.store.JoinTable(s.ctx, "u2", "bob", model.RolePlayer, "1"))
	s.Require().NoError(s.store.JoinTable(s.ctx, "u3", "carol", model.RoleAdmin, "2"))

	tables := s.store.Tables()
	s.Require().Len(tables, 2)
	s.Equal("Сфера", tables[0].Name)
	s.Equal(2, tables[0].Players)
	s.Equal(1, tables[1].Players)

	table, ok := s.store.Table("2")
	s.True(ok)
	s.Equal("2 Стол", table.Name)

	_, ok = s.store.Table("missing")
	s.False(ok)
}

func (s *StoreSuite) TestConfiguredTables() {
	store := s.newStore(Config{Tables: []model.Table{{ID: "crypt", Name: "Crypt", MaxPlayers: 4}}})
	tables := store.Tables()
	s.Require().Len(tables, 1)
	s.Equal("crypt", tables[0].ID)
	s.Equal(4, tables[0].MaxPlayers)
}

// Table password tests

func (s *StoreSuite) TestOpenTableAcceptsAnyPassword() {
	s.True(s.store.CheckTablePassword("1", ""))
	s.True(s.store.CheckTablePassword("1", "anything"))
	_, ok := s.store.TablePassword("1")
	s.False(ok)
}

func (s *StoreSuite) TestSetTablePassword() {
	s.Require().NoError(s.store.SetTablePassword(s.ctx, "1", "secret"))

	s.True(s.store.CheckTablePassword("1", "secret"))
	s.False(s.store.CheckTablePassword("1", "Secret"))
	s.False(s.store.CheckTablePassword("1", ""))
	s.True(s.store.CheckTablePassword("2", "whatever"))

	password, ok := s.store.TablePassword("1")
	s.True(ok)
	s.Equal("secret", password)
	s.Equal("Game master set the connect tab password", s.store.EventLog("1")[0].Message)
}

func (s *StoreSuite) TestClearTablePassword() {
	s.Require().NoError(s.store.SetTablePassword(s.ctx, "1", "secret"))
	s.Require().NoError(s.store.SetTablePassword(s.ctx, "1", ""))

	s.True(s.store.CheckTablePassword("1", "anything"))
	_, ok := s.store.TablePassword("1")
	s.False(ok)
	s.Equal("Game master removed the connect tab password", s.store.EventLog("1")[0].Message)
}
