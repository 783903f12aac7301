package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// JoinTable makes tableID the user's only active table
func (s *Store) JoinTable(ctx context.Context, userID, username string, role model.Role, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activePlayers = filter(s.activePlayers, func(p model.ActivePlayer) bool { return p.UserID != userID })
	s.activePlayers = append(s.activePlayers, model.ActivePlayer{
		UserID:   userID,
		Username: username,
		Role:     role,
		TableID:  tableID,
		JoinedAt: s.clock.Now(),
	})
	s.appendLog(fmt.Sprintf("%s joined the game", username), model.LogInfo, tableID)

	if err := s.persist(ctx, repository.ActivePlayers, repository.EventLog); err != nil {
		return err
	}
	s.logger.Info("player joined table", slog.String("user_id", userID), slog.String("table_id", tableID))
	return nil
}

// LeaveTable removes the user's presence at tableID. It reports false when
// the user is not at that table.
func (s *Store) LeaveTable(ctx context.Context, userID, tableID string) (bool, error) {
	return s.removePresence(ctx, userID, tableID, "%s left the game")
}

// KickPlayer removes another user's presence at tableID. The user may rejoin.
func (s *Store) KickPlayer(ctx context.Context, userID, tableID string) (bool, error) {
	return s.removePresence(ctx, userID, tableID, "%s was kicked from the game")
}

func (s *Store) removePresence(ctx context.Context, userID, tableID, format string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var player *model.ActivePlayer
	for i := range s.activePlayers {
		if s.activePlayers[i].UserID == userID && s.activePlayers[i].TableID == tableID {
			p := s.activePlayers[i]
			player = &p
			break
		}
	}
	if player == nil {
		return false, nil
	}

	s.activePlayers = filter(s.activePlayers, func(p model.ActivePlayer) bool {
		return p.UserID != userID || p.TableID != tableID
	})
	s.appendLog(fmt.Sprintf(format, player.Username), model.LogWarning, tableID)

	if err := s.persist(ctx, repository.ActivePlayers, repository.EventLog); err != nil {
		return false, err
	}
	s.logger.Info("player removed from table", slog.String("user_id", userID), slog.String("table_id", tableID))
	return true, nil
}

// ActivePlayers returns who is at a table
func (s *Store) ActivePlayers(tableID string) []model.ActivePlayer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.activePlayers, func(p model.ActivePlayer) bool { return p.TableID == tableID })
}

// SetTablePassword sets the connect password for a table. An empty password
// opens the table.
func (s *Store) SetTablePassword(ctx context.Context, tableID, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := "Game master set the connect tab password"
	if password == "" {
		delete(s.tablePasswords, tableID)
		message = "Game master removed the connect tab password"
	} else {
		s.tablePasswords[tableID] = password
	}
	s.appendLog(message, model.LogInfo, tableID)

	if err := s.persist(ctx, repository.TablePasswords, repository.EventLog); err != nil {
		return err
	}
	s.logger.Info("table password changed", slog.String("table_id", tableID), slog.Bool("locked", password != ""))
	return nil
}

// CheckTablePassword reports whether password opens the table. Open tables
// accept anything.
func (s *Store) CheckTablePassword(tableID, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.tablePasswords[tableID]
	return stored == "" || stored == password
}

// TablePassword returns the table's password, if one is set
func (s *Store) TablePassword(tableID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.tablePasswords[tableID]
	return p, ok && p != ""
}

// Tables returns the configured tables with their current player counts
func (s *Store) Tables() []model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := make([]model.Table, len(s.cfg.Tables))
	for i, t := range s.cfg.Tables {
		t.Players = 0
		for _, p := range s.activePlayers {
			if p.TableID == t.ID {
				t.Players++
			}
		}
		tables[i] = t
	}
	return tables
}

// Table returns one configured table with its current player count
func (s *Store) Table(id string) (model.Table, bool) {
	for _, t := range s.Tables() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Table{}, false
}
