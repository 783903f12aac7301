package world

import (
	"context"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/repository"
)

// SendChatMessage posts to a table's chat. An attached item is copied.
func (s *Store) SendChatMessage(ctx context.Context, userID, username, message, tableID string, item *model.Item) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.ChatMessage{
		ID:        s.random.ID(),
		UserID:    userID,
		Username:  username,
		Message:   message,
		Timestamp: s.clock.Now(),
		TableID:   tableID,
	}
	if item != nil {
		snapshot := *item
		msg.Item = &snapshot
	}
	s.chatMessages = append(s.chatMessages, msg)

	if err := s.persist(ctx, repository.ChatMessages); err != nil {
		return model.ChatMessage{}, err
	}
	return msg, nil
}

// SendGlobalChatMessage posts to the cross-table chat
func (s *Store) SendGlobalChatMessage(ctx context.Context, userID, username, message string) (model.GlobalChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.GlobalChatMessage{
		ID:        s.random.ID(),
		UserID:    userID,
		Username:  username,
		Message:   message,
		Timestamp: s.clock.Now(),
	}
	s.globalChat = append(s.globalChat, msg)

	if err := s.persist(ctx, repository.GlobalChat); err != nil {
		return model.GlobalChatMessage{}, err
	}
	return msg, nil
}

// AddEventLog records an event. An empty tableID makes it global.
func (s *Store) AddEventLog(ctx context.Context, message string, logType model.LogType, tableID string) (model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.appendLog(message, logType, tableID)
	if err := s.persist(ctx, repository.EventLog); err != nil {
		return model.LogEntry{}, err
	}
	return entry, nil
}

// ChatMessages returns a table's chat, oldest first
func (s *Store) ChatMessages(tableID string) []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.chatMessages, func(m model.ChatMessage) bool { return m.TableID == tableID })
}

// GlobalChatMessages returns the cross-table chat, oldest first
func (s *Store) GlobalChatMessages() []model.GlobalChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.GlobalChatMessage{}, s.globalChat...)
}

// EventLog returns a table's events, newest first. An empty tableID
// returns every entry.
func (s *Store) EventLog(tableID string) []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tableID == "" {
		return append([]model.LogEntry{}, s.eventLog...)
	}
	return filter(s.eventLog, func(e model.LogEntry) bool { return e.TableID == tableID })
}

// appendLog prepends an entry. Callers hold s.mu and persist the event log.
func (s *Store) appendLog(message string, logType model.LogType, tableID string) model.LogEntry {
	entry := model.LogEntry{
		ID:        s.random.ID(),
		Timestamp: s.clock.Now(),
		Message:   message,
		Type:      logType,
		TableID:   tableID,
	}
	s.eventLog = append([]model.LogEntry{entry}, s.eventLog...)
	return entry
}
