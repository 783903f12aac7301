package world

import (
	"time"

	"github.com/mcoot/foundry/internal/model"
)

func (s *StoreSuite) TestSendChatMessage() {
	s.random.QueueID("m1")

	msg, err := s.store.SendChatMessage(s.ctx, "u1", "alice", "hello", "1", nil)
	s.Require().NoError(err)
	s.Equal(model.ChatMessage{
		ID:        "m1",
		UserID:    "u1",
		Username:  "alice",
		Message:   "hello",
		Timestamp: s.clock.Now(),
		TableID:   "1",
	}, msg)
	s.Equal([]model.ChatMessage{msg}, s.store.ChatMessages("1"))
	s.Empty(s.store.ChatMessages("2"))
}

func (s *StoreSuite) TestChatMessageCopiesItem() {
	item := model.Item{ID: "1", Name: "Sword"}

	msg, err := s.store.SendChatMessage(s.ctx, "u1", "alice", "look", "1", &item)
	s.Require().NoError(err)
	item.Name = "changed"

	s.Require().NotNil(msg.Item)
	s.Equal("Sword", msg.Item.Name)
	s.Equal("Sword", s.store.ChatMessages("1")[0].Item.Name)
}

func (s *StoreSuite) TestChatMessagesOldestFirst() {
	_, err := s.store.SendChatMessage(s.ctx, "u1", "alice", "first", "1", nil)
	s.Require().NoError(err)
	s.clock.Advance(time.Second)
	_, err = s.store.SendChatMessage(s.ctx, "u2", "bob", "second", "1", nil)
	s.Require().NoError(err)

	msgs := s.store.ChatMessages("1")
	s.Require().Len(msgs, 2)
	s.Equal("first", msgs[0].Message)
	s.Equal("second", msgs[1].Message)
}

func (s *StoreSuite) TestSendGlobalChatMessage() {
	msg, err := s.store.SendGlobalChatMessage(s.ctx, "u1", "alice", "hi everyone")
	s.Require().NoError(err)
	s.Equal("hi everyone", msg.Message)
	s.Equal([]model.GlobalChatMessage{msg}, s.store.GlobalChatMessages())
}

func (s *StoreSuite) TestAddEventLogPrepends() {
	first, err := s.store.AddEventLog(s.ctx, "first", model.LogInfo, "1")
	s.Require().NoError(err)
	second, err := s.store.AddEventLog(s.ctx, "second", model.LogWarning, "")
	s.Require().NoError(err)

	s.Equal([]model.LogEntry{second, first}, s.store.EventLog(""))
	s.Equal([]model.LogEntry{first}, s.store.EventLog("1"))
	s.Equal("", second.TableID)
}
