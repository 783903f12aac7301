package model

import "time"

// ChatMessage is a message posted to a table's chat
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	TableID   string    `json:"tableId"`
	Item      *Item     `json:"item,omitempty"`
}

// GlobalChatMessage is a message posted to the cross-table chat
type GlobalChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LogType classifies event log entries
type LogType string

const (
	LogInfo    LogType = "info"
	LogSuccess LogType = "success"
	LogWarning LogType = "warning"
)

// LogEntry is a single event log line. An empty TableID means global.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Type      LogType   `json:"type"`
	TableID   string    `json:"tableId"`
}
