package pages

import (
	"time"

	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/web/templates/layout"
)

// HomeData is the data for the table list
type HomeData struct {
	layout.PageData
	Tables []model.Table
}

// TableData is everything shown on a table's board
type TableData struct {
	layout.PageData
	Table    model.Table
	Locked   bool
	Lobby    []model.LobbyItem
	Players  []model.ActivePlayer
	Listings []model.AuctionListing
	Chat     []model.ChatMessage
	Events   []model.LogEntry
}

func clockTime(t time.Time) string {
	return t.Format(time.TimeOnly)
}
