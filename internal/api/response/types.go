package response

import (
	"time"

	"github.com/mcoot/foundry/internal/model"
)

// User represents the signed in user in API responses
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserFromModel converts a model.SessionUser
func UserFromModel(u model.SessionUser) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		IsAdmin:  u.IsAdmin(),
	}
}

// Session is the response for session endpoints
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// SessionFromModel builds a Session from the current user lookup
func SessionFromModel(u model.SessionUser, ok bool) Session {
	if !ok {
		return Session{}
	}
	user := UserFromModel(u)
	return Session{Authenticated: true, User: &user}
}

// Item represents a catalog item
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameColor   string  `json:"name_color"`
	Description string  `json:"description"`
	Rarity      string  `json:"rarity"`
	Icon        string  `json:"icon"`
	Weight      float64 `json:"weight"`
	Category    string  `json:"category"`
}

// ItemFromModel converts a model.Item
func ItemFromModel(i model.Item) Item {
	return Item{
		ID:          i.ID,
		Name:        i.Name,
		NameColor:   i.NameColor,
		Description: i.Description,
		Rarity:      string(i.Rarity),
		Icon:        i.Icon,
		Weight:      i.Weight,
		Category:    i.Category,
	}
}

// ItemsFromModel converts a slice of model.Item
func ItemsFromModel(items []model.Item) []Item {
	return convert(items, ItemFromModel)
}

// Ingredient is one input of a recipe
type Ingredient struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Recipe represents a craft recipe
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	ResultItemID string       `json:"result_item_id"`
}

// RecipeFromModel converts a model.CraftRecipe
func RecipeFromModel(r model.CraftRecipe) Recipe {
	return Recipe{
		ID:   r.ID,
		Name: r.Name,
		Ingredients: convert(r.Ingredients, func(i model.RecipeIngredient) Ingredient {
			return Ingredient{ItemID: i.ItemID, Quantity: i.Quantity}
		}),
		ResultItemID: r.ResultItemID,
	}
}

// RecipesFromModel converts a slice of model.CraftRecipe
func RecipesFromModel(recipes []model.CraftRecipe) []Recipe {
	return convert(recipes, RecipeFromModel)
}

// StagingItem is a queued distribution entry
type StagingItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// StagingFromModel converts the staging buffer
func StagingFromModel(staging []model.StagingItem) []StagingItem {
	return convert(staging, func(s model.StagingItem) StagingItem {
		return StagingItem{ItemID: s.ItemID, Quantity: s.Quantity}
	})
}

// Distribution is the response after distributing staging
type Distribution struct {
	TableID     string `json:"table_id"`
	Distributed int    `json:"distributed"`
}

// Table represents a table with its live player count
type Table struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"max_players"`
	Players     int    `json:"players"`
}

// TableFromModel converts a model.Table
func TableFromModel(t model.Table) Table {
	return Table{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		MaxPlayers:  t.MaxPlayers,
		Players:     t.Players,
	}
}

// TablesFromModel converts a slice of model.Table
func TablesFromModel(tables []model.Table) []Table {
	return convert(tables, TableFromModel)
}

// LobbyItem is an unclaimed item in a table's lobby
type LobbyItem struct {
	ID      string `json:"id"`
	TableID string `json:"table_id"`
	Item    Item   `json:"item"`
}

// LobbyItemsFromModel converts lobby items
func LobbyItemsFromModel(items []model.LobbyItem) []LobbyItem {
	return convert(items, func(li model.LobbyItem) LobbyItem {
		return LobbyItem{ID: li.ID, TableID: li.TableID, Item: ItemFromModel(li.Item)}
	})
}

// InventoryItem is a stack held by the user
type InventoryItem struct {
	Item
	Quantity int `json:"quantity"`
}

// InventorySummary aggregates an inventory
type InventorySummary struct {
	TotalQuantity int     `json:"total_quantity"`
	UniqueItems   int     `json:"unique_items"`
	RareOrBetter  int     `json:"rare_or_better"`
	TotalWeight   float64 `json:"total_weight"`
}

// Inventory is the user's holdings at one table
type Inventory struct {
	TableID string           `json:"table_id"`
	Items   []InventoryItem  `json:"items"`
	Summary InventorySummary `json:"summary"`
}

// InventoryFromModel builds an Inventory response
func InventoryFromModel(tableID string, items []model.InventoryItem, summary model.InventorySummary) Inventory {
	return Inventory{
		TableID: tableID,
		Items: convert(items, func(ii model.InventoryItem) InventoryItem {
			return InventoryItem{Item: ItemFromModel(ii.Item), Quantity: ii.Quantity}
		}),
		Summary: InventorySummary{
			TotalQuantity: summary.TotalQuantity,
			UniqueItems:   summary.UniqueItems,
			RareOrBetter:  summary.RareOrBetter,
			TotalWeight:   summary.TotalWeight,
		},
	}
}

// ActivePlayer is a user present at a table
type ActivePlayer struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	TableID  string    `json:"table_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// ActivePlayersFromModel converts presence records
func ActivePlayersFromModel(players []model.ActivePlayer) []ActivePlayer {
	return convert(players, func(p model.ActivePlayer) ActivePlayer {
		return ActivePlayer{
			UserID:   p.UserID,
			Username: p.Username,
			Role:     string(p.Role),
			TableID:  p.TableID,
			JoinedAt: p.JoinedAt,
		}
	})
}

// PasswordCheck is the response after a successful password check
type PasswordCheck struct {
	TableID string `json:"table_id"`
	OK      bool   `json:"ok"`
}

// AuctionListing is an item for sale
type AuctionListing struct {
	ID         string    `json:"id"`
	SellerID   string    `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	Item       Item      `json:"item"`
	Price      int       `json:"price"`
	TableID    string    `json:"table_id"`
	ListedAt   time.Time `json:"listed_at"`
}

// AuctionListingFromModel converts a model.AuctionListing
func AuctionListingFromModel(l model.AuctionListing) AuctionListing {
	return AuctionListing{
		ID:         l.ID,
		SellerID:   l.SellerID,
		SellerName: l.SellerName,
		Item:       ItemFromModel(l.Item),
		Price:      l.Price,
		TableID:    l.TableID,
		ListedAt:   l.ListedAt,
	}
}

// AuctionListingsFromModel converts a slice of listings
func AuctionListingsFromModel(listings []model.AuctionListing) []AuctionListing {
	return convert(listings, AuctionListingFromModel)
}

// ChatMessage is a table chat message
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	TableID   string    `json:"table_id"`
	Item      *Item     `json:"item,omitempty"`
}

// ChatMessageFromModel converts a model.ChatMessage
func ChatMessageFromModel(m model.ChatMessage) ChatMessage {
	msg := ChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Message:   m.Message,
		Timestamp: m.Timestamp,
		TableID:   m.TableID,
	}
	if m.Item != nil {
		item := ItemFromModel(*m.Item)
		msg.Item = &item
	}
	return msg
}

// ChatMessagesFromModel converts a slice of chat messages
func ChatMessagesFromModel(messages []model.ChatMessage) []ChatMessage {
	return convert(messages, ChatMessageFromModel)
}

// GlobalChatMessage is a cross-table chat message
type GlobalChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// GlobalChatMessageFromModel converts a model.GlobalChatMessage
func GlobalChatMessageFromModel(m model.GlobalChatMessage) GlobalChatMessage {
	return GlobalChatMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Message:   m.Message,
		Timestamp: m.Timestamp,
	}
}

// GlobalChatMessagesFromModel converts a slice of global messages
func GlobalChatMessagesFromModel(messages []model.GlobalChatMessage) []GlobalChatMessage {
	return convert(messages, GlobalChatMessageFromModel)
}

// LogEntry is an event log line
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	TableID   string    `json:"table_id"`
}

// LogEntriesFromModel converts event log entries
func LogEntriesFromModel(entries []model.LogEntry) []LogEntry {
	return convert(entries, func(e model.LogEntry) LogEntry {
		return LogEntry{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Message:   e.Message,
			Type:      string(e.Type),
			TableID:   e.TableID,
		}
	})
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// convert maps src through fn, always returning a non-nil slice so empty
// collections encode as []
func convert[S, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}
