package model

import "time"

// Table is a configured game room. Players is derived from presence.
type Table struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"maxPlayers"`
	Players     int    `json:"players"`
}

// ActivePlayer records which table a user is currently at
type ActivePlayer struct {
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	TableID  string    `json:"tableId"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TablePasswords maps table id to its connect password
type TablePasswords map[string]string

// AuctionListing is an item put up for sale by a player
type AuctionListing struct {
	ID         string    `json:"id"`
	SellerID   string    `json:"sellerId"`
	SellerName string    `json:"sellerName"`
	Item       Item      `json:"item"`
	Price      int       `json:"price"`
	TableID    string    `json:"tableId"`
	ListedAt   time.Time `json:"listedAt"`
}
