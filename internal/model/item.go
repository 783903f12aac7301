package model

// Rarity is the quality tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Valid reports whether r is one of the known rarity tiers
func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// AtLeast reports whether r is the same tier as other or better
func (r Rarity) AtLeast(other Rarity) bool {
	return rarityRank[r] >= rarityRank[other]
}

// Item is a catalog item definition
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameColor   string  `json:"nameColor"`
	Description string  `json:"description"`
	Rarity      Rarity  `json:"rarity"`
	Icon        string  `json:"icon"`
	Weight      float64 `json:"weight"`
	Category    string  `json:"category"`
}

// ItemFields is the input for creating a catalog item
type ItemFields struct {
	Name        string
	NameColor   string
	Description string
	Rarity      Rarity
	Icon        string
	Weight      float64
	Category    string
}

// ItemPatch holds the fields to change on a catalog item. Nil fields are left as is.
type ItemPatch struct {
	Name        *string
	NameColor   *string
	Description *string
	Rarity      *Rarity
	Icon        *string
	Weight      *float64
	Category    *string
}

// Apply merges the set fields of the patch into item
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.NameColor != nil {
		item.NameColor = *p.NameColor
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Rarity != nil {
		item.Rarity = *p.Rarity
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.Weight != nil {
		item.Weight = *p.Weight
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
}

// LobbyItem is one unclaimed copy of an item lying in a table's lobby
type LobbyItem struct {
	ID      string `json:"id"`
	TableID string `json:"tableId"`
	Item    Item   `json:"item"`
}

// InventoryItem is a stack of one catalog item owned by a user at a table
type InventoryItem struct {
	Item
	UserID   string `json:"userId"`
	TableID  string `json:"tableId"`
	Quantity int    `json:"quantity"`
}

// InventorySummary aggregates a user's inventory at one table
type InventorySummary struct {
	TotalQuantity int     `json:"totalQuantity"`
	UniqueItems   int     `json:"uniqueItems"`
	RareOrBetter  int     `json:"rareOrBetter"`
	TotalWeight   float64 `json:"totalWeight"`
}

// RecipeIngredient is one input of a craft recipe
type RecipeIngredient struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CraftRecipe combines two ingredients into a result item
type CraftRecipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	ResultItemID string             `json:"resultItemId"`
}

// StagingItem is an item queued for distribution
type StagingItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
