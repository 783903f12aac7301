package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for registering a player account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateItemRequest is the request body for adding a catalog item
type CreateItemRequest struct {
	Name        string  `json:"name"`
	NameColor   string  `json:"name_color"`
	Description string  `json:"description"`
	Rarity      string  `json:"rarity"`
	Icon        string  `json:"icon"`
	Weight      float64 `json:"weight"`
	Category    string  `json:"category"`
}

// UpdateItemRequest is the request body for patching a catalog item.
// Omitted fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	NameColor   *string  `json:"name_color,omitempty"`
	Description *string  `json:"description,omitempty"`
	Rarity      *string  `json:"rarity,omitempty"`
	Icon        *string  `json:"icon,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// CreateRecipeRequest is the request body for adding a craft recipe
type CreateRecipeRequest struct {
	Name         string `json:"name"`
	IngredientA  string `json:"ingredient_a"`
	IngredientB  string `json:"ingredient_b"`
	ResultItemID string `json:"result_item_id"`
}

// StageRequest is the request body for queueing an item for distribution
type StageRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// DistributeRequest is the request body for distributing staging to a table
type DistributeRequest struct {
	TableID string `json:"table_id"`
}

// AddLobbyItemRequest is the request body for placing items straight into a lobby
type AddLobbyItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// JoinTableRequest is the request body for joining a table
type JoinTableRequest struct {
	Password string `json:"password,omitempty"`
}

// PasswordRequest carries a table password for setting or checking
type PasswordRequest struct {
	Password string `json:"password"`
}

// ListItemRequest is the request body for putting an item up for auction
type ListItemRequest struct {
	ItemID string `json:"item_id"`
	Price  int    `json:"price"`
}

// ChatRequest is the request body for posting to a table chat
type ChatRequest struct {
	Message string `json:"message"`
	ItemID  string `json:"item_id,omitempty"`
}

// GlobalChatRequest is the request body for posting to the global chat
type GlobalChatRequest struct {
	Message string `json:"message"`
}
