package handler

import (
	"context"
	"net/http"
	"slices"

	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/api/middleware"
	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/world"
)

// TableHandler handles tables, their lobbies, presence and passwords
type TableHandler struct {
	world *world.Store
}

// NewTableHandler creates a new table handler
func NewTableHandler(store *world.Store) *TableHandler {
	return &TableHandler{world: store}
}

// tableID returns the {table_id} route variable, writing a 404 when the
// table is not configured
func tableID(store *world.Store, w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["table_id"]
	if _, ok := store.Table(id); !ok {
		WriteError(w, model.ErrTableNotFound)
		return "", false
	}
	return id, true
}

// List handles GET /api/v1/tables
func (h *TableHandler) List(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.TablesFromModel(h.world.Tables()))
}

// Lobby handles GET /api/v1/tables/{table_id}/lobby
func (h *TableHandler) Lobby(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	response.OK(w, response.LobbyItemsFromModel(h.world.LobbyItems(id)))
}

// AddToLobby handles POST /api/v1/tables/{table_id}/lobby
func (h *TableHandler) AddToLobby(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}

	var req request.AddLobbyItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ItemID == "" {
		WriteError(w, NewInvalidRequestError("item_id is required"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		WriteError(w, NewInvalidRequestError("quantity must be at least 1"))
		return
	}

	added, err := h.world.AddItemToLobby(r.Context(), req.ItemID, id, req.Quantity)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !added {
		WriteError(w, model.ErrItemNotFound)
		return
	}

	response.Created(w, response.LobbyItemsFromModel(h.world.LobbyItems(id)))
}

// Pickup handles POST /api/v1/tables/{table_id}/lobby/{lobby_item_id}/pickup
func (h *TableHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	user := middleware.MustGetUser(r.Context())
	lobbyItemID := mux.Vars(r)["lobby_item_id"]

	atTable := slices.ContainsFunc(h.world.LobbyItems(id), func(li model.LobbyItem) bool {
		return li.ID == lobbyItemID
	})
	if !atTable {
		WriteError(w, model.ErrLobbyItemNotFound)
		return
	}

	picked, err := h.world.PickupItem(r.Context(), lobbyItemID, user.ID, user.Username)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !picked {
		WriteError(w, model.ErrLobbyItemNotFound)
		return
	}

	h.writeInventory(w, user.ID, id)
}

// Inventory handles GET /api/v1/tables/{table_id}/inventory
func (h *TableHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	h.writeInventory(w, middleware.MustGetUser(r.Context()).ID, id)
}

func (h *TableHandler) writeInventory(w http.ResponseWriter, userID, tableID string) {
	response.OK(w, response.InventoryFromModel(
		tableID,
		h.world.Inventory(userID, tableID),
		h.world.InventorySummary(userID, tableID),
	))
}

// Join handles POST /api/v1/tables/{table_id}/join. Players must supply the
// table password when one is set.
func (h *TableHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	user := middleware.MustGetUser(r.Context())

	var req request.JoinTableRequest
	if !decode(w, r, &req) {
		return
	}
	if !user.IsAdmin() && !h.world.CheckTablePassword(id, req.Password) {
		WriteError(w, model.ErrWrongTablePassword)
		return
	}

	if err := h.world.JoinTable(r.Context(), user.ID, user.Username, user.Role, id); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.ActivePlayersFromModel(h.world.ActivePlayers(id)))
}

// Leave handles POST /api/v1/tables/{table_id}/leave
func (h *TableHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	h.removePlayer(w, r, middleware.MustGetUser(r.Context()).ID, id, h.world.LeaveTable)
}

// Kick handles POST /api/v1/tables/{table_id}/players/{user_id}/kick
func (h *TableHandler) Kick(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	h.removePlayer(w, r, mux.Vars(r)["user_id"], id, h.world.KickPlayer)
}

func (h *TableHandler) removePlayer(
	w http.ResponseWriter,
	r *http.Request,
	userID, tableID string,
	remove func(ctx context.Context, userID, tableID string) (bool, error),
) {
	removed, err := remove(r.Context(), userID, tableID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !removed {
		WriteError(w, model.ErrNotAtTable)
		return
	}
	response.NoContent(w)
}

// Players handles GET /api/v1/tables/{table_id}/players
func (h *TableHandler) Players(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	response.OK(w, response.ActivePlayersFromModel(h.world.ActivePlayers(id)))
}

// SetPassword handles PUT /api/v1/tables/{table_id}/password. An empty
// password opens the table.
func (h *TableHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}

	var req request.PasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.world.SetTablePassword(r.Context(), id, req.Password); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// CheckPassword handles POST /api/v1/tables/{table_id}/password/check
func (h *TableHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}

	var req request.PasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.world.CheckTablePassword(id, req.Password) {
		WriteError(w, model.ErrWrongTablePassword)
		return
	}

	response.OK(w, response.PasswordCheck{TableID: id, OK: true})
}
