package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/world"
)

// StagingHandler handles the game master's distribution buffer
type StagingHandler struct {
	world *world.Store
}

// NewStagingHandler creates a new staging handler
func NewStagingHandler(store *world.Store) *StagingHandler {
	return &StagingHandler{world: store}
}

// List handles GET /api/v1/staging
func (h *StagingHandler) List(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.StagingFromModel(h.world.Staging()))
}

// Add handles POST /api/v1/staging
func (h *StagingHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.StageRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ItemID == "" {
		WriteError(w, NewInvalidRequestError("item_id is required"))
		return
	}
	if req.Quantity < 1 {
		WriteError(w, NewInvalidRequestError("quantity must be at least 1"))
		return
	}
	if _, ok := h.world.Item(req.ItemID); !ok {
		WriteError(w, model.ErrItemNotFound)
		return
	}

	h.world.AddToStaging(req.ItemID, req.Quantity)
	response.OK(w, response.StagingFromModel(h.world.Staging()))
}

// Remove handles DELETE /api/v1/staging/{item_id}
func (h *StagingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.world.RemoveFromStaging(mux.Vars(r)["item_id"])
	response.NoContent(w)
}

// Clear handles DELETE /api/v1/staging
func (h *StagingHandler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.world.ClearStaging()
	response.NoContent(w)
}

// Distribute handles POST /api/v1/staging/distribute
func (h *StagingHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req request.DistributeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.TableID == "" {
		WriteError(w, NewInvalidRequestError("table_id is required"))
		return
	}
	if _, ok := h.world.Table(req.TableID); !ok {
		WriteError(w, model.ErrTableNotFound)
		return
	}
	if len(h.world.Staging()) == 0 {
		WriteError(w, model.ErrStagingEmpty)
		return
	}

	n, err := h.world.DistributeStagingToLobby(r.Context(), req.TableID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.Distribution{TableID: req.TableID, Distributed: n})
}
