package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/api/middleware"
	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/world"
)

// AuctionHandler handles the per-table auction house
type AuctionHandler struct {
	world *world.Store
}

// NewAuctionHandler creates a new auction handler
func NewAuctionHandler(store *world.Store) *AuctionHandler {
	return &AuctionHandler{world: store}
}

// List handles GET /api/v1/tables/{table_id}/auction
func (h *AuctionHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	response.OK(w, response.AuctionListingsFromModel(h.world.AuctionListings(id)))
}

// Sell handles POST /api/v1/tables/{table_id}/auction
func (h *AuctionHandler) Sell(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	user := middleware.MustGetUser(r.Context())

	var req request.ListItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ItemID == "" {
		WriteError(w, NewInvalidRequestError("item_id is required"))
		return
	}
	if req.Price < 1 {
		WriteError(w, NewInvalidRequestError("price must be at least 1"))
		return
	}

	listed, err := h.world.ListItemOnAuction(r.Context(), user.ID, user.Username, req.ItemID, req.Price, id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !listed {
		WriteError(w, model.ErrNotInInventory)
		return
	}

	response.Created(w, response.AuctionListingsFromModel(h.world.AuctionListings(id)))
}

// Buy handles POST /api/v1/auction/{listing_id}/buy
func (h *AuctionHandler) Buy(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	listingID := mux.Vars(r)["listing_id"]

	listing, exists := h.world.AuctionListing(listingID)
	if !exists {
		WriteError(w, model.ErrListingNotFound)
		return
	}
	if listing.SellerID == user.ID {
		WriteError(w, model.ErrSelfPurchase)
		return
	}

	bought, err := h.world.BuyAuctionItem(r.Context(), user.ID, user.Username, listingID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !bought {
		// Another buyer got there first
		WriteError(w, model.ErrListingNotFound)
		return
	}

	response.OK(w, response.InventoryFromModel(
		listing.TableID,
		h.world.Inventory(user.ID, listing.TableID),
		h.world.InventorySummary(user.ID, listing.TableID),
	))
}

// Cancel handles DELETE /api/v1/auction/{listing_id}
func (h *AuctionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	listingID := mux.Vars(r)["listing_id"]

	listing, exists := h.world.AuctionListing(listingID)
	if !exists {
		WriteError(w, model.ErrListingNotFound)
		return
	}
	if listing.SellerID != user.ID {
		WriteError(w, model.ErrNotSeller)
		return
	}

	removed, err := h.world.RemoveAuctionListing(r.Context(), listingID, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !removed {
		WriteError(w, model.ErrListingNotFound)
		return
	}

	response.NoContent(w)
}
