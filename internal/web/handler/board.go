package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/services/world"
	"github.com/mcoot/foundry/internal/web/middleware"
	"github.com/mcoot/foundry/internal/web/templates/layout"
	"github.com/mcoot/foundry/internal/web/templates/pages"
)

// refreshSeconds is how often board pages reload themselves
const refreshSeconds = 10

// BoardHandler renders the read-only table boards
type BoardHandler struct {
	world *world.Store
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(store *world.Store) *BoardHandler {
	return &BoardHandler{world: store}
}

// Home renders the table list
func (h *BoardHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: pageData(r, "Tables"),
		Tables:   h.world.Tables(),
	}
	render(w, r, http.StatusOK, pages.Home(data))
}

// Table renders one table's board
func (h *BoardHandler) Table(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["table_id"]

	table, ok := h.world.Table(id)
	if !ok {
		h.NotFound(w, r)
		return
	}
	_, locked := h.world.TablePassword(id)

	data := pages.TableData{
		PageData: pageData(r, table.Name),
		Table:    table,
		Locked:   locked,
		Lobby:    h.world.LobbyItems(id),
		Players:  h.world.ActivePlayers(id),
		Listings: h.world.AuctionListings(id),
		Chat:     h.world.ChatMessages(id),
		Events:   h.world.EventLog(id),
	}
	render(w, r, http.StatusOK, pages.Table(data))
}

// NotFound renders the 404 page
func (h *BoardHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := layout.PageData{Title: "Not found", User: middleware.GetUser(r.Context())}
	render(w, r, http.StatusNotFound, pages.NotFound(data, "There is no table here."))
}

func pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title:          title,
		User:           middleware.GetUser(r.Context()),
		RefreshSeconds: refreshSeconds,
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
