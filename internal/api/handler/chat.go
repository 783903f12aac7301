package handler

import (
	"net/http"
	"strings"

	"github.com/mcoot/foundry/internal/api/middleware"
	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/world"
)

// ChatHandler handles table chat, global chat and the event log
type ChatHandler struct {
	world *world.Store
}

// NewChatHandler creates a new chat handler
func NewChatHandler(store *world.Store) *ChatHandler {
	return &ChatHandler{world: store}
}

// List handles GET /api/v1/tables/{table_id}/chat
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	response.OK(w, response.ChatMessagesFromModel(h.world.ChatMessages(id)))
}

// Send handles POST /api/v1/tables/{table_id}/chat. An optional item_id
// attaches a copy of that catalog item.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	user := middleware.MustGetUser(r.Context())

	var req request.ChatRequest
	if !decode(w, r, &req) {
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		WriteError(w, NewInvalidRequestError("message is required"))
		return
	}

	var attached *model.Item
	if req.ItemID != "" {
		item, found := h.world.Item(req.ItemID)
		if !found {
			WriteError(w, model.ErrItemNotFound)
			return
		}
		attached = &item
	}

	msg, err := h.world.SendChatMessage(r.Context(), user.ID, user.Username, message, id, attached)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.ChatMessageFromModel(msg))
}

// ListGlobal handles GET /api/v1/chat/global
func (h *ChatHandler) ListGlobal(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.GlobalChatMessagesFromModel(h.world.GlobalChatMessages()))
}

// SendGlobal handles POST /api/v1/chat/global
func (h *ChatHandler) SendGlobal(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.GlobalChatRequest
	if !decode(w, r, &req) {
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		WriteError(w, NewInvalidRequestError("message is required"))
		return
	}

	msg, err := h.world.SendGlobalChatMessage(r.Context(), user.ID, user.Username, message)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.GlobalChatMessageFromModel(msg))
}

// Events handles GET /api/v1/tables/{table_id}/events
func (h *ChatHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, ok := tableID(h.world, w, r)
	if !ok {
		return
	}
	response.OK(w, response.LogEntriesFromModel(h.world.EventLog(id)))
}
