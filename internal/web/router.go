package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	sharedmw "github.com/mcoot/foundry/internal/middleware"
	"github.com/mcoot/foundry/internal/services/identity"
	"github.com/mcoot/foundry/internal/services/world"
	"github.com/mcoot/foundry/internal/web/handler"
	"github.com/mcoot/foundry/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger   *slog.Logger
	Identity *identity.Service
	World    *world.Store
}

// NewRouter creates the read-only board router
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	logger := cfg.Logger.With(slog.String("component", "web"))

	boardHandler := handler.NewBoardHandler(cfg.World)

	r.Use(middleware.Recovery(logger))
	r.Use(sharedmw.Logging(logger))
	r.Use(middleware.CurrentUser(cfg.Identity))

	r.HandleFunc("/", boardHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/tables/{table_id}", boardHandler.Table).Methods(http.MethodGet)
	r.NotFoundHandler = middleware.CurrentUser(cfg.Identity)(http.HandlerFunc(boardHandler.NotFound))

	return r
}
