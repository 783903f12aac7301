package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/api/apierr"
	"github.com/mcoot/foundry/internal/api/handler"
	"github.com/mcoot/foundry/internal/api/middleware"
	"github.com/mcoot/foundry/internal/api/response"
	sharedmw "github.com/mcoot/foundry/internal/middleware"
	"github.com/mcoot/foundry/internal/services/identity"
	"github.com/mcoot/foundry/internal/services/world"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Identity *identity.Service
	World    *world.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	sessionHandler := handler.NewSessionHandler(cfg.Identity)
	catalogHandler := handler.NewCatalogHandler(cfg.World)
	stagingHandler := handler.NewStagingHandler(cfg.World)
	tableHandler := handler.NewTableHandler(cfg.World)
	auctionHandler := handler.NewAuctionHandler(cfg.World)
	chatHandler := handler.NewChatHandler(cfg.World)

	logger := cfg.Logger.With(slog.String("component", "api"))
	authMiddleware := middleware.Auth(cfg.Identity)
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.Admin(h)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(logger))
	api.Use(sharedmw.Logging(logger))

	// Public routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Logout).Methods(http.MethodDelete)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/register", sessionHandler.Register).Methods(http.MethodPost)

	// Everything else acts as the current user
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	// Catalog
	protected.HandleFunc("/items", catalogHandler.ListItems).Methods(http.MethodGet)
	protected.Handle("/items", admin(catalogHandler.CreateItem)).Methods(http.MethodPost)
	protected.Handle("/items/{id}", admin(catalogHandler.UpdateItem)).Methods(http.MethodPatch)
	protected.Handle("/items/{id}", admin(catalogHandler.DeleteItem)).Methods(http.MethodDelete)
	protected.HandleFunc("/recipes", catalogHandler.ListRecipes).Methods(http.MethodGet)
	protected.Handle("/recipes", admin(catalogHandler.CreateRecipe)).Methods(http.MethodPost)
	protected.Handle("/recipes/{id}", admin(catalogHandler.DeleteRecipe)).Methods(http.MethodDelete)

	// Staging
	protected.Handle("/staging", admin(stagingHandler.List)).Methods(http.MethodGet)
	protected.Handle("/staging", admin(stagingHandler.Add)).Methods(http.MethodPost)
	protected.Handle("/staging", admin(stagingHandler.Clear)).Methods(http.MethodDelete)
	protected.Handle("/staging/distribute", admin(stagingHandler.Distribute)).Methods(http.MethodPost)
	protected.Handle("/staging/{item_id}", admin(stagingHandler.Remove)).Methods(http.MethodDelete)

	// Tables
	protected.HandleFunc("/tables", tableHandler.List).Methods(http.MethodGet)
	tables := protected.PathPrefix("/tables/{table_id}").Subrouter()
	tables.HandleFunc("/lobby", tableHandler.Lobby).Methods(http.MethodGet)
	tables.Handle("/lobby", admin(tableHandler.AddToLobby)).Methods(http.MethodPost)
	tables.HandleFunc("/lobby/{lobby_item_id}/pickup", tableHandler.Pickup).Methods(http.MethodPost)
	tables.HandleFunc("/inventory", tableHandler.Inventory).Methods(http.MethodGet)
	tables.HandleFunc("/join", tableHandler.Join).Methods(http.MethodPost)
	tables.HandleFunc("/leave", tableHandler.Leave).Methods(http.MethodPost)
	tables.HandleFunc("/players", tableHandler.Players).Methods(http.MethodGet)
	tables.Handle("/players/{user_id}/kick", admin(tableHandler.Kick)).Methods(http.MethodPost)
	tables.Handle("/password", admin(tableHandler.SetPassword)).Methods(http.MethodPut)
	tables.HandleFunc("/password/check", tableHandler.CheckPassword).Methods(http.MethodPost)
	tables.HandleFunc("/auction", auctionHandler.List).Methods(http.MethodGet)
	tables.HandleFunc("/auction", auctionHandler.Sell).Methods(http.MethodPost)
	tables.HandleFunc("/chat", chatHandler.List).Methods(http.MethodGet)
	tables.HandleFunc("/chat", chatHandler.Send).Methods(http.MethodPost)
	tables.HandleFunc("/events", chatHandler.Events).Methods(http.MethodGet)

	// Auction
	protected.HandleFunc("/auction/{listing_id}/buy", auctionHandler.Buy).Methods(http.MethodPost)
	protected.HandleFunc("/auction/{listing_id}", auctionHandler.Cancel).Methods(http.MethodDelete)

	// Global chat
	protected.HandleFunc("/chat/global", chatHandler.ListGlobal).Methods(http.MethodGet)
	protected.HandleFunc("/chat/global", chatHandler.SendGlobal).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.Health{Status: "ok"})
}
