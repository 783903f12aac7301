package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/foundry/internal/api/request"
	"github.com/mcoot/foundry/internal/api/response"
	"github.com/mcoot/foundry/internal/model"
	"github.com/mcoot/foundry/internal/services/world"
)

// Item defaults applied when a create request leaves them unset
const (
	defaultItemWeight = 1.0
	defaultNameColor  = "#ffffff"
)

// CatalogHandler handles item definitions and craft recipes
type CatalogHandler struct {
	world *world.Store
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *world.Store) *CatalogHandler {
	return &CatalogHandler{world: store}
}

// ListItems handles GET /api/v1/items
func (h *CatalogHandler) ListItems(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.ItemsFromModel(h.world.Items()))
}

// CreateItem handles POST /api/v1/items
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemRequest
	if !decode(w, r, &req) {
		return
	}
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"description", req.Description},
		{"icon", req.Icon},
		{"category", req.Category},
	} {
		if strings.TrimSpace(f.value) == "" {
			WriteError(w, NewInvalidRequestError(f.name+" is required"))
			return
		}
	}
	rarity := model.RarityCommon
	if req.Rarity != "" {
		rarity = model.Rarity(req.Rarity)
	}
	if !rarity.Valid() {
		WriteError(w, NewInvalidRequestError("unknown rarity: "+req.Rarity))
		return
	}
	if req.Weight < 0 {
		WriteError(w, NewInvalidRequestError("weight must not be negative"))
		return
	}
	weight := req.Weight
	if weight == 0 {
		weight = defaultItemWeight
	}
	nameColor := req.NameColor
	if nameColor == "" {
		nameColor = defaultNameColor
	}

	item, err := h.world.CreateItem(r.Context(), model.ItemFields{
		Name:        req.Name,
		NameColor:   nameColor,
		Description: req.Description,
		Rarity:      rarity,
		Icon:        req.Icon,
		Weight:      weight,
		Category:    req.Category,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.ItemFromModel(item))
}

// UpdateItem handles PATCH /api/v1/items/{id}
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.UpdateItemRequest
	if !decode(w, r, &req) {
		return
	}
	patch := model.ItemPatch{
		Name:        req.Name,
		NameColor:   req.NameColor,
		Description: req.Description,
		Icon:        req.Icon,
		Weight:      req.Weight,
		Category:    req.Category,
	}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", req.Name},
		{"description", req.Description},
		{"icon", req.Icon},
		{"category", req.Category},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			WriteError(w, NewInvalidRequestError(f.name+" must not be empty"))
			return
		}
	}
	if req.Weight != nil && *req.Weight < 0 {
		WriteError(w, NewInvalidRequestError("weight must not be negative"))
		return
	}
	if req.Rarity != nil {
		rarity := model.Rarity(*req.Rarity)
		if !rarity.Valid() {
			WriteError(w, NewInvalidRequestError("unknown rarity: "+*req.Rarity))
			return
		}
		patch.Rarity = &rarity
	}

	ok, err := h.world.UpdateItem(r.Context(), id, patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, model.ErrItemNotFound)
		return
	}

	item, _ := h.world.Item(id)
	response.OK(w, response.ItemFromModel(item))
}

// DeleteItem handles DELETE /api/v1/items/{id}
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ok, err := h.world.DeleteItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, model.ErrItemNotFound)
		return
	}
	response.NoContent(w)
}

// ListRecipes handles GET /api/v1/recipes
func (h *CatalogHandler) ListRecipes(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.RecipesFromModel(h.world.Recipes()))
}

// CreateRecipe handles POST /api/v1/recipes
func (h *CatalogHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRecipeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" || req.IngredientA == "" || req.IngredientB == "" || req.ResultItemID == "" {
		WriteError(w, NewInvalidRequestError("name, ingredient_a, ingredient_b and result_item_id are required"))
		return
	}
	if req.IngredientA == req.IngredientB {
		WriteError(w, NewInvalidRequestError("ingredients must be different items"))
		return
	}

	recipe, err := h.world.CreateCraftRecipe(r.Context(), req.Name, req.IngredientA, req.IngredientB, req.ResultItemID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.RecipeFromModel(recipe))
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *CatalogHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ok, err := h.world.DeleteCraftRecipe(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, model.ErrRecipeNotFound)
		return
	}
	response.NoContent(w)
}
