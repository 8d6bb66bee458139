package main

import (
	"net/http"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type CreateMenuItemRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"gte=0"`
	Currency        string   `json:"currency" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	MealType        string   `json:"mealType" validate:"required"`
	Image           string   `json:"image"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Condiments      []string `json:"condiments"`
	Available       *bool    `json:"available"`
	PreparationTime string   `json:"preparationTime"`
	Calories        int      `json:"calories" validate:"gte=0"`
	SpicyLevel      int      `json:"spicyLevel" validate:"gte=0"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsVegan         bool     `json:"isVegan"`
	IsGlutenFree    bool     `json:"isGlutenFree"`
}

// listMenuHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists every menu item with array fields defaulted to empty
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		domain.MenuItem
//	@Failure		500	{object}	map[string]string
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.menuRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Description	Creates a menu item and returns its generated id
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	map[string]int
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &domain.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        req.Currency,
		Category:        req.Category,
		MealType:        req.MealType,
		Image:           req.Image,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		Condiments:      req.Condiments,
		Available:       available,
		PreparationTime: req.PreparationTime,
		Calories:        req.Calories,
		SpicyLevel:      req.SpicyLevel,
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsGlutenFree:    req.IsGlutenFree,
	}

	id, err := app.menuRepo.Create(r.Context(), item)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]int{"id": id}); err != nil {
		app.internalServerError(w, r, err)
	}
}
