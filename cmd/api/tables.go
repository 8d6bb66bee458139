package main

import (
	"net/http"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type CreateTableRequest struct {
	Number   string `json:"number" validate:"required"`
	Seats    int    `json:"seats" validate:"gt=0"`
	Location string `json:"location"`
	Status   string `json:"status" validate:"omitempty,oneof=available occupied reserved"`
}

// listTablesHandler godoc
//
//	@Summary		List tables
//	@Description	Lists every table
//	@Tags			tables
//	@Produce		json
//	@Success		200	{array}		domain.Table
//	@Failure		500	{object}	map[string]string
//	@Router			/tables [get]
func (app *application) listTablesHandler(w http.ResponseWriter, r *http.Request) {
	tables, err := app.tableRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, tables); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTableHandler godoc
//
//	@Summary		Create table
//	@Description	Creates a table and returns the generated id
//	@Tags			tables
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTableRequest	true	"Table"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/tables [post]
func (app *application) createTableHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	table := &domain.Table{
		Number:   req.Number,
		Seats:    req.Seats,
		Location: req.Location,
		Status:   req.Status,
	}

	id, err := app.tableRepo.Create(r.Context(), table)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"id": id}); err != nil {
		app.internalServerError(w, r, err)
	}
}
