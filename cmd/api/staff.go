package main

import (
	"net/http"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type ShiftRequest struct {
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
	Days  []string `json:"days"`
}

type CreateStaffRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone"`
	Shift    ShiftRequest `json:"shift" validate:"required"`
	Username string       `json:"username" validate:"required"`
	Password string       `json:"password" validate:"required"`
	Status   string       `json:"status" validate:"omitempty,oneof=active inactive"`
}

// listStaffHandler godoc
//
//	@Summary		List staff
//	@Description	Lists every staff member with the nested shift object
//	@Tags			staff
//	@Produce		json
//	@Success		200	{array}		domain.Staff
//	@Failure		500	{object}	map[string]string
//	@Router			/staff [get]
func (app *application) listStaffHandler(w http.ResponseWriter, r *http.Request) {
	members, err := app.staffRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, members); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createStaffHandler godoc
//
//	@Summary		Create staff member
//	@Description	Creates a staff member and returns the generated id
//	@Tags			staff
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateStaffRequest	true	"Staff member"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/staff [post]
func (app *application) createStaffHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateStaffRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	member := &domain.Staff{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Shift: domain.Shift{
			Start: req.Shift.Start,
			End:   req.Shift.End,
			Days:  req.Shift.Days,
		},
		Username: req.Username,
		Password: req.Password,
		Status:   req.Status,
	}

	id, err := app.staffRepo.Create(r.Context(), member)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"id": id}); err != nil {
		app.internalServerError(w, r, err)
	}
}
