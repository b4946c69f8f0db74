package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadhelper/tryouts/internal/api/request"
	"github.com/squadhelper/tryouts/internal/api/response"
	"github.com/squadhelper/tryouts/internal/services/registry"
)

// SportHandler handles sport catalogue endpoints
type SportHandler struct {
	registry *registry.Service
}

// NewSportHandler creates a new sport handler
func NewSportHandler(registryService *registry.Service) *SportHandler {
	return &SportHandler{
		registry: registryService,
	}
}

// List handles GET /api/v1/sports
func (h *SportHandler) List(w http.ResponseWriter, r *http.Request) {
	sports, err := h.registry.Sports(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SportsResponse{Sports: sports})
}

// Add handles POST /api/v1/sports
func (h *SportHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddSportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	if err := h.registry.AddSport(r.Context(), req.Name); err != nil {
		WriteError(w, err)
		return
	}

	sports, err := h.registry.Sports(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SportsResponse{Sports: sports})
}

// Remove handles DELETE /api/v1/sports/{name}
func (h *SportHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.registry.RemoveSport(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
