package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/squadhelper/tryouts/internal/api/request"
	"github.com/squadhelper/tryouts/internal/api/response"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/registry"
	"github.com/squadhelper/tryouts/internal/services/views"
)

// PlayerHandler handles registration endpoints
type PlayerHandler struct {
	registry *registry.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registryService *registry.Service) *PlayerHandler {
	return &PlayerHandler{
		registry: registryService,
	}
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Sport == "" {
		WriteError(w, NewInvalidRequestError("sport is required"))
		return
	}
	if req.Age <= 0 {
		WriteError(w, NewInvalidRequestError("age must be positive"))
		return
	}

	entry, err := h.registry.AddPlayer(r.Context(), registry.AddPlayerParams{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		Contact: req.Contact,
		Sport:   req.Sport,
		Level:   model.Level(req.Level),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(&entry))
}

// List handles GET /api/v1/players
//
// An optional ?sport= query filters to a single sport's roster.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		players []model.PlayerEntry
		err     error
	)
	if sport := r.URL.Query().Get("sport"); sport != "" {
		players, err = h.registry.PlayersBySport(r.Context(), sport)
	} else {
		players, err = h.registry.Players(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersResponse{
		Players: response.PlayersFromModel(players),
	})
}

// MarkAttendance handles PATCH /api/v1/players/{id}/attendance
func (h *PlayerHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.AttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Present == nil {
		WriteError(w, NewInvalidRequestError("present is required"))
		return
	}

	entry, err := h.registry.UpdateAttendance(r.Context(), model.PlayerID(id), *req.Present)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(&entry))
}

// Attendance handles GET /api/v1/attendance/{sport}
func (h *PlayerHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	roster, err := h.registry.PlayersBySport(r.Context(), sport)
	if err != nil {
		WriteError(w, err)
		return
	}

	partition := views.PartitionAttendance(roster)
	response.JSON(w, http.StatusOK, response.AttendanceFromPartition(sport, partition))
}

// Summary handles GET /api/v1/summary
func (h *PlayerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	players, err := h.registry.Players(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryResponse{
		Total:   views.TotalCount(players),
		BySport: views.CountBySport(players),
	})
}
