package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/squadhelper/tryouts/internal/services/export"
	"github.com/squadhelper/tryouts/internal/services/registry"
)

// ExportHandler serves PDF downloads of rosters and attendance reports
type ExportHandler struct {
	registry *registry.Service
	export   *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(registryService *registry.Service, exportService *export.Service) *ExportHandler {
	return &ExportHandler{
		registry: registryService,
		export:   exportService,
	}
}

// Players handles GET /api/v1/export/players/{sport}
func (h *ExportHandler) Players(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	roster, err := h.registry.PlayersBySport(r.Context(), sport)
	if err != nil {
		WriteError(w, err)
		return
	}

	writePDFHeaders(w, fmt.Sprintf("%s_players.pdf", slug(sport)))
	if err := h.export.PlayerList(w, sport, roster); err != nil {
		WriteError(w, err)
		return
	}
}

// Attendance handles GET /api/v1/export/attendance/{sport}
func (h *ExportHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	roster, err := h.registry.PlayersBySport(r.Context(), sport)
	if err != nil {
		WriteError(w, err)
		return
	}

	writePDFHeaders(w, fmt.Sprintf("%s_attendance.pdf", slug(sport)))
	if err := h.export.AttendanceReport(w, sport, roster); err != nil {
		WriteError(w, err)
		return
	}
}

func writePDFHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
