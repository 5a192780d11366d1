// Package api exposes HTTP handlers for the planner service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"example.com/planner/internal/auth"
	"example.com/planner/internal/domain"
	"example.com/planner/internal/export"
	"example.com/planner/internal/identity"
	"example.com/planner/internal/observability"
)

// Handler coordinates HTTP requests with the domain and identity services.
type Handler struct {
	entries  *domain.Service
	identity *identity.Service
	renderer export.Renderer
}

// NewHandler builds a Handler.
func NewHandler(entries *domain.Service, ident *identity.Service, renderer export.Renderer) *Handler {
	return &Handler{entries: entries, identity: ident, renderer: renderer}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/auth/signup", h.signUp)
	mux.HandleFunc("/v1/auth/login", h.signIn)
	mux.HandleFunc("/v1/entries/", h.entryByDate)
	mux.HandleFunc("/v1/months", h.month)
	mux.HandleFunc("/v1/exports/month", h.exportMonth)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	session, err := h.identity.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, identity.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", err.Error())
		default:
			log.Printf("sign-up failed: %v", err)
			writeError(w, http.StatusInternalServerError, "server_error", "sign-up failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{UserID: session.UserID, Token: session.Token})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	session, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, identity.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		default:
			log.Printf("sign-in failed: %v", err)
			writeError(w, http.StatusInternalServerError, "server_error", "sign-in failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{UserID: session.UserID, Token: session.Token})
}

func (h *Handler) entryByDate(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimPrefix(r.URL.Path, "/v1/entries/")
	if date == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing entry date")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getEntry(w, r, date)
	case http.MethodPut:
		h.saveEntry(w, r, date)
	case http.MethodDelete:
		h.deleteEntry(w, r, date)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request, date string) {
	claims, ok := requireScope(w, r, auth.ScopeEntriesRead, auth.ScopeEntriesWrite)
	if !ok {
		return
	}

	entry, err := h.entries.GetEntry(r.Context(), claims.Subject, date)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no entry for date")
			return
		}
		log.Printf("get entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, toEntryView(*entry))
}

func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request, date string) {
	claims, ok := requireScope(w, r, auth.ScopeEntriesWrite)
	if !ok {
		return
	}

	var req SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	entry, err := h.entries.SaveEntry(r.Context(), claims.Subject, date, domain.EntryInput{
		Names:    req.Names,
		Location: req.Location,
		Start:    req.Start,
		End:      req.End,
	})
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		log.Printf("save entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "save failed")
		return
	}

	writeJSON(w, http.StatusOK, toEntryView(*entry))
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request, date string) {
	claims, ok := requireScope(w, r, auth.ScopeEntriesWrite)
	if !ok {
		return
	}

	if err := h.entries.DeleteEntry(r.Context(), claims.Subject, date); err != nil {
		log.Printf("delete entry failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := requireScope(w, r, auth.ScopeEntriesRead, auth.ScopeEntriesWrite)
	if !ok {
		return
	}

	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}
	selected := r.URL.Query().Get("selected")

	data, markers, err := h.entries.MonthView(r.Context(), claims.Subject, year, month, selected)
	if err != nil {
		log.Printf("month view failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "month lookup failed")
		return
	}

	resp := MonthResponse{
		Year:    data.Year,
		Month:   data.Month,
		Entries: make(map[string]EntryView, len(data.Entries)),
		Markers: make(map[string]MarkerView, len(markers)),
	}
	for date, entry := range data.Entries {
		resp.Entries[date] = toEntryView(entry)
	}
	for date, marker := range markers {
		resp.Markers[date] = MarkerView{HasEntry: marker.HasEntry, Selected: marker.Selected}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) exportMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := requireScope(w, r, auth.ScopeEntriesRead, auth.ScopeEntriesWrite)
	if !ok {
		return
	}

	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	data, _, err := h.entries.MonthView(r.Context(), claims.Subject, year, month, "")
	if err != nil {
		log.Printf("export month lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "month lookup failed")
		return
	}

	doc, err := export.BuildDocument(export.MonthLabel(year, month), data.Entries)
	if err != nil {
		if errors.Is(err, export.ErrNoEntries) {
			writeError(w, http.StatusUnprocessableEntity, "no_entries", "no entries for this month")
			return
		}
		log.Printf("export build failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "export failed")
		return
	}

	artifact, err := h.renderer.Render(r.Context(), doc)
	if err != nil {
		log.Printf("export render failed: %v", err)
		writeError(w, http.StatusInternalServerError, "server_error", "export failed")
		return
	}
	observability.RecordExportGenerated()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=planner-%04d-%02d.pdf", year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

func requireScope(w http.ResponseWriter, r *http.Request, scopes ...string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	for _, scope := range scopes {
		if claims.HasScope(scope) {
			return claims, true
		}
	}
	writeError(w, http.StatusForbidden, "forbidden", "scope "+scopes[0]+" required")
	return nil, false
}

func monthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing or invalid year parameter")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing or invalid month parameter")
		return 0, 0, false
	}
	return year, month, true
}

func isValidationError(err error) bool {
	for _, candidate := range []error{
		domain.ErrInvalidDate,
		domain.ErrNoNames,
		domain.ErrNoLocation,
		domain.ErrMissingTime,
		domain.ErrInvalidClock,
		domain.ErrNonPositiveDuration,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

// CredentialsRequest is the payload for sign-up and sign-in.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse returns the authenticated session token.
type SessionResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// SaveEntryRequest is the payload for PUT /v1/entries/{date}.
type SaveEntryRequest struct {
	Names    []string `json:"names"`
	Location string   `json:"location"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
}

// EntryView exposes full details about a day entry.
type EntryView struct {
	EntryID    string    `json:"entry_id"`
	Date       string    `json:"date"`
	Names      []string  `json:"names"`
	Location   string    `json:"location"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	TotalHours float64   `json:"total_hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MarkerView flags a calendar day for display.
type MarkerView struct {
	HasEntry bool `json:"has_entry"`
	Selected bool `json:"selected"`
}

// MonthResponse packages a month's entries and display markers.
type MonthResponse struct {
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	Entries map[string]EntryView  `json:"entries"`
	Markers map[string]MarkerView `json:"markers"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toEntryView(entry domain.DayEntry) EntryView {
	return EntryView{
		EntryID:    entry.ID,
		Date:       entry.Date,
		Names:      entry.Names,
		Location:   entry.Location,
		Start:      entry.WorkHours.Start,
		End:        entry.WorkHours.End,
		TotalHours: entry.WorkHours.Total,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}
