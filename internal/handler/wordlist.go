package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ClarkyAU/passforge/internal/model"
	"github.com/ClarkyAU/passforge/internal/service"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

// WordlistHandler handles HTTP requests for named wordlist management.
type WordlistHandler struct {
	service *service.WordlistService
}

// NewWordlistHandler creates a new WordlistHandler.
func NewWordlistHandler(svc *service.WordlistService) *WordlistHandler {
	return &WordlistHandler{service: svc}
}

// HandleList handles GET /api/v1/wordlists requests.
func (h *WordlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// HandleGet handles GET /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeWordlistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSave handles PUT /api/v1/wordlists/{name} requests. PUT replaces an
// existing list of the same name wholesale.
func (h *WordlistHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req model.SaveWordlistRequest
	if !decodeBody(w, r, &req, 10<<20, false) {
		return
	}

	resp, err := h.service.Save(r.Context(), chi.URLParam(r, "name"), req)
	if err != nil {
		writeWordlistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeWordlistError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeWordlistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, wordlist.ErrInvalidWord),
		errors.Is(err, wordlist.ErrEmpty):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrWordlistNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
