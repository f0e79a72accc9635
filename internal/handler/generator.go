package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/model"
	"github.com/ClarkyAU/passforge/internal/service"
)

// GeneratorHandler handles HTTP requests for password and passphrase
// generation.
type GeneratorHandler struct {
	passwords   *service.GeneratorService
	passphrases *service.PassphraseService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(passwords *service.GeneratorService, passphrases *service.PassphraseService) *GeneratorHandler {
	return &GeneratorHandler{passwords: passwords, passphrases: passphrases}
}

// HandleGeneratePassword handles POST /api/v1/generate/password requests.
// An empty body generates with all defaults.
func (h *GeneratorHandler) HandleGeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeBody(w, r, &req, 1<<20, true) {
		return
	}

	resp, err := h.passwords.GeneratePassword(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePassphrase handles POST /api/v1/generate/passphrase requests.
// An empty body generates with all defaults.
func (h *GeneratorHandler) HandleGeneratePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req, 1<<20, true) {
		return
	}

	resp, err := h.passphrases.GeneratePassphrase(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err),
			errors.Is(err, service.ErrUnknownWordlist),
			errors.Is(err, service.ErrStoreDisabled):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// isValidationError reports whether err is one of the generator's request
// validation failures, all of which map to 400.
func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrNegativeLength) ||
		errors.Is(err, crypto.ErrNegativeCount) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrEmptyCategory) ||
		errors.Is(err, crypto.ErrNoCharacterTypes) ||
		errors.Is(err, crypto.ErrFillPoolEmpty) ||
		errors.Is(err, crypto.ErrWordCountTooSmall) ||
		errors.Is(err, crypto.ErrWordlistEmpty) ||
		errors.Is(err, crypto.ErrWordCountExceedsList)
}

// decodeBody decodes a JSON request body into v, writing the error response
// itself when decoding fails. allowEmpty treats an absent body as a valid
// zero-value request, which the generation endpoints read as "all defaults".
func decodeBody(w http.ResponseWriter, r *http.Request, v any, maxBytes int64, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return true
	}
	if err.Error() == "http: request body too large" {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
