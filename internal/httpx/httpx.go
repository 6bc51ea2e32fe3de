// Package httpx holds the JSON request/response helpers shared by every
// handler: body decoding, response writing, pagination parsing, and the
// single place where taxonomy errors become HTTP status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/alexken/stockroom/internal/apperror"
)

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Decode parses the request body into dst. A malformed body is a client
// error, reported as 400 by the caller via Error.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &badRequestError{err}
	}
	return nil
}

type badRequestError struct{ err error }

func (e *badRequestError) Error() string { return "malformed request body: " + e.err.Error() }

// Error maps err onto the HTTP status dictated by the taxonomy and writes
// the standard {"error": ...} body. Unrecognised errors become a 500 with a
// generic message; the detail is logged, not leaked.
func Error(w http.ResponseWriter, err error) {
	var badReq *badRequestError
	switch {
	case errors.As(err, &badReq):
		Respond(w, http.StatusBadRequest, map[string]string{"error": badReq.Error()})
	case errors.Is(err, apperror.ErrValidation):
		Respond(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		Respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, apperror.ErrConflict):
		Respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		Respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

const defaultLimit = 100

// LimitOffset reads limit/offset query parameters, applying the default
// page size when absent. Negative or unparseable values are rejected.
func LimitOffset(r *http.Request) (limit, offset int, err error) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			return 0, 0, apperror.Validation("invalid limit %q", v)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			return 0, 0, apperror.Validation("invalid offset %q", v)
		}
	}
	return limit, offset, nil
}
