// internal/app/system/httpjson/httpjson.go

// Package httpjson centralizes JSON response writing for the API features.
//
// Every endpoint answers with either a document (or list of documents) or
// an {"error": "..."} object; the helpers here keep the Content-Type and
// encoding handling in one place so feature handlers stay focused on their
// store calls.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kestrelworks/backoffice/internal/app/store/seqfield"
	"go.mongodb.org/mongo-driver/mongo"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// messageBody is the wire shape of acknowledgement-only responses
// (deletes, reply dispatch).
type messageBody struct {
	Message string `json:"message"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status code. The message is
// passed through verbatim; callers decide what the client gets to see.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// Message writes {"message": msg} with a 200 status.
func Message(w http.ResponseWriter, msg string) {
	Write(w, http.StatusOK, messageBody{Message: msg})
}

// Decode reads the request body into dst. Unknown fields are ignored, like
// the document store itself would.
func Decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// StoreError maps a store error onto the API's status codes: absent
// documents are 404 (with the feature's own message), a bad sequence
// index is the client's fault, a stale version token is a conflict, and
// anything else is a 500 carrying the raw error text.
func StoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, seqfield.ErrNotFound):
		Error(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, seqfield.ErrIndexOutOfRange):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, seqfield.ErrStaleDocument):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
