// Package apperr clasifica errores por tipo y los traduce a respuestas HTTP.
//
// Los adapters de storage devuelven ErrNotFound / ErrConflict (envueltos);
// los services los convierten en *Error con un Kind y un mensaje apto para cliente.
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// Error lleva un Kind y un mensaje que se puede mostrar al cliente.
// Err (opcional) es la causa y nunca se serializa.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Authentication(msg string) *Error { return New(KindAuthentication, msg) }
func Authorization(msg string) *Error  { return New(KindAuthorization, msg) }
func Validation(msg string) *Error     { return New(KindValidation, msg) }
func NotFound(msg string) *Error       { return New(KindNotFound, msg) }
func Conflict(msg string) *Error       { return New(KindConflict, msg) }

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal error", err)
}

// KindOf resuelve el Kind de cualquier error. Los sentinels de storage sin
// envolver se mapean a su Kind natural; el resto es Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage es el texto que ve el cliente. Internal nunca expone la causa.
func PublicMessage(err error) string {
	kind := KindOf(err)
	if kind == KindInternal {
		return "internal error"
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Msg != "" {
		return ae.Msg
	}
	switch kind {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "already exists"
	default:
		return string(kind)
	}
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON escribe {"success":false,"message":...} con el status del Kind.
func WriteJSON(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(KindOf(err)))
	_ = json.NewEncoder(w).Encode(errorBody{Success: false, Message: PublicMessage(err)})
}
