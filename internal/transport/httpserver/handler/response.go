package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"clubhub/internal/domain/authz"
	"clubhub/internal/domain/club"
	"clubhub/internal/domain/planner"
	"clubhub/internal/domain/profile"
	"clubhub/internal/domain/user"
	"clubhub/internal/transport/httpserver/middleware"
)

var (
	errNameRequired  = errors.New("name is required")
	errEmailRequired = errors.New("email is required")
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// respondError translates domain sentinels into the four client-facing
// status classes. Anything unmatched is an internal failure and surfaces as
// an opaque 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case isNotFound(err):
		h.log.BusinessError("request rejected", err, "path", r.URL.Path)
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case isBusinessRule(err):
		h.log.BusinessError("request rejected", err, "path", r.URL.Path)
		writeError(w, http.StatusBadRequest, "business_rule_violation", err.Error())
	default:
		h.log.InternalError("request failed", err, "path", r.URL.Path, "method", r.Method)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// Absence and permission failures share this bucket so the two are
// indistinguishable on the wire.
func isNotFound(err error) bool {
	return errors.Is(err, club.ErrClubNotFound) ||
		errors.Is(err, club.ErrInvalidJoinCode) ||
		errors.Is(err, planner.ErrActivityNotFound) ||
		errors.Is(err, planner.ErrPlanNotFound) ||
		errors.Is(err, profile.ErrProfileNotFound) ||
		errors.Is(err, user.ErrUserNotFound)
}

func isBusinessRule(err error) bool {
	return errors.Is(err, authz.ErrMissingClubID) ||
		errors.Is(err, club.ErrMemberNotFound) ||
		errors.Is(err, club.ErrAlreadyAdmin) ||
		errors.Is(err, club.ErrOwnerCannotLeave) ||
		errors.Is(err, club.ErrCannotRemoveOwner) ||
		errors.Is(err, club.ErrCannotRemoveSelf) ||
		errors.Is(err, club.ErrSelfTransfer) ||
		errors.Is(err, planner.ErrPlanExists) ||
		errors.Is(err, planner.ErrPlanTimeOrder)
}

func decodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (h *Handler) invalidPayload(w http.ResponseWriter, r *http.Request, err error) {
	h.log.BusinessError("payload rejected", err, "path", r.URL.Path)
	writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
}

// principal pulls the authenticated user injected by the auth middleware.
// The second return mirrors the context lookup; handlers turn a miss into
// the standard 401.
func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (authz.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.respondError(w, r, authz.ErrUnauthenticated)
		return authz.Principal{}, false
	}
	return p, true
}
