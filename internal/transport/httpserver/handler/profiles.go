package handler

import (
	"net/http"
	"time"

	"clubhub/internal/domain/club"
	"clubhub/internal/domain/profile"
)

type editProfileRequest struct {
	BudgetLimit *float64      `json:"budget_limit"`
	MaximumTime *jsonDuration `json:"maximum_time"`
}

type profileResponse struct {
	ClubID      string       `json:"club_id"`
	UserID      string       `json:"user_id"`
	BudgetLimit float64      `json:"budget_limit"`
	MaximumTime jsonDuration `json:"maximum_time"`
}

func newProfileResponse(p profile.ClubProfile) profileResponse {
	return profileResponse{
		ClubID:      p.ClubID,
		UserID:      p.UserID,
		BudgetLimit: p.BudgetLimit,
		MaximumTime: jsonDuration(p.MaximumTime),
	}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.profiles.GetOrCreate(r.Context(), clubIDParam(r), p.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(*result))
}

func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req editProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}

	input := profile.EditInput{
		ClubID:      clubIDParam(r),
		UserID:      p.ID,
		BudgetLimit: req.BudgetLimit,
	}
	if req.MaximumTime != nil {
		maxTime := time.Duration(*req.MaximumTime)
		input.MaximumTime = &maxTime
	}

	result, err := h.profiles.Edit(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(*result))
}
