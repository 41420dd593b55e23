package handler

import (
	"net/http"
	"time"

	"clubhub/internal/domain/club"
	"clubhub/internal/domain/planner"
	"github.com/go-chi/chi/v5"
)

type addActivityRequest struct {
	Name        string       `json:"name"`
	Cost        float64      `json:"cost"`
	Duration    jsonDuration `json:"duration"`
	Description *string      `json:"description"`
	Link        *string      `json:"link"`
	Location    *string      `json:"location"`
}

type activityResponse struct {
	ID          string       `json:"id"`
	ClubID      string       `json:"club_id"`
	Name        string       `json:"name"`
	Cost        float64      `json:"cost"`
	Duration    jsonDuration `json:"duration"`
	Description string       `json:"description"`
	Link        *string      `json:"link"`
	Location    *string      `json:"location"`
	CreatedAt   time.Time    `json:"created_at"`
}

func newActivityResponse(a planner.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		ClubID:      a.ClubID,
		Name:        a.Name,
		Cost:        a.Cost,
		Duration:    jsonDuration(a.Duration),
		Description: a.Description,
		Link:        a.Link,
		Location:    a.Location,
		CreatedAt:   a.CreatedAt,
	}
}

func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req addActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.Name == "" {
		h.invalidPayload(w, r, errNameRequired)
		return
	}

	activity, err := h.planner.AddActivity(r.Context(), planner.AddActivityInput{
		ClubID:      clubIDParam(r),
		Name:        req.Name,
		Cost:        req.Cost,
		Duration:    time.Duration(req.Duration),
		Description: req.Description,
		Link:        req.Link,
		Location:    req.Location,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("activity added", "club_id", activity.ClubID, "activity_id", activity.ID)
	writeJSON(w, http.StatusCreated, newActivityResponse(*activity))
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	activities, err := h.planner.ListActivities(r.Context(), clubIDParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, newActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleAdmin); err != nil {
		h.respondError(w, r, err)
		return
	}

	err := h.planner.DeleteActivity(r.Context(), clubIDParam(r), chi.URLParam(r, "activity_id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "activity deleted"})
}
