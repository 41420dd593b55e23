package handler

import (
	"fmt"
	"net/http"
	"time"

	"clubhub/internal/domain/club"
	"clubhub/internal/domain/planner"
	"github.com/go-chi/chi/v5"
)

type createPlanRequest struct {
	ActivityID string     `json:"activity_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

type editPlanRequest struct {
	ActivityID *string    `json:"activity_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

type planResponse struct {
	ID         string     `json:"id"`
	ClubID     string     `json:"club_id"`
	ActivityID *string    `json:"activity_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func newPlanResponse(p planner.FinalPlan) planResponse {
	return planResponse{
		ID:         p.ID,
		ClubID:     p.ClubID,
		ActivityID: p.ActivityID,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (h *Handler) CreateFinalPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleAdmin); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req createPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.ActivityID == "" {
		h.invalidPayload(w, r, fmt.Errorf("activity_id is required"))
		return
	}
	if req.StartTime == nil || req.EndTime == nil {
		h.invalidPayload(w, r, fmt.Errorf("start_time and end_time are required"))
		return
	}

	plan, err := h.planner.CreateFinalPlan(r.Context(), planner.CreateFinalPlanInput{
		ClubID:     clubIDParam(r),
		ActivityID: req.ActivityID,
		StartTime:  *req.StartTime,
		EndTime:    *req.EndTime,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("final plan created", "club_id", plan.ClubID, "plan_id", plan.ID)
	writeJSON(w, http.StatusCreated, newPlanResponse(*plan))
}

func (h *Handler) GetFinalPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	plan, err := h.planner.GetFinalPlan(r.Context(), clubIDParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPlanResponse(*plan))
}

func (h *Handler) EditFinalPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleAdmin); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req editPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}

	plan, err := h.planner.EditFinalPlan(r.Context(), planner.EditFinalPlanInput{
		ClubID:     clubIDParam(r),
		PlanID:     chi.URLParam(r, "plan_id"),
		ActivityID: req.ActivityID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newPlanResponse(*plan))
}

func (h *Handler) DeleteFinalPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleAdmin); err != nil {
		h.respondError(w, r, err)
		return
	}

	err := h.planner.DeleteFinalPlan(r.Context(), clubIDParam(r), chi.URLParam(r, "plan_id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "final plan deleted"})
}
