package handler

import (
	"context"
	"net/http"
	"time"

	"clubhub/internal/domain/club"
)

type clubResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	OwnerID     string               `json:"owner_id"`
	JoinEnabled bool                 `json:"join_enabled"`
	JoinCode    string               `json:"join_code,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	Owner       *club.MemberProfile  `json:"owner,omitempty"`
	Admins      []club.MemberProfile `json:"admins,omitempty"`
	Members     []club.MemberProfile `json:"members,omitempty"`
}

// newClubResponse shapes a club for the wire. The join code is an owner and
// admin level detail; plain member views drop it.
func newClubResponse(info club.Info, includeJoin bool) clubResponse {
	resp := clubResponse{
		ID:          info.Club.ID,
		Name:        info.Club.Name,
		Description: info.Club.Description,
		OwnerID:     info.Club.OwnerID,
		JoinEnabled: info.Club.JoinEnabled,
		CreatedAt:   info.Club.CreatedAt,
		Owner:       info.Owner,
		Admins:      info.Admins,
		Members:     info.Members,
	}
	if includeJoin {
		resp.JoinCode = info.Club.JoinCode
	}
	return resp
}

type createClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	JoinEnabled bool   `json:"join_enabled"`
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req createClubRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.Name == "" {
		h.invalidPayload(w, r, errNameRequired)
		return
	}

	created, err := h.clubs.Create(r.Context(), club.CreateInput{
		OwnerID:     p.ID,
		Name:        req.Name,
		Description: req.Description,
		JoinEnabled: req.JoinEnabled,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("club created", "club_id", created.ID, "owner_id", p.ID)
	writeJSON(w, http.StatusCreated, newClubResponse(club.Info{Club: *created}, true))
}

func (h *Handler) ListOwnedClubs(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	clubs, err := h.clubs.ListOwned(r.Context(), p.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.clubList(r.Context(), clubs, detailedQuery(r), true)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListMemberClubs(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	clubs, err := h.clubs.ListMemberOf(r.Context(), p.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.clubList(r.Context(), clubs, detailedQuery(r), false)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) clubList(ctx context.Context, clubs []club.Club, detailed, includeJoin bool) ([]clubResponse, error) {
	resp := make([]clubResponse, 0, len(clubs))
	for _, c := range clubs {
		info := club.Info{Club: c}
		if detailed {
			resolved, err := h.clubs.Info(ctx, c.ID, true)
			if err != nil {
				return nil, err
			}
			info = *resolved
		}
		resp = append(resp, newClubResponse(info, includeJoin))
	}
	return resp, nil
}

func (h *Handler) GetClubInfo(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	info, err := h.clubs.Info(r.Context(), clubIDParam(r), detailedQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newClubResponse(*info, false))
}

func (h *Handler) AdminClubInfo(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleAdmin); err != nil {
		h.respondError(w, r, err)
		return
	}

	info, err := h.clubs.Info(r.Context(), clubIDParam(r), detailedQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newClubResponse(*info, true))
}

func (h *Handler) MyStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	status, err := h.clubs.MyStatus(r.Context(), clubIDParam(r), p.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type joinClubRequest struct {
	JoinCode string `json:"join_code"`
}

func (h *Handler) JoinClub(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req joinClubRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}

	joined, err := h.clubs.JoinByCode(r.Context(), p.ID, req.JoinCode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("member joined", "club_id", joined.ID, "user_id", p.ID)
	writeJSON(w, http.StatusOK, newClubResponse(club.Info{Club: *joined}, false))
}

func (h *Handler) LeaveClub(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleMember); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.clubs.Leave(r.Context(), clubIDParam(r), p.ID); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "left the club"})
}

type memberEmailRequest struct {
	Email string `json:"email"`
}

func (h *Handler) PromoteMember(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleOwner); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req memberEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.Email == "" {
		h.invalidPayload(w, r, errEmailRequired)
		return
	}

	if err := h.clubs.PromoteMember(r.Context(), clubIDParam(r), req.Email); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "member promoted to admin"})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleOwner); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req memberEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.Email == "" {
		h.invalidPayload(w, r, errEmailRequired)
		return
	}

	if err := h.clubs.RemoveMember(r.Context(), clubIDParam(r), p.Email, req.Email); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "member removed"})
}

type transferClubRequest struct {
	NewOwnerEmail string `json:"new_owner_email"`
}

func (h *Handler) TransferClub(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleOwner); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req transferClubRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}
	if req.NewOwnerEmail == "" {
		h.invalidPayload(w, r, errEmailRequired)
		return
	}

	if err := h.clubs.TransferOwnership(r.Context(), clubIDParam(r), req.NewOwnerEmail); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("ownership transferred", "club_id", clubIDParam(r), "previous_owner", p.ID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "ownership transferred"})
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleOwner); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.clubs.Delete(r.Context(), clubIDParam(r)); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info("club deleted", "club_id", clubIDParam(r), "owner_id", p.ID)
	writeJSON(w, http.StatusNoContent, nil)
}

type joinStatusRequest struct {
	Enabled bool `json:"enabled"`
}

type joinStatusResponse struct {
	JoinEnabled bool   `json:"join_enabled"`
	JoinCode    string `json:"join_code,omitempty"`
}

func (h *Handler) SetJoinStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if _, err := h.authz.Authorize(r.Context(), p, clubIDParam(r), club.RoleOwner); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req joinStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidPayload(w, r, err)
		return
	}

	updated, err := h.clubs.SetJoinStatus(r.Context(), clubIDParam(r), req.Enabled)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, joinStatusResponse{
		JoinEnabled: updated.JoinEnabled,
		JoinCode:    updated.JoinCode,
	})
}
