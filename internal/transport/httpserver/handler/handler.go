package handler

import (
	"clubhub/internal/domain/authz"
	"clubhub/internal/domain/club"
	"clubhub/internal/domain/planner"
	"clubhub/internal/domain/profile"
	"clubhub/pkg/logger"
)

// Handler carries the domain services behind the HTTP surface. Role gating
// happens here, through the evaluator, before any service call.
type Handler struct {
	clubs    *club.Service
	planner  *planner.Service
	profiles *profile.Service
	authz    *authz.Evaluator
	log      logger.Logger
}

func New(clubs *club.Service, plannerSvc *planner.Service, profiles *profile.Service, evaluator *authz.Evaluator, log logger.Logger) *Handler {
	return &Handler{
		clubs:    clubs,
		planner:  plannerSvc,
		profiles: profiles,
		authz:    evaluator,
		log:      log,
	}
}
