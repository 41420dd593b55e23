package planner

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrPlanNotFound     = errors.New("plan does not exist")
	ErrPlanExists       = errors.New("club already has a final plan")
	ErrPlanTimeOrder    = errors.New("end time cannot be before start time")
)
