package coaching

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrForbidden          = errors.New("operation not allowed for this role")
	ErrNoCoachProfile     = errors.New("coach profile missing")
	ErrAlreadyAssigned    = errors.New("client already has an active coach")
	ErrRequestPending     = errors.New("client already has a pending coach request")
	ErrAlreadyDecided     = errors.New("request already decided")
)
