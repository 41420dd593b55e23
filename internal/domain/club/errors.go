package club

import "errors"

var (
	ErrClubNotFound         = errors.New("club not found")
	ErrInvalidJoinCode      = errors.New("invalid join code")
	ErrMemberNotFound       = errors.New("the user does not exist in this club")
	ErrAlreadyAdmin         = errors.New("cannot promote an admin")
	ErrOwnerCannotLeave     = errors.New("the owner cannot leave the club - delete the club instead")
	ErrCannotRemoveOwner    = errors.New("owner cannot be removed")
	ErrCannotRemoveSelf     = errors.New("you cannot remove yourself")
	ErrSelfTransfer         = errors.New("cannot transfer ownership to yourself")
	ErrCodeGenerationFailed = errors.New("join code generation failed")

	// ErrCodeTaken is returned by repositories when a commit trips the
	// unique index on the join code column; the allocator re-rolls on it.
	ErrCodeTaken = errors.New("join code already assigned")
)
