package service

import "course_review_backend/internal/model"

// Caller identifies who is acting on a review.
type Caller struct {
	UserID uint
	Role   model.UserRole
}

type ReviewAuthorizer interface {
	IsOwnerOrElevated(review *model.Review, caller Caller) bool
}

// OwnerOrAdmin lets the author and administrators change a review.
type OwnerOrAdmin struct{}

func (OwnerOrAdmin) IsOwnerOrElevated(review *model.Review, caller Caller) bool {
	return review.UserID == caller.UserID || caller.Role.IsElevated()
}
