package domain

import "errors"

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// User roles
const (
	RoleJobSeeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

// Actor identifies the caller of a usecase operation. Handlers build it from
// the authenticated request so authorization checks run on explicit arguments
// instead of ambient context values.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsRecruiter() bool {
	return a.Role == RoleRecruiter
}

func (a Actor) IsJobSeeker() bool {
	return a.Role == RoleJobSeeker
}
