package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// Actor is the identity an operation runs on behalf of. It is always passed
// explicitly; the engine never reads it from request or session state.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// SystemActor is used by scheduled sweeps and recomputation cascades.
var SystemActor = Actor{UserID: uuid.Nil, Role: RoleAdmin}

func (a Actor) CanMutate() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

func (a Actor) CanRead() bool {
	return a.CanMutate() || a.Role == RoleViewer
}

// Authorize returns a ForbiddenError when the actor may not perform a mutating action.
func (a Actor) Authorize(action string) error {
	if !a.CanMutate() {
		return ForbiddenError{ActorID: a.UserID, Action: action}
	}
	return nil
}

func (a Actor) AuthorizeRead(action string) error {
	if !a.CanRead() {
		return ForbiddenError{ActorID: a.UserID, Action: action}
	}
	return nil
}
