package domain

import "context"

// Action names an operation checked by the Authorizer.
type Action string

const (
	ActionViewAny Action = "viewAny"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Authorizer decides whether the acting user may perform an action on an
// event. It returns nil to allow and ErrForbidden to deny. The event is nil
// for actions that do not target a specific resource (e.g. viewAny).
// New actions or roles are added by swapping the implementation, not by
// touching the CRUD services.
type Authorizer interface {
	Authorize(ctx context.Context, action Action, actorID string, event *Event) error
}
