package services

import (
	"context"

	"eventup/internal/domain"
)

type ownerPolicy struct{}

// NewOwnerPolicy returns the default Authorizer: anyone may list events,
// only the owner may update one, and any authenticated actor may delete.
// The permissive delete mirrors the behavior this API replaces; closing the
// gap is a matter of swapping in a stricter policy.
func NewOwnerPolicy() domain.Authorizer {
	return ownerPolicy{}
}

func (ownerPolicy) Authorize(ctx context.Context, action domain.Action, actorID string, event *domain.Event) error {
	switch action {
	case domain.ActionViewAny:
		return nil
	case domain.ActionUpdate:
		if event == nil || event.OwnerID != actorID {
			return domain.ErrForbidden
		}
		return nil
	case domain.ActionDelete:
		if actorID == "" {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
