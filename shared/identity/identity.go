package identity

import (
	"context"
	"dormy/shared/constant"
)

// Identity is the authenticated caller as placed in the request context by
// the auth middleware.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func FromContext(ctx context.Context) Identity {
	id := Identity{}
	id.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	id.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	id.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return id
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, id.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, id.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, id.Role)
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

func (i Identity) Is(role string) bool {
	return i.Role == role
}

// Actor is the value stamped into created_by/modified_by.
func (i Identity) Actor() string {
	if i.UserID == "" {
		return constant.ContextSystem
	}

	return i.UserID
}
