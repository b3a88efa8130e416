package middleware

import (
	"context"

	"github.com/adityaraghav/studyspace-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID      contextKey = "user_id"
	ctxRole        contextKey = "actor_role"
	ctxPermissions contextKey = "permissions"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) enums.Role {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(enums.Role); ok {
		return v
	}
	return ""
}

func PermissionsFromContext(ctx context.Context) []enums.Action {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxPermissions).([]enums.Action); ok {
		return v
	}
	return nil
}

// WithActor seeds the authenticated actor into the context. Exposed so
// handler tests can run without minting tokens.
func WithActor(ctx context.Context, userID string, role enums.Role, permissions []enums.Action) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxRole, role)
	if permissions != nil {
		ctx = context.WithValue(ctx, ctxPermissions, permissions)
	}
	return ctx
}
