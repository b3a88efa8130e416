package middleware

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

// RequireAction gates a route on the actor's role permitting the action.
// Admins pass everything; staff pass only what their grant set covers.
func RequireAction(action enums.Action, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if !role.Can(action, PermissionsFromContext(r.Context())) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "not permitted to "+string(action)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
