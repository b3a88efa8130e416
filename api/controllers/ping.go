package controllers

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/middleware"
	"github.com/adityaraghav/studyspace-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if role := middleware.RoleFromContext(r.Context()); role != "" {
			payload["actor_role"] = role.String()
		}
		responses.WriteSuccess(w, payload)
	}
}
