package auth

import (
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID      uuid.UUID
	Role        enums.Role
	Permissions []enums.Action
	JTI         string
}

// AccessTokenClaims represents the typed JWT presented by console clients.
// Staff tokens carry an explicit permitted-action set; admin tokens carry
// none and are permitted everything.
type AccessTokenClaims struct {
	UserID      uuid.UUID      `json:"user_id"`
	Role        enums.Role     `json:"role"`
	Permissions []enums.Action `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}
