package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	pkgAuth "github.com/adityaraghav/studyspace-backend/pkg/auth"
	"github.com/adityaraghav/studyspace-backend/pkg/config"
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"

	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/internal/members"
	"github.com/adityaraghav/studyspace-backend/internal/renewals"
)

type stubMembers struct{}

func (stubMembers) EditContext(context.Context, int64) (*members.EditContextDTO, error) {
	return &members.EditContextDTO{}, nil
}

func (stubMembers) Update(context.Context, int64, members.UpdateInput) (*members.MemberDTO, error) {
	return &members.MemberDTO{}, nil
}

func (stubMembers) Delete(context.Context, int64) error { return nil }

type stubRenewals struct{}

func (stubRenewals) ListExpired(context.Context) ([]renewals.ExpiredMembershipDTO, error) {
	return []renewals.ExpiredMembershipDTO{}, nil
}

func (stubRenewals) Renew(context.Context, int64, renewals.RenewInput) (*renewals.RenewedDTO, error) {
	return &renewals.RenewedDTO{}, nil
}

type stubReference struct{}

func (stubReference) Branches(context.Context) ([]gateway.Branch, error) {
	return []gateway.Branch{}, nil
}

func (stubReference) Shifts(context.Context) ([]gateway.Shift, error) {
	return []gateway.Shift{}, nil
}

func (stubReference) Seats(context.Context, gateway.SeatFilter) ([]gateway.Seat, error) {
	return []gateway.Seat{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", CORSOrigins: []string{"http://localhost:3000"}},
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "studyspace-test", ExpirationMinutes: 5},
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(Dependencies{
		Config:    testConfig(),
		Logger:    logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Registry:  prometheus.NewRegistry(),
		Members:   stubMembers{},
		Renewals:  stubRenewals{},
		Reference: stubReference{},
	})
}

func mintToken(t *testing.T, role enums.Role, permissions []enums.Action) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:      uuid.New(),
		Role:        role,
		Permissions: permissions,
		JTI:         uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestPublicRoutesNeedNoAuth(t *testing.T) {
	router := testRouter(t)

	if resp := doRequest(t, router, http.MethodGet, "/api/public/ping", ""); resp.Code != http.StatusOK {
		t.Fatalf("public ping status %d", resp.Code)
	}
	if resp := doRequest(t, router, http.MethodGet, "/health/live", ""); resp.Code != http.StatusOK {
		t.Fatalf("health live status %d", resp.Code)
	}
	if resp := doRequest(t, router, http.MethodGet, "/metrics", ""); resp.Code != http.StatusOK {
		t.Fatalf("metrics status %d", resp.Code)
	}
}

func TestPrivateRoutesRejectAnonymous(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/api/v1/ping", "/api/v1/members/expired", "/api/v1/branches"} {
		if resp := doRequest(t, router, http.MethodGet, path, ""); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status %d", path, resp.Code)
		}
	}
}

func TestAdminPassesEveryGate(t *testing.T) {
	router := testRouter(t)
	token := mintToken(t, enums.RoleAdmin, nil)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/members/expired"},
		{http.MethodGet, "/api/v1/members/12"},
		{http.MethodDelete, "/api/v1/members/12"},
		{http.MethodGet, "/api/v1/branches"},
		{http.MethodGet, "/api/v1/shifts"},
		{http.MethodGet, "/api/v1/seats"},
	}
	for _, tc := range cases {
		if resp := doRequest(t, router, tc.method, tc.path, token); resp.Code != http.StatusOK {
			t.Fatalf("%s %s: status %d body %s", tc.method, tc.path, resp.Code, resp.Body.String())
		}
	}
}

func TestStaffDefaultsCanViewButNotDelete(t *testing.T) {
	router := testRouter(t)
	token := mintToken(t, enums.RoleStaff, nil)

	if resp := doRequest(t, router, http.MethodGet, "/api/v1/members/expired", token); resp.Code != http.StatusOK {
		t.Fatalf("staff view: status %d", resp.Code)
	}
	if resp := doRequest(t, router, http.MethodDelete, "/api/v1/members/12", token); resp.Code != http.StatusForbidden {
		t.Fatalf("staff delete: status %d", resp.Code)
	}
	if resp := doRequest(t, router, http.MethodPut, "/api/v1/members/12", token); resp.Code != http.StatusForbidden {
		t.Fatalf("staff edit: status %d", resp.Code)
	}
}

func TestStaffGrantUnlocksEdit(t *testing.T) {
	router := testRouter(t)
	token := mintToken(t, enums.RoleStaff, []enums.Action{enums.ActionViewMembers, enums.ActionEditMembers})

	resp := doRequest(t, router, http.MethodPut, "/api/v1/members/12", token)
	// The gate passes; the empty body then fails validation downstream.
	if resp.Code == http.StatusForbidden || resp.Code == http.StatusUnauthorized {
		t.Fatalf("granted staff blocked: status %d", resp.Code)
	}
}
