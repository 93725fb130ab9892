package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lumiere-dining/api/internal/auth"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/handler"
	mw "github.com/lumiere-dining/api/internal/middleware"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/store"
)

const testSecret = "test-secret"

func setupAuthRouter(st *store.Store) chi.Router {
	h := handler.NewAuthHandler(st.Users, testSecret)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(testSecret))
		h.RegisterProtectedRoutes(r)
	})
	return r
}

func insertUser(t *testing.T, st *store.Store, email, password, status string) model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := model.User{
		ID:           "u-" + email,
		Name:         "Test User",
		Email:        email,
		Role:         enum.UserRoleAdmin,
		Status:       status,
		PasswordHash: hash,
		JoinedAt:     time.Now().UTC(),
	}
	st.Users.Insert(u)
	return u
}

func TestLogin_Success(t *testing.T) {
	st := store.New()
	insertUser(t, st, "marcus@lumiere.com", "lumiere2024", enum.UserStatusActive)
	router := setupAuthRouter(st)

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email":    "marcus@lumiere.com",
		"password": "lumiere2024",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeMap(t, rr)
	if resp["access_token"] == "" || resp["access_token"] == nil {
		t.Error("expected an access token")
	}
	if resp["refresh_token"] == "" || resp["refresh_token"] == nil {
		t.Error("expected a refresh token")
	}
	user := resp["user"].(map[string]interface{})
	if _, ok := user["password_hash"]; ok {
		t.Error("password hash must not be serialized")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	st := store.New()
	insertUser(t, st, "marcus@lumiere.com", "lumiere2024", enum.UserStatusActive)
	router := setupAuthRouter(st)

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email":    "marcus@lumiere.com",
		"password": "wrong",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestLogin_InactiveAccountLooksLikeBadCredentials(t *testing.T) {
	st := store.New()
	insertUser(t, st, "emma@lumiere.com", "lumiere2024", enum.UserStatusInactive)
	router := setupAuthRouter(st)

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email":    "emma@lumiere.com",
		"password": "lumiere2024",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	resp := decodeMap(t, rr)
	if resp["error"] != "invalid credentials" {
		t.Errorf("error message must not leak account state: got %v", resp["error"])
	}
}

func TestRefresh_IssuesNewTokenPair(t *testing.T) {
	st := store.New()
	u := insertUser(t, st, "marcus@lumiere.com", "lumiere2024", enum.UserStatusActive)
	router := setupAuthRouter(st)

	refresh, err := auth.GenerateRefreshToken(testSecret, u.ID)
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	rr := doRequest(t, router, "POST", "/auth/refresh", map[string]string{"refresh_token": refresh})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	resp := decodeMap(t, rr)
	if resp["access_token"] == "" || resp["access_token"] == nil {
		t.Error("expected an access token")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	st := store.New()
	u := insertUser(t, st, "marcus@lumiere.com", "lumiere2024", enum.UserStatusActive)
	router := setupAuthRouter(st)

	access, err := auth.GenerateToken(testSecret, u.ID, u.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rr := doRequest(t, router, "POST", "/auth/refresh", map[string]string{"refresh_token": access})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestMe_RequiresToken(t *testing.T) {
	st := store.New()
	router := setupAuthRouter(st)

	rr := doRequest(t, router, "GET", "/auth/me", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	st := store.New()
	u := insertUser(t, st, "marcus@lumiere.com", "lumiere2024", enum.UserStatusActive)
	router := setupAuthRouter(st)

	token, err := auth.GenerateToken(testSecret, u.ID, u.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := newAuthedRequest(t, "GET", "/auth/me", token)
	rr := serve(router, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	resp := decodeMap(t, rr)
	if resp["email"] != "marcus@lumiere.com" {
		t.Errorf("email: got %v, want marcus@lumiere.com", resp["email"])
	}
}
