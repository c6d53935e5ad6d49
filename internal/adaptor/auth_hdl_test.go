package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/dto/request"
	"hunarhub/internal/dto/response"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	registerErr error
	loginErr    error
	revoked     []string
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &response.RegisterResponse{UserID: uuid.NewString()}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.SessionUser, *entity.Session, error) {
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	return &response.SessionUser{ID: session.UserID.String(), Name: "Asha", Role: "customer"}, session, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

func authTestConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{CookieName: "session_token", ExpiryHours: 24},
	}
}

func newAuthRouter(svc *fakeAuthService) *chi.Mux {
	h := NewAuthHandler(svc, authTestConfig(), zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestRegisterHandlerCreated(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	rec := postJSON(t, router, "/api/register", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "Secret1!", "role": "customer",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.NotNil(t, envelope.Data)
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{registerErr: fmt.Errorf("email already registered")})

	rec := postJSON(t, router, "/api/register", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "Secret1!", "role": "customer",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
}

func TestRegisterHandlerValidation(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	// Missing role and malformed email fail in the handler's validation
	rec := postJSON(t, router, "/api/register", map[string]string{
		"name": "Asha", "email": "not-an-email", "password": "Secret1!",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.NotNil(t, envelope.Errors)
}

func TestLoginHandlerSetsCookie(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	rec := postJSON(t, router, "/api/login", map[string]string{
		"email": "asha@example.com", "password": "Secret1!",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginHandlerBadCredentialShapesMatch(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{loginErr: fmt.Errorf("invalid credentials")})

	recUnknown := postJSON(t, router, "/api/login", map[string]string{
		"email": "nobody@example.com", "password": "Secret1!",
	})
	recWrongPass := postJSON(t, router, "/api/login", map[string]string{
		"email": "asha@example.com", "password": "Wrong1!pass",
	})

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPass.Code)
	// Byte-identical bodies: no way to tell which credential was wrong
	assert.Equal(t, recUnknown.Body.String(), recWrongPass.Body.String())

	assert.Empty(t, recUnknown.Result().Cookies())
}

func TestLogoutHandlerRevokesAndExpiresCookie(t *testing.T) {
	svc := &fakeAuthService{}
	h := NewAuthHandler(svc, authTestConfig(), zap.NewNop())

	token := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req = req.WithContext(utils.SetTokenContext(req.Context(), token))
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{token}, svc.revoked)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
