package handler

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prelimpro/go-api/internal/config"
	"github.com/prelimpro/go-api/internal/domain"
	jwtinfra "github.com/prelimpro/go-api/internal/infrastructure/jwt"
	"github.com/prelimpro/go-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockProjectSvc struct{ mock.Mock }

func (m *mockProjectSvc) Create(ctx context.Context, ownerUserID string, req domain.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, ownerUserID, req)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectSvc) List(ctx context.Context, ownerUserID string) ([]domain.Project, error) {
	args := m.Called(ctx, ownerUserID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectSvc) Get(ctx context.Context, ownerUserID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, ownerUserID, projectID)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectSvc) Update(ctx context.Context, ownerUserID, projectID string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, ownerUserID, projectID, req)
	if p, _ := args.Get(0).(*domain.Project); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectSvc) Delete(ctx context.Context, ownerUserID, projectID string) error {
	return m.Called(ctx, ownerUserID, projectID).Error(0)
}

// --- helpers ---

// newTestJWTProvider generates a fresh RSA key pair and returns a *jwtinfra.Provider.
func newTestJWTProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))

	p, err := jwtinfra.NewProvider(&config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

// bearerReq builds a request with a signed Bearer token for the given user.
func bearerReq(t *testing.T, p *jwtinfra.Provider, method, target, userID string, body []byte) *http.Request {
	t.Helper()
	token, err := p.Sign(userID, "org1")
	require.NoError(t, err)
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// withChiID injects a chi URL param "id" into the request context.
func withChiID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serveAuthed wraps the handler with middleware.Auth before serving.
func serveAuthed(p *jwtinfra.Provider, h http.Handler, w http.ResponseWriter, r *http.Request) {
	middleware.Auth(p)(h).ServeHTTP(w, r)
}

func validCreateBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(domain.CreateProjectRequest{
		Name:         "Sunset Ridge Build",
		Address:      "42 Sunset Ridge Rd",
		State:        "California",
		JobStartDate: "2025-03-01",
	})
	require.NoError(t, err)
	return body
}

// --- Create tests ---

func TestCreateProject_MissingClaims(t *testing.T) {
	h := NewProjectHandler(&mockProjectSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewReader(validCreateBody(t)))
	rr := httptest.NewRecorder()
	h.Create(rr, r) // called directly, no claims in context
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateProject_InvalidBody(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewProjectHandler(&mockProjectSvc{})
	r := bearerReq(t, p, http.MethodPost, "/v1/projects", "u1", []byte("not-json"))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Create), rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateProject_ValidationFailure(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewProjectHandler(&mockProjectSvc{})
	body, _ := json.Marshal(domain.CreateProjectRequest{Name: "No State"}) // missing required fields
	r := bearerReq(t, p, http.MethodPost, "/v1/projects", "u1", body)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Create), rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateProject_UnknownState(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	svc.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrBadRequest)
	h := NewProjectHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/v1/projects", "u1", validCreateBody(t))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Create), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateProject_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	created := &domain.Project{ProjectID: "p1", OwnerUserID: "u1", Name: "Sunset Ridge Build", DeadlineDays: 20}
	svc.On("Create", mock.Anything, "u1", mock.Anything).Return(created, nil)
	h := NewProjectHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/v1/projects", "u1", validCreateBody(t))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Create), rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp domain.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "p1", resp.ProjectID)
	assert.Equal(t, 20, resp.DeadlineDays)
	svc.AssertExpectations(t)
}

// --- Get tests ---

func TestGetProject_MissingClaims(t *testing.T) {
	h := NewProjectHandler(&mockProjectSvc{})
	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/projects/p1", nil), "p1")
	rr := httptest.NewRecorder()
	h.Get(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetProject_Forbidden(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	svc.On("Get", mock.Anything, "u1", "p1").Return(nil, domain.ErrForbidden)
	h := NewProjectHandler(svc)

	r := bearerReq(t, p, http.MethodGet, "/v1/projects/p1", "u1", nil)
	r = withChiID(r, "p1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	svc.AssertExpectations(t)
}

func TestGetProject_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	svc.On("Get", mock.Anything, "u1", "p1").Return(&domain.Project{ProjectID: "p1", State: "Ohio"}, nil)
	h := NewProjectHandler(svc)

	r := bearerReq(t, p, http.MethodGet, "/v1/projects/p1", "u1", nil)
	r = withChiID(r, "p1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp domain.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Ohio", resp.State)
	svc.AssertExpectations(t)
}

// --- Update tests ---

func TestUpdateProject_NotFound(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	svc.On("Update", mock.Anything, "u1", "p1", mock.Anything).Return(nil, domain.ErrNotFound)
	h := NewProjectHandler(svc)

	body, _ := json.Marshal(domain.UpdateProjectRequest{})
	r := bearerReq(t, p, http.MethodPut, "/v1/projects/p1", "u1", body)
	r = withChiID(r, "p1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Update), rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

// --- Delete tests ---

func TestDeleteProject_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockProjectSvc{}
	svc.On("Delete", mock.Anything, "u1", "p1").Return(nil)
	h := NewProjectHandler(svc)

	r := bearerReq(t, p, http.MethodDelete, "/v1/projects/p1", "u1", nil)
	r = withChiID(r, "p1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Delete), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "project deleted", resp.Message)
	svc.AssertExpectations(t)
}
