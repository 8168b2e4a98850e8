package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cema-health/records-api/internal/handler"
	"github.com/cema-health/records-api/internal/model"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type fakeKeyRepo struct {
	byKey map[string]*model.APIKey
}

func (f *fakeKeyRepo) Lookup(_ context.Context, key string) (*model.APIKey, error) {
	return f.byKey[key], nil
}

func (f *fakeKeyRepo) Rotate(context.Context, uuid.UUID, string) (*model.APIKey, error) {
	return nil, nil
}

func (f *fakeKeyRepo) DeactivateAll(context.Context, uuid.UUID) error { return nil }

func (f *fakeKeyRepo) ListByDoctor(context.Context, uuid.UUID) ([]*model.APIKey, error) {
	return nil, nil
}

type fakeDoctorRepo struct {
	byID map[uuid.UUID]*model.Doctor
}

func (f *fakeDoctorRepo) Create(context.Context, *model.Doctor) error { return nil }

func (f *fakeDoctorRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NotFound("doctor")
	}
	return d, nil
}

func (f *fakeDoctorRepo) GetByEmail(context.Context, string) (*model.Doctor, error) {
	return nil, nil
}

type guardFixture struct {
	router *gin.Engine
	doctor *model.Doctor
}

func newGuardFixture() *guardFixture {
	gin.SetMode(gin.TestMode)

	doctor := &model.Doctor{ID: uuid.New(), Name: "Dr. Amani", Email: "amani@clinic.example"}
	admin := &model.Doctor{ID: uuid.New(), Name: "Dr. Root", Email: "root@clinic.example", IsAdmin: true}

	keys := map[string]*model.APIKey{
		"doctor-key":  {ID: uuid.New(), Key: "doctor-key", DoctorID: doctor.ID, CreatedAt: time.Now(), IsActive: true},
		"admin-key":   {ID: uuid.New(), Key: "admin-key", DoctorID: admin.ID, CreatedAt: time.Now(), IsActive: true},
		"revoked-key": {ID: uuid.New(), Key: "revoked-key", DoctorID: doctor.ID, CreatedAt: time.Now(), IsActive: false},
	}

	auth := NewAuthMiddleware(
		&fakeKeyRepo{byKey: keys},
		&fakeDoctorRepo{byID: map[uuid.UUID]*model.Doctor{doctor.ID: doctor, admin.ID: admin}},
	)

	r := gin.New()
	r.GET("/protected", auth.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"doctor_id": CurrentDoctor(c).ID}))
	})
	r.POST("/privileged", auth.Authenticate(), auth.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
	})

	return &guardFixture{router: r, doctor: doctor}
}

func (f *guardFixture) do(method, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingKey(t *testing.T) {
	f := newGuardFixture()

	w := f.do(http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API key required", resp.Message)
}

func TestAuthenticateUnknownAndRevokedAreIndistinguishable(t *testing.T) {
	f := newGuardFixture()

	unknown := f.do(http.MethodGet, "/protected", "no-such-key")
	revoked := f.do(http.MethodGet, "/protected", "revoked-key")

	assert.Equal(t, http.StatusForbidden, unknown.Code)
	assert.Equal(t, http.StatusForbidden, revoked.Code)
	assert.Equal(t, unknown.Body.String(), revoked.Body.String(),
		"callers must not learn whether a key is wrong or revoked")
}

func TestAuthenticateValidKey(t *testing.T) {
	f := newGuardFixture()

	w := f.do(http.MethodGet, "/protected", "doctor-key")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), f.doctor.ID.String())
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	f := newGuardFixture()

	// Valid credential, insufficient capability.
	w := f.do(http.MethodPost, "/privileged", "doctor-key")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "super-admin privileges required")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	f := newGuardFixture()

	w := f.do(http.MethodPost, "/privileged", "admin-key")
	assert.Equal(t, http.StatusOK, w.Code)
}
