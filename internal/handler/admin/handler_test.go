package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cema-health/records-api/internal/model"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

// fakeDoctorService covers the handler mapping only; the provisioning
// pipeline itself is tested at the service level.
type fakeDoctorService struct {
	byEmail map[string]*model.Doctor
}

func (f *fakeDoctorService) Provision(_ context.Context, req *model.ProvisionDoctorRequest) (*model.Doctor, error) {
	if _, exists := f.byEmail[req.Email]; exists {
		return nil, apperrors.Conflict("email already registered", nil)
	}
	d := &model.Doctor{ID: uuid.New(), Name: req.Name, Email: req.Email, IsAdmin: req.IsAdmin}
	f.byEmail[req.Email] = d
	return d, nil
}

func (f *fakeDoctorService) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	for _, d := range f.byEmail {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.NotFound("doctor")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&fakeDoctorService{byEmail: make(map[string]*model.Doctor)}).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func provision(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/doctors", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProvisionDoctor(t *testing.T) {
	r := newTestRouter()

	w := provision(r, gin.H{"name": "Dr. Okafor", "email": "okafor@clinic.example"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "okafor@clinic.example")
}

func TestProvisionDuplicateEmail(t *testing.T) {
	r := newTestRouter()

	provision(r, gin.H{"name": "Dr. Okafor", "email": "okafor@clinic.example"})
	w := provision(r, gin.H{"name": "Dr. Okafor II", "email": "okafor@clinic.example"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestProvisionMissingEmail(t *testing.T) {
	r := newTestRouter()

	w := provision(r, gin.H{"name": "Dr. Okafor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
