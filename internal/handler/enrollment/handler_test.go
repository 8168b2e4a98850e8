package enrollment

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
	"github.com/stretchr/testify/require"

	"github.com/cema-health/records-api/internal/model"
	enrollService "github.com/cema-health/records-api/internal/service/enrollment"
	"github.com/cema-health/records-api/internal/service/event"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type fakeClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c *model.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) Get(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, apperrors.NotFound("client")
	}
	return c, nil
}

func (f *fakeClientRepo) List(context.Context) ([]*model.ClientSummary, error) { return nil, nil }

func (f *fakeClientRepo) Search(context.Context, string) ([]*model.ClientSummary, error) {
	return nil, nil
}

func (f *fakeClientRepo) GetProfile(context.Context, uuid.UUID) (*model.ClientProfile, error) {
	return nil, nil
}

type fakeProgramRepo struct {
	programs map[uuid.UUID]*model.HealthProgram
}

func (f *fakeProgramRepo) Create(_ context.Context, p *model.HealthProgram) error {
	f.programs[p.ID] = p
	return nil
}

func (f *fakeProgramRepo) Get(_ context.Context, id uuid.UUID) (*model.HealthProgram, error) {
	p, ok := f.programs[id]
	if !ok {
		return nil, apperrors.NotFound("program")
	}
	return p, nil
}

func (f *fakeProgramRepo) List(context.Context) ([]*model.HealthProgram, error) { return nil, nil }

func (f *fakeProgramRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*model.HealthProgram, error) {
	var out []*model.HealthProgram
	for _, id := range ids {
		if p, ok := f.programs[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	rows map[[2]uuid.UUID]*model.Enrollment
}

func (f *fakeEnrollmentRepo) CreateBatch(_ context.Context, staged []*model.Enrollment) ([]*model.Enrollment, error) {
	created := []*model.Enrollment{}
	for _, e := range staged {
		pair := [2]uuid.UUID{e.ClientID, e.ProgramID}
		if _, exists := f.rows[pair]; exists {
			continue
		}
		f.rows[pair] = e
		created = append(created, e)
	}
	return created, nil
}

func (f *fakeEnrollmentRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*model.Enrollment, error) {
	var out []*model.Enrollment
	for _, e := range f.rows {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fixture struct {
	router   *gin.Engine
	clients  *fakeClientRepo
	programs *fakeProgramRepo
	rows     *fakeEnrollmentRepo
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	clients := &fakeClientRepo{clients: make(map[uuid.UUID]*model.Client)}
	programs := &fakeProgramRepo{programs: make(map[uuid.UUID]*model.HealthProgram)}
	rows := &fakeEnrollmentRepo{rows: make(map[[2]uuid.UUID]*model.Enrollment)}

	svc := enrollService.NewService(rows, clients, programs, event.NewService(nil, nil))

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return &fixture{router: r, clients: clients, programs: programs, rows: rows}
}

func (f *fixture) seedClient() uuid.UUID {
	id := uuid.New()
	f.clients.clients[id] = &model.Client{ID: id, FirstName: "Jane", LastName: "Doe"}
	return id
}

func (f *fixture) seedProgram(name string) uuid.UUID {
	id := uuid.New()
	f.programs.programs[id] = &model.HealthProgram{ID: id, Name: name}
	return id
}

func (f *fixture) enroll(t *testing.T, clientID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments/"+clientID, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestEnrollClient(t *testing.T) {
	f := newFixture()
	clientID := f.seedClient()
	tb := f.seedProgram("TB Care")
	malaria := f.seedProgram("Malaria Care")

	w := f.enroll(t, clientID.String(), gin.H{"program_ids": []string{tb.String(), malaria.String()}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.rows.rows, 2)
}

func TestEnrollUnknownProgramIDsAreSkipped(t *testing.T) {
	f := newFixture()
	clientID := f.seedClient()
	tb := f.seedProgram("TB Care")

	w := f.enroll(t, clientID.String(), gin.H{
		"program_ids": []string{tb.String(), uuid.NewString()},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.rows.rows, 1)
}

func TestEnrollUnknownClientIs404(t *testing.T) {
	f := newFixture()
	tb := f.seedProgram("TB Care")

	w := f.enroll(t, uuid.NewString(), gin.H{"program_ids": []string{tb.String()}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client not found")
}

func TestEnrollMalformedBody(t *testing.T) {
	f := newFixture()
	clientID := f.seedClient()

	w := f.enroll(t, clientID.String(), gin.H{"program_ids": "not-a-list"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "program_ids must be a list of IDs")
}

func TestEnrollInvalidClientID(t *testing.T) {
	f := newFixture()

	w := f.enroll(t, "not-a-uuid", gin.H{"program_ids": []string{uuid.NewString()}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid client ID")
}
