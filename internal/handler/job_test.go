package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeJobService keeps jobs in a map; enough to drive the handler paths.
type fakeJobService struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobService() *fakeJobService {
	return &fakeJobService{jobs: make(map[uuid.UUID]*models.Job)}
}

func (f *fakeJobService) ListJobs() ([]*models.Job, error) {
	out := []*models.Job{}
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobService) GetJob(id uuid.UUID) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobService) CreateJob(req *models.CreateJobRequest) (*models.Job, error) {
	j := &models.Job{ID: uuid.New(), Title: req.Title, Company: req.Company}
	if req.Location != nil {
		j.Location = sql.NullString{String: *req.Location, Valid: true}
	}
	if req.MinSalary != nil {
		j.MinSalary = sql.NullFloat64{Float64: *req.MinSalary, Valid: true}
	}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobService) UpdateJob(id uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	j.Title = req.Title
	j.Company = req.Company
	return j, nil
}

func (f *fakeJobService) DeleteJob(id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return service.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func newJobRouter() (*gin.Engine, *fakeJobService) {
	gin.SetMode(gin.TestMode)
	svc := newFakeJobService()
	h := NewJobHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/jobs", h.ListJobs)
	r.GET("/api/jobs/:job_id", h.GetJob)
	r.POST("/api/jobs", h.CreateJob)
	r.PUT("/api/jobs/:job_id", h.UpdateJob)
	r.DELETE("/api/jobs/:job_id", h.DeleteJob)
	return r, svc
}

func TestJobCRUD(t *testing.T) {
	t.Parallel()

	r, _ := newJobRouter()

	// Create
	body := `{"title":"Backend Engineer","company":"Acme"}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var created models.PublicJob
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Backend Engineer", created.Title)

	// Read back
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Update
	update := `{"title":"Senior Backend Engineer","company":"Acme","is_expired":false}`
	req = httptest.NewRequest(http.MethodPut, "/api/jobs/"+created.ID.String(), strings.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete, then the read 404s
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/jobs/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobHandler_BadInput(t *testing.T) {
	t.Parallel()

	r, _ := newJobRouter()

	// Malformed job id
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required fields
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(`{"title":""}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown job
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobResponse_NullableFields(t *testing.T) {
	t.Parallel()

	r, _ := newJobRouter()

	// Absent optional columns must come back as plain JSON null, set ones
	// as bare values; the sql.Null* wrappers never reach the wire.
	body := `{"title":"Backend Engineer","company":"Acme","min_salary":100000}`
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Nil(t, data["location"])
	assert.Nil(t, data["job_url"])
	assert.Equal(t, float64(100000), data["min_salary"])
	_, isObject := data["location"].(map[string]interface{})
	assert.False(t, isObject)
	assert.NotContains(t, string(env.Data), `"Valid"`)
}
