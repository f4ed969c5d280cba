package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/drive"
	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/service"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/repository"
	portfoliosvc "github.com/brightlane-studio/portfolio-backend/internal/portfolio/service"
)

type fixture struct {
	router   *gin.Engine
	projects *portfoliosvc.ProjectService
	kotn     *portfolio.Project
}

func setup(t *testing.T, driveHandler http.HandlerFunc) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(driveHandler)
	t.Cleanup(srv.Close)

	projects := portfoliosvc.NewProjectService(repository.NewMemoryRepository())
	kotn, err := projects.Create(context.Background(), portfolio.CreateInput{
		Title: "Kotn Storefront", Brand: "Kotn", Description: "d",
		Image: "https://cdn/old.jpg", Category: "ecommerce", LiveURL: "https://kotn.com",
	})
	require.NoError(t, err)

	rec := service.NewReconciler(projects, drive.Factory(option.WithEndpoint(srv.URL+"/")), nil)

	r := gin.New()
	New(rec).Register(r.Group("/google-drive-sync"))
	return &fixture{router: r, projects: projects, kotn: kotn}
}

func driveFiles(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func post(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSync_Success(t *testing.T) {
	f := setup(t, driveFiles(`{"files":[{"id":"f1","name":"kotn-hero-2024.jpg"},{"id":"f2","name":"misc.png"}]}`))

	rr := post(t, f.router, "/google-drive-sync", map[string]string{"apiKey": "k", "folderId": "folder"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var report domain.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 2, report.TotalImages)
	assert.Equal(t, 1, report.TotalProjects)
	assert.Empty(t, report.Errors)

	p, err := f.projects.Get(context.Background(), f.kotn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImageURL("f1"), p.Image)
}

func TestSync_MissingParams(t *testing.T) {
	called := false
	f := setup(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := post(t, f.router, "/google-drive-sync", map[string]string{"apiKey": "k"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestSync_RejectsQueryLikeFolderID(t *testing.T) {
	called := false
	f := setup(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := post(t, f.router, "/google-drive-sync", map[string]string{"apiKey": "k", "folderId": "abc' in parents or 'root"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "folderId")
	assert.False(t, called)
}

func TestSync_UpstreamRejected(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
	})

	rr := post(t, f.router, "/google-drive-sync", map[string]string{"apiKey": "k", "folderId": "folder"})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "does not have permission")
}

func TestSetImage(t *testing.T) {
	f := setup(t, driveFiles(`{"files":[]}`))

	rr := post(t, f.router, "/google-drive-sync/projects/"+f.kotn.ID, map[string]string{"fileId": "manual"})
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool              `json:"success"`
		Project portfolio.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, domain.ImageURL("manual"), body.Project.Image)

	rr = post(t, f.router, "/google-drive-sync/projects/"+f.kotn.ID, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, f.router, "/google-drive-sync/projects/missing", map[string]string{"fileId": "manual"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLast_NoneRecorded(t *testing.T) {
	f := setup(t, driveFiles(`{"files":[]}`))

	req, _ := http.NewRequest(http.MethodGet, "/google-drive-sync/last", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type limitRecorder struct {
	service.NoopReportStore
	limits []int
}

func (l *limitRecorder) History(ctx context.Context, limit int) ([]domain.Report, error) {
	l.limits = append(l.limits, limit)
	return []domain.Report{}, nil
}

func TestHistory_Limit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reports := &limitRecorder{}
	r := gin.New()
	New(service.NewReconciler(nil, nil, reports)).Register(r.Group("/google-drive-sync"))

	for _, q := range []string{"", "?limit=3", "?limit=abc", "?limit=-2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/google-drive-sync/history"+q, nil))
		require.Equal(t, http.StatusOK, w.Code, q)
		assert.JSONEq(t, `{"reports":[]}`, w.Body.String())
	}
	assert.Equal(t, []int{10, 3, 10, 10}, reports.limits)
}
