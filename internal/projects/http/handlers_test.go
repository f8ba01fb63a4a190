package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protrack-dev/protrack-backend/internal/auth"
	"github.com/protrack-dev/protrack-backend/internal/projects/domain"
	"github.com/protrack-dev/protrack-backend/internal/projects/service"
)

// ---- in-memory repository ----

type memRepo struct {
	nextID int64
	items  map[int64]domain.Project
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[int64]domain.Project{}}
}

func (m *memRepo) Create(_ context.Context, ownerID string, in domain.NewProject) (*domain.Project, error) {
	m.nextID++
	p := domain.Project{
		ID:          m.nextID,
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   time.Now(),
	}
	m.items[p.ID] = p
	return &p, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range m.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memRepo) GetOwned(_ context.Context, ownerID string, id int64) (*domain.Project, error) {
	p, ok := m.items[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) Save(_ context.Context, p *domain.Project) error {
	existing, ok := m.items[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return domain.ErrNotFound
	}
	m.items[p.ID] = *p
	return nil
}

func (m *memRepo) Delete(_ context.Context, ownerID string, id int64) (bool, error) {
	p, ok := m.items[id]
	if !ok || p.OwnerID != ownerID {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

// ---- helpers ----

func fakeAuthUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.CtxUserID, userID)
		c.Next()
	}
}

type testEnv struct {
	repo   *memRepo
	svc    *service.ProjectService
	router *gin.Engine
}

// newTestEnv wires the real service over an in-memory repository. An empty
// userID mounts the routes with no principal in context.
func newTestEnv(userID string) *testEnv {
	gin.SetMode(gin.TestMode)

	repo := newMemRepo()
	svc := service.NewProjectService(repo)

	r := gin.New()
	group := r.Group("/project")
	if userID != "" {
		group.Use(fakeAuthUser(userID))
	}
	Register(group, svc)

	return &testEnv{repo: repo, svc: svc, router: r}
}

func (e *testEnv) do(method, url string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seed(t *testing.T, owner, title, description string, status *string) *domain.Project {
	t.Helper()
	p, err := e.svc.Create(context.Background(), owner, domain.NewProject{
		Title:       title,
		Description: description,
		Status:      status,
	})
	require.NoError(t, err)
	return p
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func strptr(s string) *string { return &s }

// ---- tests ----

func TestAuthRequiredOnAllEndpoints(t *testing.T) {
	env := newTestEnv("")

	cases := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "/project", nil},
		{http.MethodPost, "/project", map[string]any{"title": "T"}},
		{http.MethodGet, "/project/1", nil},
		{http.MethodPut, "/project/1", map[string]any{"title": "T"}},
		{http.MethodPatch, "/project/1", map[string]any{"title": "T"}},
		{http.MethodDelete, "/project/1", nil},
	}

	for _, tc := range cases {
		w := env.do(tc.method, tc.url, tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.url)
	}

	// nothing was written
	assert.Empty(t, env.repo.items)
}

func TestCreateProject(t *testing.T) {
	env := newTestEnv("user-a")

	w := env.do(http.MethodPost, "/project", map[string]any{
		"title":       "Creating a Text Editor",
		"status":      "Design",
		"description": "A super powerful text editor for all Mac",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	project := body["project"].(map[string]any)
	assert.Equal(t, "Creating a Text Editor", project["title"])
	assert.Equal(t, "Design", project["status"])
	assert.Equal(t, "A super powerful text editor for all Mac", project["description"])
	assert.Contains(t, project, "createdAt")

	stored := env.repo.items[int64(project["id"].(float64))]
	assert.Equal(t, "user-a", stored.OwnerID)
}

func TestCreateIgnoresOwnerFields(t *testing.T) {
	env := newTestEnv("user-a")

	w := env.do(http.MethodPost, "/project", map[string]any{
		"title":     "T",
		"owner":     "user-b",
		"createdBy": 99,
		"owner_id":  "user-b",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	id := int64(body["project"].(map[string]any)["id"].(float64))
	assert.Equal(t, "user-a", env.repo.items[id].OwnerID)
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv("user-a")

	t.Run("missing title", func(t *testing.T) {
		w := env.do(http.MethodPost, "/project", map[string]any{"description": "D"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		errs := body["errors"].(map[string]any)
		assert.Equal(t, "required", errs["title"])
	})

	t.Run("blank title", func(t *testing.T) {
		w := env.do(http.MethodPost, "/project", map[string]any{"title": "   "})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status outside the closed set", func(t *testing.T) {
		w := env.do(http.MethodPost, "/project", map[string]any{"title": "T", "status": "Planning"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeBody(t, w)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs["status"], "must be one of")
	})

	t.Run("non-object body", func(t *testing.T) {
		w := env.do(http.MethodPost, "/project", []string{"not", "an", "object"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	assert.Empty(t, env.repo.items)
}

func TestListProjectsNewestFirst(t *testing.T) {
	env := newTestEnv("user-a")

	env.seed(t, "user-a", "one", "", nil)
	env.seed(t, "user-a", "two", "", strptr(domain.StatusDesign))
	env.seed(t, "user-a", "three", "long description", nil)

	w := env.do(http.MethodGet, "/project", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["projects"].([]any)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "three", first["title"])
	assert.Equal(t, "one", items[2].(map[string]any)["title"])

	// summary view: no description, no createdAt
	assert.NotContains(t, first, "description")
	assert.NotContains(t, first, "createdAt")
}

func TestListLimitedToUser(t *testing.T) {
	env := newTestEnv("user-a")

	env.seed(t, "user-b", "theirs", "", nil)
	mine := env.seed(t, "user-a", "mine", "", nil)

	w := env.do(http.MethodGet, "/project", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["projects"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(mine.ID), items[0].(map[string]any)["id"])
}

func TestRetrieveDetail(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "T", "D", strptr(domain.StatusDesign))

	w := env.do(http.MethodGet, "/project/"+itoa(p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	project := decodeBody(t, w)["project"].(map[string]any)
	assert.Equal(t, "T", project["title"])
	assert.Equal(t, "Design", project["status"])
	assert.Equal(t, "D", project["description"])
	assert.Contains(t, project, "createdAt")
}

func TestRetrieveForeignProjectNotFound(t *testing.T) {
	env := newTestEnv("user-b")
	p := env.seed(t, "user-a", "T", "D", nil)

	w := env.do(http.MethodGet, "/project/"+itoa(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// still there for the owner
	_, err := env.svc.Get(context.Background(), "user-a", p.ID)
	assert.NoError(t, err)
}

func TestRetrieveBadIDNotFound(t *testing.T) {
	env := newTestEnv("user-a")

	for _, id := range []string{"abc", "0", "-3", "99999"} {
		w := env.do(http.MethodGet, "/project/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)
	}
}

func TestPartialUpdate(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "Brand New OS", "Operating System with Golang", strptr(domain.StatusDesign))

	w := env.do(http.MethodPatch, "/project/"+itoa(p.ID), map[string]any{"title": "Same Old OS"})
	require.Equal(t, http.StatusOK, w.Code)

	project := decodeBody(t, w)["project"].(map[string]any)
	assert.Equal(t, "Same Old OS", project["title"])
	assert.Equal(t, "Operating System with Golang", project["description"])
	assert.Equal(t, "Design", project["status"])
}

func TestPartialUpdateClearsStatusWithNull(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "T", "D", strptr(domain.StatusDesign))

	w := env.do(http.MethodPatch, "/project/"+itoa(p.ID), map[string]any{"status": nil})
	require.Equal(t, http.StatusOK, w.Code)

	project := decodeBody(t, w)["project"].(map[string]any)
	assert.Nil(t, project["status"])
	assert.Equal(t, "T", project["title"])
}

func TestUpdateCannotChangeOwner(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "T", "D", nil)

	w := env.do(http.MethodPatch, "/project/"+itoa(p.ID), map[string]any{
		"title":     "T2",
		"createdBy": "user-b",
		"owner":     "user-b",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "user-a", env.repo.items[p.ID].OwnerID)
	assert.Equal(t, "T2", env.repo.items[p.ID].Title)
}

func TestFullUpdate(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "Brand New OS", "Operating System with Golang", strptr(domain.StatusDesign))

	t.Run("replaces every mutable field", func(t *testing.T) {
		w := env.do(http.MethodPut, "/project/"+itoa(p.ID), map[string]any{
			"title":       "Creating a Text Editor",
			"status":      "Testing",
			"description": "A super powerful text editor",
		})
		require.Equal(t, http.StatusOK, w.Code)

		project := decodeBody(t, w)["project"].(map[string]any)
		assert.Equal(t, "Creating a Text Editor", project["title"])
		assert.Equal(t, "Testing", project["status"])
		assert.Equal(t, "A super powerful text editor", project["description"])
	})

	t.Run("requires every mutable field", func(t *testing.T) {
		w := env.do(http.MethodPut, "/project/"+itoa(p.ID), map[string]any{"title": "only title"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		errs := decodeBody(t, w)["errors"].(map[string]any)
		assert.Equal(t, "required", errs["description"])
		assert.Equal(t, "required", errs["status"])
	})

	t.Run("accepts explicit null status", func(t *testing.T) {
		w := env.do(http.MethodPut, "/project/"+itoa(p.ID), map[string]any{
			"title":       "T",
			"description": "",
			"status":      nil,
		})
		require.Equal(t, http.StatusOK, w.Code)

		project := decodeBody(t, w)["project"].(map[string]any)
		assert.Nil(t, project["status"])
		assert.Equal(t, "", project["description"])
	})
}

func TestUpdateForeignProjectNotFound(t *testing.T) {
	env := newTestEnv("user-b")
	p := env.seed(t, "user-a", "T", "D", nil)

	w := env.do(http.MethodPatch, "/project/"+itoa(p.ID), map[string]any{"title": "hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "T", env.repo.items[p.ID].Title)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv("user-a")
	p := env.seed(t, "user-a", "T", "D", nil)

	w := env.do(http.MethodDelete, "/project/"+itoa(p.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = env.do(http.MethodGet, "/project/"+itoa(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteForeignProjectNotFound(t *testing.T) {
	env := newTestEnv("user-b")
	p := env.seed(t, "user-a", "T", "D", nil)

	w := env.do(http.MethodDelete, "/project/"+itoa(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, ok := env.repo.items[p.ID]
	assert.True(t, ok, "project should survive a foreign delete")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
