package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/thenoetrevino/hito/internal/models"
)

// Seed credentials of the user every FakeAPI starts with.
const (
	TestTenantID = "t1"
	TestUserID   = "u1"
	TestUsername = "alice"
	TestEmail    = "alice@example.com"
	TestPassword = "password123"
)

var signingKey = []byte("fake-api-secret")

// RecordedRequest is one request the fake server received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body into a generic map.
func (r RecordedRequest) JSON() map[string]any {
	var m map[string]any
	_ = json.Unmarshal(r.Body, &m)
	return m
}

type response struct {
	status int
	body   any
}

type account struct {
	user     *models.User
	password string
}

// FakeAPI is an in-memory tracker backend served over httptest. Routes live
// under /api like the real server.
type FakeAPI struct {
	server *httptest.Server

	mu        sync.Mutex
	accounts  []*account
	tokens    map[string]string
	projects  []*models.Project
	tasks     map[string][]*models.Task
	members   map[string][]string
	overrides map[string]response
	requests  []RecordedRequest
	seq       int
}

// NewFakeAPI starts a server seeded with one tenant and one user. It is
// closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		tokens:    map[string]string{},
		tasks:     map[string][]*models.Task{},
		members:   map[string][]string{},
		overrides: map[string]response{},
	}
	f.accounts = append(f.accounts, &account{
		user: &models.User{
			ID:       TestUserID,
			Username: TestUsername,
			Email:    TestEmail,
			Role:     "admin",
			TenantID: TestTenantID,
		},
		password: TestPassword,
	})

	f.server = httptest.NewServer(f.routes())
	t.Cleanup(f.server.Close)
	return f
}

// URL is the API base URL, including the /api prefix.
func (f *FakeAPI) URL() string { return f.server.URL + "/api" }

// Client returns an http client for the fake server.
func (f *FakeAPI) Client() *http.Client { return f.server.Client() }

// Token issues a valid token for the seed user.
func (f *FakeAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issueLocked(f.accounts[0].user)
}

// Respond forces the next and every later request for method+path (path
// relative to /api, e.g. "/projects/p1") to get status and body.
func (f *FakeAPI) Respond(method, path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides[method+" "+path] = response{status: status, body: body}
}

// Reset removes a forced response.
func (f *FakeAPI) Reset(method, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.overrides, method+" "+path)
}

// Requests returns every recorded request in arrival order.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestsTo filters recorded requests by method and path.
func (f *FakeAPI) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// AddUser registers another member of the seed tenant.
func (f *FakeAPI) AddUser(username, email, password string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &models.User{ID: f.nextIDLocked("u"), Username: username, Email: email, Role: "member", TenantID: TestTenantID}
	f.accounts = append(f.accounts, &account{user: u, password: password})
	return u
}

// AddProject stores a project and returns a copy.
func (f *FakeAPI) AddProject(name, description string, status models.ProjectStatus) *models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.Project{
		ID:          f.nextIDLocked("p"),
		Name:        name,
		Description: description,
		Status:      status,
		TenantID:    TestTenantID,
		CreatedAt:   models.Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	f.projects = append(f.projects, p)
	f.members[p.ID] = []string{TestUserID}
	cp := *p
	return &cp
}

// AddTask stores a task in projectID and returns a copy.
func (f *FakeAPI) AddTask(projectID, title string, status models.TaskStatus) *models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &models.Task{
		ID:        f.nextIDLocked("t"),
		Title:     title,
		Status:    status,
		ProjectID: projectID,
		CreatedAt: models.Timestamp{Time: time.Now().UTC()},
	}
	f.tasks[projectID] = append(f.tasks[projectID], t)
	cp := *t
	return &cp
}

// Project returns the stored project or nil.
func (f *FakeAPI) Project(id string) *models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p := f.findProjectLocked(id); p != nil {
		cp := *p
		return &cp
	}
	return nil
}

// Projects returns copies of every stored project.
func (f *FakeAPI) Projects() []*models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// Tasks returns copies of the tasks stored for projectID.
func (f *FakeAPI) Tasks(projectID string) []*models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Task, 0, len(f.tasks[projectID]))
	for _, t := range f.tasks[projectID] {
		cp := *t
		out = append(out, &cp)
	}
	return out
}

// Members returns the user ids attached to projectID.
func (f *FakeAPI) Members(projectID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.members[projectID]...)
}

func (f *FakeAPI) nextIDLocked(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *FakeAPI) issueLocked(u *models.User) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.Username,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	f.tokens[token] = u.ID
	return token
}

func (f *FakeAPI) findProjectLocked(id string) *models.Project {
	for _, p := range f.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *FakeAPI) findUserLocked(id string) *models.User {
	for _, a := range f.accounts {
		if a.user.ID == id {
			return a.user
		}
	}
	return nil
}

func (f *FakeAPI) findTaskLocked(projectID, taskID string) (int, *models.Task) {
	for i, t := range f.tasks[projectID] {
		if t.ID == taskID {
			return i, t
		}
	}
	return -1, nil
}

// ============================================================================
// ROUTING
// ============================================================================

func (f *FakeAPI) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(f.record)

	a := r.PathPrefix("/api").Subrouter()
	a.Use(f.override)

	a.HandleFunc("/token", f.handleToken).Methods("POST")
	a.HandleFunc("/register", f.handleRegister).Methods("POST")

	p := a.NewRoute().Subrouter()
	p.Use(f.requireAuth)

	p.HandleFunc("/users/me", f.handleCurrentUser).Methods("GET")
	p.HandleFunc("/tenants/{tenant_id}/users", f.handleTenantUsers).Methods("GET")

	p.HandleFunc("/projects/", f.handleListProjects).Methods("GET")
	p.HandleFunc("/projects/", f.handleCreateProject).Methods("POST")
	p.HandleFunc("/projects/{project_id}", f.handleGetProject).Methods("GET")
	p.HandleFunc("/projects/{project_id}", f.handleUpdateProject).Methods("PATCH")
	p.HandleFunc("/projects/{project_id}", f.handleDeleteProject).Methods("DELETE")
	p.HandleFunc("/projects/{project_id}/users", f.handleProjectUsers).Methods("GET")
	p.HandleFunc("/projects/{project_id}/users", f.handleAddMember).Methods("POST")
	p.HandleFunc("/projects/{project_id}/users/{user_id}", f.handleRemoveMember).Methods("DELETE")

	p.HandleFunc("/projects/{project_id}/tasks/", f.handleListTasks).Methods("GET")
	p.HandleFunc("/projects/{project_id}/tasks/", f.handleCreateTask).Methods("POST")
	p.HandleFunc("/projects/{project_id}/tasks/{task_id}", f.handleGetTask).Methods("GET")
	p.HandleFunc("/projects/{project_id}/tasks/{task_id}", f.handleUpdateTask).Methods("PATCH")
	p.HandleFunc("/projects/{project_id}/tasks/{task_id}", f.handleDeleteTask).Methods("DELETE")
	p.HandleFunc("/projects/{project_id}/tasks/{task_id}/assign", f.handleAssignTask).Methods("PATCH")

	return r
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, "/api"),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		resp, ok := f.overrides[r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api")]
		f.mu.Unlock()
		if ok {
			writeJSON(w, resp.status, resp.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		f.mu.Lock()
		_, ok := f.tokens[token]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Could not validate credentials"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if raw, ok := body.(string); ok {
		_, _ = io.WriteString(w, raw)
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]any{"detail": what + " not found"})
}

func missingField(w http.ResponseWriter, name string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []any{
		map[string]any{"loc": []any{"body", name}, "msg": "field required", "type": "value_error.missing"},
	}})
}

func decode(r *http.Request) map[string]any {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body == nil {
		body = map[string]any{}
	}
	return body
}

func str(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

// ============================================================================
// AUTH
// ============================================================================

func (f *FakeAPI) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "bad form"})
		return
	}
	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if (a.user.Email == username || a.user.Username == username) && a.password == password {
			writeJSON(w, http.StatusOK, map[string]any{"access_token": f.issueLocked(a.user), "token_type": "bearer"})
			return
		}
	}
	writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Incorrect username or password"})
}

func (f *FakeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	body := decode(r)
	for _, k := range []string{"username", "email", "password", "tenant_name", "tenant_domain"} {
		if str(body, k) == "" {
			missingField(w, k)
			return
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.user.Email == str(body, "email") || a.user.Username == str(body, "username") {
			writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Email or username already registered"})
			return
		}
	}
	u := &models.User{
		ID:       f.nextIDLocked("u"),
		Username: str(body, "username"),
		Email:    str(body, "email"),
		Role:     "admin",
		TenantID: f.nextIDLocked("t"),
	}
	f.accounts = append(f.accounts, &account{user: u, password: str(body, "password")})
	writeJSON(w, http.StatusOK, u)
}

func (f *FakeAPI) currentUserLocked(r *http.Request) *models.User {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return f.findUserLocked(f.tokens[token])
}

func (f *FakeAPI) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.currentUserLocked(r))
}

func (f *FakeAPI) handleTenantUsers(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenant_id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []*models.User{}
	for _, a := range f.accounts {
		if a.user.TenantID == tenantID {
			users = append(users, a.user)
		}
	}
	writeJSON(w, http.StatusOK, users)
}

// ============================================================================
// PROJECTS
// ============================================================================

func (f *FakeAPI) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	projects := make([]*models.Project, 0, len(f.projects))
	projects = append(projects, f.projects...)
	writeJSON(w, http.StatusOK, projects)
}

func (f *FakeAPI) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	body := decode(r)
	if str(body, "name") == "" {
		missingField(w, "name")
		return
	}
	status := models.ProjectStatus(str(body, "status"))
	if status == "" {
		status = models.ProjectActive
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p := &models.Project{
		ID:          f.nextIDLocked("p"),
		Name:        str(body, "name"),
		Description: str(body, "description"),
		Status:      status,
		TenantID:    TestTenantID,
		CreatedAt:   models.Timestamp{Time: time.Now().UTC()},
	}
	f.projects = append(f.projects, p)
	f.members[p.ID] = []string{TestUserID}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.findProjectLocked(id)
	if p == nil {
		notFound(w, "Project")
		return
	}
	cp := *p
	if r.URL.Query().Get("include_tasks") == "true" {
		cp.Tasks = append([]*models.Task{}, f.tasks[id]...)
	}
	writeJSON(w, http.StatusOK, cp)
}

func (f *FakeAPI) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	body := decode(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.findProjectLocked(id)
	if p == nil {
		notFound(w, "Project")
		return
	}
	if v, ok := body["name"].(string); ok {
		p.Name = v
	}
	if v, ok := body["description"].(string); ok {
		p.Description = v
	}
	if v, ok := body["status"].(string); ok {
		p.Status = models.ProjectStatus(v)
	}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			delete(f.tasks, id)
			delete(f.members, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	notFound(w, "Project")
}

func (f *FakeAPI) handleProjectUsers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findProjectLocked(id) == nil {
		notFound(w, "Project")
		return
	}
	users := []*models.User{}
	for _, uid := range f.members[id] {
		if u := f.findUserLocked(uid); u != nil {
			users = append(users, u)
		}
	}
	writeJSON(w, http.StatusOK, users)
}

func (f *FakeAPI) handleAddMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	body := decode(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findProjectLocked(id) == nil {
		notFound(w, "Project")
		return
	}
	userID := str(body, "userId")
	if f.findUserLocked(userID) == nil {
		notFound(w, "User")
		return
	}
	f.members[id] = append(f.members[id], userID)
	writeJSON(w, http.StatusOK, map[string]any{"project_id": id, "user_id": userID, "role": str(body, "role")})
}

func (f *FakeAPI) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	members := f.members[vars["project_id"]]
	for i, uid := range members {
		if uid == vars["user_id"] {
			f.members[vars["project_id"]] = append(members[:i], members[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	notFound(w, "Member")
}

// ============================================================================
// TASKS
// ============================================================================

func (f *FakeAPI) handleListTasks(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["project_id"]
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findProjectLocked(id) == nil {
		notFound(w, "Project")
		return
	}
	writeJSON(w, http.StatusOK, append([]*models.Task{}, f.tasks[id]...))
}

func (f *FakeAPI) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["project_id"]
	body := decode(r)
	if str(body, "title") == "" {
		missingField(w, "title")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findProjectLocked(projectID) == nil {
		notFound(w, "Project")
		return
	}
	status := models.TaskStatus(str(body, "status"))
	if status == "" {
		status = models.TaskTodo
	}
	t := &models.Task{
		ID:          f.nextIDLocked("t"),
		Title:       str(body, "title"),
		Description: str(body, "description"),
		Status:      status,
		ProjectID:   projectID,
		CreatedAt:   models.Timestamp{Time: time.Now().UTC()},
	}
	if uid := str(body, "assignee_id"); uid != "" {
		f.assignLocked(t, uid)
	}
	f.tasks[projectID] = append(f.tasks[projectID], t)
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) handleGetTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	_, t := f.findTaskLocked(vars["project_id"], vars["task_id"])
	if t == nil {
		notFound(w, "Task")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	body := decode(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	_, t := f.findTaskLocked(vars["project_id"], vars["task_id"])
	if t == nil {
		notFound(w, "Task")
		return
	}
	if v, ok := body["title"].(string); ok {
		t.Title = v
	}
	if v, ok := body["description"].(string); ok {
		t.Description = v
	}
	if v, ok := body["status"].(string); ok {
		status := models.TaskStatus(v)
		if !status.Valid() {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []any{
				map[string]any{"loc": []any{"body", "status"}, "msg": "invalid status"},
			}})
			return
		}
		t.Status = status
	}
	if v, ok := body["assignee_id"]; ok {
		if uid, _ := v.(string); uid != "" {
			f.assignLocked(t, uid)
		} else {
			t.AssigneeID = nil
			t.Assignee = nil
		}
	}
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	body := decode(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	_, t := f.findTaskLocked(vars["project_id"], vars["task_id"])
	if t == nil {
		notFound(w, "Task")
		return
	}
	if f.findUserLocked(str(body, "userId")) == nil {
		notFound(w, "User")
		return
	}
	f.assignLocked(t, str(body, "userId"))
	writeJSON(w, http.StatusOK, t)
}

func (f *FakeAPI) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	i, t := f.findTaskLocked(vars["project_id"], vars["task_id"])
	if t == nil {
		notFound(w, "Task")
		return
	}
	tasks := f.tasks[vars["project_id"]]
	f.tasks[vars["project_id"]] = append(tasks[:i], tasks[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) assignLocked(t *models.Task, userID string) {
	u := f.findUserLocked(userID)
	if u == nil {
		return
	}
	id := u.ID
	t.AssigneeID = &id
	t.Assignee = &models.Assignee{ID: u.ID, Username: u.Username, Email: u.Email}
}
