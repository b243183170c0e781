package project

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
)

// Action phrases used in user facing error messages.
const (
	ActionFetchProjects         = "fetch projects"
	ActionFetchProject          = "fetch project"
	ActionFetchProjectTasks     = "fetch project with tasks"
	ActionFetchProjectUsers     = "fetch project users"
	ActionCreateProject         = "create project"
	ActionUpdateProject         = "update project"
	ActionDeleteProject         = "delete project"
	ActionAddUserToProject      = "add user to project"
	ActionRemoveUserFromProject = "remove user from project"
)

// DefaultMemberRole is used when a user is added without a role.
const DefaultMemberRole = "member"

// Service defines all project-related operations against the API
type Service interface {
	// Read operations
	GetProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectWithTasks(ctx context.Context, id string) (*models.Project, error)
	GetProjectUsers(ctx context.Context, id string) ([]*models.User, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Membership
	AddUserToProject(ctx context.Context, projectID, userID, role string) error
	RemoveUserFromProject(ctx context.Context, projectID, userID string) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	Status      models.ProjectStatus
}

// UpdateProjectRequest encapsulates a partial update. Nil fields are not
// sent.
type UpdateProjectRequest struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
}

// IsEmpty reports whether the request would send no fields.
func (r UpdateProjectRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Status == nil
}

func (r UpdateProjectRequest) body() map[string]any {
	body := map[string]any{}
	if r.Name != nil {
		body["name"] = *r.Name
	}
	if r.Description != nil {
		body["description"] = *r.Description
	}
	if r.Status != nil {
		body["status"] = *r.Status
	}
	return body
}

// client is the subset of the API wrapper the service needs
type client interface {
	Do(ctx context.Context, r api.Request, out any) error
}

// service implements Service on top of the API client
type service struct {
	client client
	now    func() time.Time
}

// NewService creates a new project service
func NewService(c client) Service {
	return &service{client: c, now: time.Now}
}

func projectPath(id string, rest ...string) string {
	return "/projects/" + url.PathEscape(id) + strings.Join(rest, "")
}

// GetProjects lists the projects visible to the current user. A response
// that is not an array is treated as no projects.
func (s *service) GetProjects(ctx context.Context) ([]*models.Project, error) {
	var raw json.RawMessage
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: "/projects/"}, &raw); err != nil {
		return nil, api.Normalize(ActionFetchProjects, err)
	}
	projects, err := api.DecodeList[*models.Project](raw)
	if err != nil {
		return nil, api.Normalize(ActionFetchProjects, err)
	}
	return projects, nil
}

func (s *service) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	var project models.Project
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: projectPath(id)}, &project); err != nil {
		return nil, api.Normalize(ActionFetchProject, err)
	}
	return &project, nil
}

func (s *service) GetProjectWithTasks(ctx context.Context, id string) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	var project models.Project
	err := s.client.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   projectPath(id),
		Query:  url.Values{"include_tasks": {"true"}},
	}, &project)
	if err != nil {
		return nil, api.Normalize(ActionFetchProjectTasks, err)
	}
	if project.Tasks == nil {
		project.Tasks = []*models.Task{}
	}
	return &project, nil
}

// GetProjectUsers lists the project's members; a null body is no members.
func (s *service) GetProjectUsers(ctx context.Context, id string) ([]*models.User, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	var raw json.RawMessage
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: projectPath(id, "/users")}, &raw); err != nil {
		return nil, api.Normalize(ActionFetchProjectUsers, err)
	}
	users, err := api.DecodeList[*models.User](raw)
	if err != nil {
		return nil, api.Normalize(ActionFetchProjectUsers, err)
	}
	return users, nil
}

// CreateProject sends the project with description defaulting to "" and
// status to active. A response without an id yields ErrInvalidProjectData.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	status := req.Status
	if status == "" {
		status = models.DefaultProjectStatus
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	body := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"status":      status,
	}

	var project models.Project
	if err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: "/projects/", Body: body}, &project); err != nil {
		return nil, api.Normalize(ActionCreateProject, err)
	}
	if !project.HasID() {
		return nil, api.Normalize(ActionCreateProject, ErrInvalidProjectData)
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = models.Timestamp{Time: s.now()}
	}
	return &project, nil
}

// UpdateProject PATCHes only the fields set on req.
func (s *service) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	if req.IsEmpty() {
		return nil, ErrNothingToUpdate
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, *req.Status)
	}

	var project models.Project
	err := s.client.Do(ctx, api.Request{Method: http.MethodPatch, Path: projectPath(id), Body: req.body()}, &project)
	if err != nil {
		return nil, api.Normalize(ActionUpdateProject, err)
	}
	return &project, nil
}

func (s *service) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidProjectID
	}
	if err := s.client.Do(ctx, api.Request{Method: http.MethodDelete, Path: projectPath(id)}, nil); err != nil {
		return api.Normalize(ActionDeleteProject, err)
	}
	return nil
}

func (s *service) AddUserToProject(ctx context.Context, projectID, userID, role string) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if userID == "" {
		return ErrInvalidUserID
	}
	if role == "" {
		role = DefaultMemberRole
	}
	body := map[string]any{"userId": userID, "role": role}
	if err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: projectPath(projectID, "/users"), Body: body}, nil); err != nil {
		return api.Normalize(ActionAddUserToProject, err)
	}
	return nil
}

func (s *service) RemoveUserFromProject(ctx context.Context, projectID, userID string) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if userID == "" {
		return ErrInvalidUserID
	}
	path := projectPath(projectID, "/users/", url.PathEscape(userID))
	if err := s.client.Do(ctx, api.Request{Method: http.MethodDelete, Path: path}, nil); err != nil {
		return api.Normalize(ActionRemoveUserFromProject, err)
	}
	return nil
}
