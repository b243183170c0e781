package task

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
)

// Action phrases used in user facing error messages.
const (
	ActionFetchTasks   = "fetch tasks"
	ActionFetchTask    = "fetch task"
	ActionCreateTask   = "create task"
	ActionUpdateTask   = "update task"
	ActionDeleteTask   = "delete task"
	ActionAssignTask   = "assign task"
	ActionUpdateStatus = "update task status"
)

// Service defines all task operations. Every call addresses a task through
// its project.
type Service interface {
	GetTasks(ctx context.Context, projectID string) ([]*models.Task, error)
	GetTask(ctx context.Context, projectID, taskID string) (*models.Task, error)
	CreateTask(ctx context.Context, projectID string, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID string, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
	AssignTask(ctx context.Context, projectID, taskID, userID string) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, projectID, taskID string, status models.TaskStatus) (*models.Task, error)
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.TaskStatus
	AssigneeID  string
}

// UpdateTaskRequest encapsulates a partial task update. Nil fields are not
// sent; ClearAssignee sends an explicit null assignee.
type UpdateTaskRequest struct {
	Title         *string
	Description   *string
	Status        *models.TaskStatus
	AssigneeID    *string
	ClearAssignee bool
}

// IsEmpty reports whether the request would send no fields.
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil && r.AssigneeID == nil && !r.ClearAssignee
}

// MarshalJSON emits only the fields that are set.
func (r UpdateTaskRequest) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if r.Title != nil {
		body["title"] = *r.Title
	}
	if r.Description != nil {
		body["description"] = *r.Description
	}
	if r.Status != nil {
		body["status"] = *r.Status
	}
	switch {
	case r.ClearAssignee:
		body["assignee_id"] = nil
	case r.AssigneeID != nil:
		body["assignee_id"] = *r.AssigneeID
	}
	return json.Marshal(body)
}

func (r UpdateTaskRequest) validate() error {
	if r.IsEmpty() {
		return ErrNothingToUpdate
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, *r.Status)
	}
	if r.ClearAssignee && r.AssigneeID != nil {
		return ErrAssigneeConflict
	}
	return nil
}

type client interface {
	Do(ctx context.Context, r api.Request, out any) error
}

type service struct {
	client client
}

// NewService creates a new task service
func NewService(c client) Service {
	return &service{client: c}
}

func tasksPath(projectID string, rest ...string) string {
	return "/projects/" + url.PathEscape(projectID) + "/tasks" + strings.Join(rest, "")
}

func taskPath(projectID, taskID string, rest ...string) string {
	return tasksPath(projectID, append([]string{"/", url.PathEscape(taskID)}, rest...)...)
}

func checkIDs(projectID, taskID string) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if taskID == "" {
		return ErrInvalidTaskID
	}
	return nil
}

// GetTasks lists a project's tasks; a null body is no tasks.
func (s *service) GetTasks(ctx context.Context, projectID string) ([]*models.Task, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	var raw json.RawMessage
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: tasksPath(projectID, "/")}, &raw); err != nil {
		return nil, api.Normalize(ActionFetchTasks, err)
	}
	tasks, err := api.DecodeList[*models.Task](raw)
	if err != nil {
		return nil, api.Normalize(ActionFetchTasks, err)
	}
	return tasks, nil
}

func (s *service) GetTask(ctx context.Context, projectID, taskID string) (*models.Task, error) {
	if err := checkIDs(projectID, taskID); err != nil {
		return nil, err
	}
	var task models.Task
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: taskPath(projectID, taskID)}, &task); err != nil {
		return nil, api.Normalize(ActionFetchTask, err)
	}
	return &task, nil
}

func (s *service) CreateTask(ctx context.Context, projectID string, req CreateTaskRequest) (*models.Task, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	status := req.Status
	if status == "" {
		status = models.DefaultTaskStatus
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	body := map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"status":      status,
	}
	if req.AssigneeID != "" {
		body["assignee_id"] = req.AssigneeID
	}

	var task models.Task
	if err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: tasksPath(projectID, "/"), Body: body}, &task); err != nil {
		return nil, api.Normalize(ActionCreateTask, err)
	}
	return &task, nil
}

// UpdateTask PATCHes only the fields set on req.
func (s *service) UpdateTask(ctx context.Context, projectID, taskID string, req UpdateTaskRequest) (*models.Task, error) {
	if err := checkIDs(projectID, taskID); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	var task models.Task
	if err := s.client.Do(ctx, api.Request{Method: http.MethodPatch, Path: taskPath(projectID, taskID), Body: req}, &task); err != nil {
		return nil, api.Normalize(ActionUpdateTask, err)
	}
	return &task, nil
}

func (s *service) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if err := checkIDs(projectID, taskID); err != nil {
		return err
	}
	if err := s.client.Do(ctx, api.Request{Method: http.MethodDelete, Path: taskPath(projectID, taskID)}, nil); err != nil {
		return api.Normalize(ActionDeleteTask, err)
	}
	return nil
}

// AssignTask uses the dedicated assign endpoint.
func (s *service) AssignTask(ctx context.Context, projectID, taskID, userID string) (*models.Task, error) {
	if err := checkIDs(projectID, taskID); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	var task models.Task
	err := s.client.Do(ctx, api.Request{
		Method: http.MethodPatch,
		Path:   taskPath(projectID, taskID, "/assign"),
		Body:   map[string]any{"userId": userID},
	}, &task)
	if err != nil {
		return nil, api.Normalize(ActionAssignTask, err)
	}
	return &task, nil
}

// UpdateTaskStatus validates status locally before sending it.
func (s *service) UpdateTaskStatus(ctx context.Context, projectID, taskID string, status models.TaskStatus) (*models.Task, error) {
	if err := checkIDs(projectID, taskID); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	var task models.Task
	err := s.client.Do(ctx, api.Request{
		Method: http.MethodPatch,
		Path:   taskPath(projectID, taskID),
		Body:   map[string]any{"status": status},
	}, &task)
	if err != nil {
		return nil, api.Normalize(ActionUpdateStatus, err)
	}
	return &task, nil
}
