package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/models"
	taskservice "github.com/thenoetrevino/hito/internal/services/task"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

// Task actions of the project page. Each opens a form or picker, and its
// submit builds the one call that carries the change. Results come back as
// taskCreatedMsg, taskUpdatedMsg or taskDeletedMsg and are spliced into the
// list by id.

func (p *projectPage) openForm(mode projectMode, target *models.Task, form *huh.Form) tea.Cmd {
	p.mode = mode
	p.target = target
	p.form = newForm(form, p.env.width)
	return p.form.Init()
}

func (p *projectPage) closeForm() {
	p.mode = modeList
	p.form = nil
	p.target = nil
}

func (p *projectPage) openAddTask() tea.Cmd {
	p.taskValues = huhforms.TaskValues{}
	return p.openForm(modeAddTask, nil, huhforms.NewTaskForm(&p.taskValues))
}

func (p *projectPage) openInlineEdit(task *models.Task) tea.Cmd {
	p.taskValues = huhforms.TaskValuesFrom(task)
	return p.openForm(modeInlineEdit, task, huhforms.NewInlineTaskForm(&p.taskValues))
}

func (p *projectPage) openEditModal(task *models.Task) tea.Cmd {
	p.taskValues = huhforms.TaskValuesFrom(task)
	return p.openForm(modeEditModal, task, huhforms.NewTaskModalForm(&p.taskValues, p.users))
}

func (p *projectPage) openStatusPicker(task *models.Task) tea.Cmd {
	p.statusValue = task.Status
	return p.openForm(modeStatusPicker, task, huhforms.NewStatusPicker(&p.statusValue))
}

func (p *projectPage) openAssignPicker(task *models.Task) tea.Cmd {
	if len(p.users) == 0 {
		return notify(state.LevelWarning, "This project has no members to assign")
	}
	p.assignValues = huhforms.AssignValues{}
	if task.Assignee != nil {
		p.assignValues.UserID = task.Assignee.ID
	}
	return p.openForm(modeAssignPicker, task, huhforms.NewAssigneePicker(&p.assignValues, p.users))
}

func (p *projectPage) updateForm(msg tea.Msg) tea.Cmd {
	if p.busy {
		return nil
	}

	var cmd tea.Cmd
	p.form, cmd = updateForm(p.form, msg, p.env.keys.SaveForm)
	switch p.form.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, p.submit())
	case huh.StateAborted:
		p.closeForm()
		return nil
	}
	return cmd
}

// submit dispatches on the open form and closes it.
func (p *projectPage) submit() tea.Cmd {
	mode, target := p.mode, p.target
	p.closeForm()

	switch mode {
	case modeAddTask:
		return p.submitAddTask()
	case modeInlineEdit:
		return p.submitEdit(target, false)
	case modeEditModal:
		return p.submitEdit(target, true)
	case modeStatusPicker:
		return p.submitStatus(target, p.statusValue)
	case modeAssignPicker:
		if !p.assignValues.Confirm {
			return nil
		}
		return p.submitAssign(target, p.assignValues.UserID)
	}
	return nil
}

func (p *projectPage) submitAddTask() tea.Cmd {
	if p.busy {
		return nil
	}
	req := taskservice.CreateTaskRequest{
		Title:       strings.TrimSpace(p.taskValues.Title),
		Description: strings.TrimSpace(p.taskValues.Description),
		Status:      p.taskValues.Status,
	}
	if req.Title == "" {
		return notify(state.LevelWarning, "Task title cannot be empty")
	}
	p.busy = true

	projectID := p.projectID
	tasks := p.env.app.TaskService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		task, err := tasks.CreateTask(ctx, projectID, req)
		return taskCreatedMsg{task: task, err: err}
	})
}

// editRequest holds only what differs from task. The inline form never
// touches status or assignee.
func editRequest(task *models.Task, v huhforms.TaskValues, full bool) taskservice.UpdateTaskRequest {
	var req taskservice.UpdateTaskRequest
	before := huhforms.TaskValuesFrom(task)

	if title := strings.TrimSpace(v.Title); title != task.Title {
		req.Title = &title
	}
	if description := strings.TrimSpace(v.Description); description != task.Description {
		req.Description = &description
	}
	if !full {
		return req
	}
	if v.Status != before.Status {
		status := v.Status
		req.Status = &status
	}
	if v.AssigneeID != before.AssigneeID {
		if v.AssigneeID == "" {
			req.ClearAssignee = true
		} else {
			assignee := v.AssigneeID
			req.AssigneeID = &assignee
		}
	}
	return req
}

func (p *projectPage) submitEdit(task *models.Task, full bool) tea.Cmd {
	if task == nil {
		return nil
	}
	req := editRequest(task, p.taskValues, full)
	if req.IsEmpty() {
		return nil
	}
	if req.Title != nil && *req.Title == "" {
		return notify(state.LevelWarning, "Task title cannot be empty")
	}

	projectID, taskID := p.projectID, task.ID
	tasks := p.env.app.TaskService
	return p.mutate("updated", func(ctx context.Context) (*models.Task, error) {
		return tasks.UpdateTask(ctx, projectID, taskID, req)
	})
}

func (p *projectPage) submitStatus(task *models.Task, status models.TaskStatus) tea.Cmd {
	if task == nil || status == task.Status {
		return nil
	}
	projectID, taskID := p.projectID, task.ID
	tasks := p.env.app.TaskService
	return p.mutate("moved to "+status.Label(), func(ctx context.Context) (*models.Task, error) {
		return tasks.UpdateTaskStatus(ctx, projectID, taskID, status)
	})
}

func (p *projectPage) submitAssign(task *models.Task, userID string) tea.Cmd {
	if task == nil || userID == "" {
		return nil
	}
	projectID, taskID := p.projectID, task.ID
	tasks := p.env.app.TaskService
	return p.mutate("assigned", func(ctx context.Context) (*models.Task, error) {
		return tasks.AssignTask(ctx, projectID, taskID, userID)
	})
}

func (p *projectPage) unassign(task *models.Task) tea.Cmd {
	if !task.IsAssigned() {
		return notify(state.LevelWarning, "Task is not assigned")
	}
	projectID, taskID := p.projectID, task.ID
	tasks := p.env.app.TaskService
	return p.mutate("unassigned", func(ctx context.Context) (*models.Task, error) {
		return tasks.UpdateTask(ctx, projectID, taskID, taskservice.UpdateTaskRequest{ClearAssignee: true})
	})
}

func (p *projectPage) submitDelete() tea.Cmd {
	if p.busy || p.target == nil {
		return nil
	}
	p.busy = true

	projectID, taskID := p.projectID, p.target.ID
	tasks := p.env.app.TaskService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		return taskDeletedMsg{id: taskID, err: tasks.DeleteTask(ctx, projectID, taskID)}
	})
}

// mutate runs one update of an existing task. verb completes the "Task ..."
// notification shown on success.
func (p *projectPage) mutate(verb string, fn func(ctx context.Context) (*models.Task, error)) tea.Cmd {
	if p.busy {
		return nil
	}
	p.busy = true
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		task, err := fn(ctx)
		return taskUpdatedMsg{task: task, verb: verb, err: err}
	})
}

// withAssignee fills in the embedded assignee from the member list when the
// server only sent the id.
func (p *projectPage) withAssignee(task *models.Task) *models.Task {
	if task == nil || task.Assignee != nil || task.AssigneeID == nil {
		return task
	}
	for _, u := range p.users {
		if u.ID == *task.AssigneeID {
			task.Assignee = &models.Assignee{ID: u.ID, Username: u.Username, Email: u.Email}
			break
		}
	}
	return task
}
