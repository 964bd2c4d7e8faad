package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkeller/planboard/internal/domain/activity"
	"github.com/dkeller/planboard/internal/domain/project"
	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Summary, error)
}

// TaskService defines task operations needed by MCP.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest) (*task.Task, error)
	Update(ctx context.Context, req task.UpdateRequest) (*task.Task, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*task.Task, error)
	List(ctx context.Context, opts task.ListOptions) ([]task.Task, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Handler dispatches MCP commands to domain services.
type Handler struct {
	projects ProjectService
	tasks    TaskService
	activity ActivityService

	// now is swapped in tests to pin the clock.
	now func() time.Time
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService, tasks TaskService, activitySvc ActivityService) *Handler {
	return &Handler{
		projects: projects,
		tasks:    tasks,
		activity: activitySvc,
		now:      time.Now,
	}
}

// Handle dispatches a named method with raw JSON params. The HTTP JSON-RPC
// transport calls this; the MCP tools call the typed methods directly.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.CreateProject(ctx, req)
	case "list_projects":
		return h.ListProjects(ctx)
	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.GetProject(ctx, req)
	case "create_task":
		var req CreateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.CreateTask(ctx, req)
	case "update_task":
		var req UpdateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.UpdateTask(ctx, req)
	case "delete_task":
		var req DeleteTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.DeleteTask(ctx, req)
	case "list_tasks":
		var req ListTasksParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.ListTasks(ctx, req)
	case "get_timeline":
		var req GetTimelineParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.GetTimeline(ctx, req)
	case "resolve_date_preset":
		var req ResolveDatePresetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.ResolveDatePreset(req)
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.GetRecentActivity(ctx, req)
	default:
		return nil, &APIError{
			Code:         "UNKNOWN_METHOD",
			Message:      "unknown method: " + method,
			RecoveryHint: "Call tools/list for available methods",
		}
	}
}

// CreateProject creates a new project.
func (h *Handler) CreateProject(ctx context.Context, req CreateProjectParams) (*project.Project, error) {
	proj, err := h.projects.Create(ctx, project.CreateRequest{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// ListProjects lists all projects with task counts.
func (h *Handler) ListProjects(ctx context.Context) (*ListProjectsResponse, error) {
	projects, err := h.projects.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	resp := &ListProjectsResponse{Projects: make([]ProjectSummaryResponse, 0, len(projects))}
	for _, proj := range projects {
		resp.Projects = append(resp.Projects, ProjectSummaryResponse{
			ID:             proj.ID,
			Name:           proj.Name,
			Description:    proj.Description,
			TaskCount:      proj.TaskCount,
			CompletedTasks: proj.CompletedTasks,
		})
	}
	return resp, nil
}

// GetProject fetches one project.
func (h *Handler) GetProject(ctx context.Context, req GetProjectParams) (*project.Project, error) {
	proj, err := h.projects.Get(ctx, req.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return proj, nil
}

// CreateTask creates a new task.
func (h *Handler) CreateTask(ctx context.Context, req CreateTaskParams) (*TaskResponse, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	status := task.Status(req.Status)
	if req.Status == "" {
		status = task.StatusNotStarted
	}

	created, err := h.tasks.Create(ctx, task.CreateRequest{
		ID:           req.ID,
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Status:       status,
		Assignee:     req.Assignee,
		StartDate:    start,
		EndDate:      end,
		DependencyID: req.DependencyID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	resp := taskResponse(*created)
	return &resp, nil
}

// UpdateTask updates an existing task; omitted fields keep their values.
func (h *Handler) UpdateTask(ctx context.Context, req UpdateTaskParams) (*TaskResponse, error) {
	update := task.UpdateRequest{
		ID:           req.ID,
		Title:        req.Title,
		Assignee:     req.Assignee,
		DependencyID: req.DependencyID,
	}
	if req.Status != nil {
		status := task.Status(*req.Status)
		update.Status = &status
	}
	if req.StartDate != nil {
		start, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		update.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		update.EndDate = &end
	}

	updated, err := h.tasks.Update(ctx, update)
	if err != nil {
		return nil, mapError(err)
	}

	resp := taskResponse(*updated)
	return &resp, nil
}

// DeleteTask removes a task, clearing dependency references to it.
func (h *Handler) DeleteTask(ctx context.Context, req DeleteTaskParams) (*DeleteTaskResponse, error) {
	if err := h.tasks.Delete(ctx, req.ID); err != nil {
		return nil, mapError(err)
	}
	return &DeleteTaskResponse{Deleted: true}, nil
}

// ListTasks lists tasks, optionally scoped to a project.
func (h *Handler) ListTasks(ctx context.Context, req ListTasksParams) (*ListTasksResponse, error) {
	tasks, err := h.tasks.List(ctx, task.ListOptions{
		ProjectID: req.ProjectID,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	resp := &ListTasksResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskResponse(t))
	}
	return resp, nil
}

// GetTimeline runs the filter pipeline over a project's tasks and returns
// positioned rows ready for rendering.
func (h *Handler) GetTimeline(ctx context.Context, req GetTimelineParams) (*TimelineResponse, error) {
	if _, err := h.projects.Get(ctx, req.ProjectID); err != nil {
		return nil, mapError(err)
	}

	view := timeline.ViewDay
	if req.View != "" {
		view = timeline.ViewMode(req.View)
		if !view.Valid() {
			return nil, &APIError{
				Code:         "INVALID_VIEW",
				Message:      "unknown view mode: " + req.View,
				RecoveryHint: "Use day, week, or month",
			}
		}
	}

	dr, err := h.resolveRange(req.Preset, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	tasks, err := h.tasks.List(ctx, task.ListOptions{ProjectID: req.ProjectID})
	if err != nil {
		return nil, mapError(err)
	}

	statuses := make([]task.Status, 0, len(req.Statuses))
	for _, s := range req.Statuses {
		statuses = append(statuses, task.Status(s))
	}
	visible := timeline.Apply(tasks, timeline.Filters{
		Statuses:  statuses,
		Assignees: req.Assignees,
		Search:    req.Search,
	}, dr)

	resp := &TimelineResponse{
		View:         string(view),
		PixelsPerDay: view.PixelsPerDay(),
		Rows:         make([]TimelineRow, 0, len(visible)),
	}

	span, ok := timeline.CalculateSpan(visible)
	if !ok {
		return resp, nil
	}

	today := timeline.Midnight(h.now())
	span = span.Through(today)
	resp.SpanStart = formatDate(span.Start)
	resp.SpanEnd = formatDate(span.End)

	px := view.PixelsPerDay()
	for _, t := range visible {
		pos := timeline.TaskPosition(t, span.Start, px)
		resp.Rows = append(resp.Rows, TimelineRow{
			Task:  taskResponse(t),
			Left:  pos.Left,
			Width: pos.Width,
		})
	}

	if off, ok := timeline.TodayOffset(today, span, px); ok {
		resp.TodayOffset = &off
	}

	return resp, nil
}

// ResolveDatePreset converts a named preset into concrete bounds.
func (h *Handler) ResolveDatePreset(req ResolveDatePresetParams) (*DateRangeResponse, error) {
	preset := timeline.Preset(req.Preset)
	if !preset.Valid() {
		return nil, &APIError{
			Code:         "INVALID_PRESET",
			Message:      "unknown date preset: " + req.Preset,
			RecoveryHint: "Use all, this-month, next-month, this-quarter, next-quarter, this-year, next-year, or custom",
		}
	}
	resp := dateRangeResponse(timeline.ResolvePreset(preset, h.now()))
	return &resp, nil
}

// GetRecentActivity lists recent activity entries, newest first.
func (h *Handler) GetRecentActivity(ctx context.Context, req GetRecentActivityParams) (*GetRecentActivityResponse, error) {
	entries, err := h.activity.GetRecent(ctx, activity.ListOptions{
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		return nil, mapError(err)
	}
	resp := &GetRecentActivityResponse{Activity: make([]ActivityEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Activity = append(resp.Activity, ActivityEntryResponse{
			Timestamp: entry.CreatedAt,
			Type:      entry.Type,
			ProjectID: entry.ProjectID,
			TaskID:    entry.TaskID,
			Summary:   entry.Summary,
		})
	}
	return resp, nil
}

// resolveRange turns preset/start/end params into a date range. A custom
// preset (or none) uses the explicit bounds; named presets are resolved
// against the current clock.
func (h *Handler) resolveRange(preset, start, end string) (timeline.DateRange, error) {
	p := timeline.Preset(preset)
	if preset == "" {
		p = timeline.PresetAll
	}
	if !p.Valid() {
		return timeline.DateRange{}, &APIError{
			Code:         "INVALID_PRESET",
			Message:      "unknown date preset: " + preset,
			RecoveryHint: "Use all, this-month, next-month, this-quarter, next-quarter, this-year, next-year, or custom",
		}
	}

	if p != timeline.PresetCustom {
		return timeline.ResolvePreset(p, h.now()), nil
	}

	dr := timeline.DateRange{Preset: p}
	if start != "" {
		d, err := parseDate("start", start)
		if err != nil {
			return timeline.DateRange{}, err
		}
		dr.Start = &d
	}
	if end != "" {
		d, err := parseDate("end", end)
		if err != nil {
			return timeline.DateRange{}, err
		}
		dr.End = &d
	}
	return dr, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
