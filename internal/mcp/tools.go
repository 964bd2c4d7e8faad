package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool to the shared handler. Input schemas are
// inferred from the typed param structs by the SDK.
func registerTools(server *sdkmcp.Server, services Services) {
	h := NewHandler(services.Projects, services.Tasks, services.Activity)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project to hold scheduled tasks",
	}, toolFunc(func(ctx context.Context, in CreateProjectParams) (any, error) {
		return h.CreateProject(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects with task counts",
	}, toolFunc(func(ctx context.Context, in ListProjectsParams) (any, error) {
		return h.ListProjects(ctx)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get details for a specific project",
	}, toolFunc(func(ctx context.Context, in GetProjectParams) (any, error) {
		return h.GetProject(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Create a task with a title, assignee, status, and a start/end date range (YYYY-MM-DD)",
	}, toolFunc(func(ctx context.Context, in CreateTaskParams) (any, error) {
		return h.CreateTask(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Update a task; omitted fields keep their current values, an empty dependency_id clears the dependency",
	}, toolFunc(func(ctx context.Context, in UpdateTaskParams) (any, error) {
		return h.UpdateTask(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task; other tasks depending on it have their dependency cleared",
	}, toolFunc(func(ctx context.Context, in DeleteTaskParams) (any, error) {
		return h.DeleteTask(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally scoped to a project",
	}, toolFunc(func(ctx context.Context, in ListTasksParams) (any, error) {
		return h.ListTasks(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_timeline",
		Description: "Compute the positioned timeline for a project: filtered tasks with pixel offsets for the chosen view (day, week, month)",
	}, toolFunc(func(ctx context.Context, in GetTimelineParams) (any, error) {
		return h.GetTimeline(ctx, in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "resolve_date_preset",
		Description: "Resolve a named date preset (this-month, next-quarter, ...) to concrete start and end dates",
	}, toolFunc(func(ctx context.Context, in ResolveDatePresetParams) (any, error) {
		return h.ResolveDatePreset(in)
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get recent activity entries for a project or task",
	}, toolFunc(func(ctx context.Context, in GetRecentActivityParams) (any, error) {
		return h.GetRecentActivity(ctx, in)
	}))
}

// toolFunc adapts a plain handler method to the SDK tool signature.
func toolFunc[In any](fn func(ctx context.Context, in In) (any, error)) sdkmcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		out, err := fn(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	}
}
