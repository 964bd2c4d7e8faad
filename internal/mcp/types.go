package mcp

import (
	"fmt"
	"time"

	"github.com/dkeller/planboard/internal/domain/activity"
	"github.com/dkeller/planboard/internal/domain/task"
	"github.com/dkeller/planboard/internal/timeline"
)

// dateLayout is the wire format for calendar dates. Times of day are never
// exposed; the planner works in whole days.
const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &APIError{
			Code:         "INVALID_DATE",
			Message:      fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD", field, value),
			RecoveryHint: "Use ISO dates like 2024-03-15",
		}
	}
	return d, nil
}

func formatDate(d time.Time) string {
	return d.Format(dateLayout)
}

type CreateProjectParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GetProjectParams struct {
	ID string `json:"id"`
}

type ListProjectsParams struct{}

type ProjectSummaryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	TaskCount      int    `json:"task_count"`
	CompletedTasks int    `json:"completed_tasks"`
}

type ListProjectsResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
}

type CreateTaskParams struct {
	ID           string  `json:"id,omitempty"`
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	Status       string  `json:"status,omitempty"`
	Assignee     string  `json:"assignee"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DependencyID *string `json:"dependency_id,omitempty"`
}

type UpdateTaskParams struct {
	ID           string  `json:"id"`
	Title        *string `json:"title,omitempty"`
	Status       *string `json:"status,omitempty"`
	Assignee     *string `json:"assignee,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DependencyID *string `json:"dependency_id,omitempty"`
}

type DeleteTaskParams struct {
	ID string `json:"id"`
}

type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

type ListTasksParams struct {
	ProjectID string `json:"project_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

type TaskResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Assignee     string  `json:"assignee"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DependencyID *string `json:"dependency_id,omitempty"`
}

func taskResponse(t task.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		Status:       string(t.Status),
		Assignee:     t.Assignee,
		StartDate:    formatDate(t.StartDate),
		EndDate:      formatDate(t.EndDate),
		DependencyID: t.DependencyID,
	}
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type GetTimelineParams struct {
	ProjectID string   `json:"project_id"`
	View      string   `json:"view,omitempty"`
	Statuses  []string `json:"statuses,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Search    string   `json:"search,omitempty"`
	Preset    string   `json:"preset,omitempty"`
	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
}

type TimelineRow struct {
	Task  TaskResponse `json:"task"`
	Left  float64      `json:"left"`
	Width float64      `json:"width"`
}

type TimelineResponse struct {
	SpanStart    string        `json:"span_start,omitempty"`
	SpanEnd      string        `json:"span_end,omitempty"`
	View         string        `json:"view"`
	PixelsPerDay float64       `json:"pixels_per_day"`
	Rows         []TimelineRow `json:"rows"`
	TodayOffset  *float64      `json:"today_offset,omitempty"`
}

type ResolveDatePresetParams struct {
	Preset string `json:"preset"`
}

type DateRangeResponse struct {
	Preset string `json:"preset"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

func dateRangeResponse(dr timeline.DateRange) DateRangeResponse {
	resp := DateRangeResponse{Preset: string(dr.Preset)}
	if dr.Start != nil {
		resp.Start = formatDate(*dr.Start)
	}
	if dr.End != nil {
		resp.End = formatDate(*dr.End)
	}
	return resp
}

type GetRecentActivityParams struct {
	ProjectID string  `json:"project_id,omitempty"`
	TaskID    *string `json:"task_id,omitempty"`
	Limit     int     `json:"limit,omitempty"`
	Offset    int     `json:"offset,omitempty"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      activity.Type `json:"type"`
	ProjectID string        `json:"project_id"`
	TaskID    *string       `json:"task_id,omitempty"`
	Summary   string        `json:"summary"`
}

type GetRecentActivityResponse struct {
	Activity []ActivityEntryResponse `json:"activity"`
}
