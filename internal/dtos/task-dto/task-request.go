package task_dto

import (
	"time"

	"github.com/thomas0124/estate-portal/internal/entity"
)

// TaskDetailInput is the edit surface of one checklist item. Status is a raw
// string here; validation pins it to the target field's own status set.
type TaskDetailInput struct {
	Status            string     `json:"status"`
	PlannedDate       *time.Time `json:"planned_date,omitempty"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	CompanyName       *string    `json:"company_name,omitempty"`
	ContactPerson     *string    `json:"contact_person,omitempty"`
	Bank              *string    `json:"bank,omitempty"`
	JudicialScrivener *string    `json:"judicial_scrivener,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// UpdateTaskRequest updates a checklist; absent fields keep their stored
// detail unchanged.
type UpdateTaskRequest struct {
	EstimatedSales       *string          `json:"estimated_sales,omitempty"`
	Reform               *TaskDetailInput `json:"reform,omitempty"`
	LoanProcedure        *TaskDetailInput `json:"loan_procedure,omitempty"`
	Survey               *TaskDetailInput `json:"survey,omitempty"`
	Demolition           *TaskDetailInput `json:"demolition,omitempty"`
	MortgageCancellation *TaskDetailInput `json:"mortgage_cancellation,omitempty"`
	Registration         *TaskDetailInput `json:"registration,omitempty"`
	PostProcessing       *TaskDetailInput `json:"post_processing,omitempty"`
}

// TaskListFilter combines all optional criteria with logical AND. The
// settlement window is inclusive on both ends.
type TaskListFilter struct {
	Handlers        []string   `json:"handlers,omitempty"`
	SettlementStart *time.Time `json:"settlement_start,omitempty"`
	SettlementEnd   *time.Time `json:"settlement_end,omitempty"`
	ShowCompleted   bool       `json:"show_completed"`
}

// TaskListItem pairs a task with its derived progress for rendering.
type TaskListItem struct {
	Task     entity.PropertyTaskEntity `json:"task"`
	Progress entity.TaskProgress       `json:"progress"`
	Overdue  bool                      `json:"overdue"`
}
