package task_case

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

func boardTasks() []entity.PropertyTaskEntity {
	t1 := freshTask()
	t1.ID = "task-1"
	t1.HandlerName = "田中"
	t1.SettlementDate = time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local)

	t2 := completedTask()
	t2.ID = "task-2"
	t2.HandlerName = "佐藤"
	t2.SettlementDate = time.Date(2025, 9, 10, 0, 0, 0, 0, time.Local)

	t3 := freshTask()
	t3.ID = "task-3"
	t3.HandlerName = "田中"
	t3.SettlementDate = time.Date(2025, 10, 5, 0, 0, 0, 0, time.Local)

	return []entity.PropertyTaskEntity{*t1, *t2, *t3}
}

// Completed checklists are hidden by default and the rest is ordered by
// settlement date.
func TestFilterTasks_DefaultHidesCompleted(t *testing.T) {
	out := FilterTasks(boardTasks(), &task_dto.TaskListFilter{})

	assert.Len(t, out, 2)
	assert.Equal(t, "task-3", out[0].ID)
	assert.Equal(t, "task-1", out[1].ID)
}

func TestFilterTasks_ShowCompleted(t *testing.T) {
	out := FilterTasks(boardTasks(), &task_dto.TaskListFilter{ShowCompleted: true})

	assert.Len(t, out, 3)
	assert.Equal(t, "task-2", out[0].ID)
}

func TestFilterTasks_ByHandler(t *testing.T) {
	out := FilterTasks(boardTasks(), &task_dto.TaskListFilter{
		Handlers:      []string{"佐藤"},
		ShowCompleted: true,
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "task-2", out[0].ID)
}

// The settlement window is inclusive on both ends.
func TestFilterTasks_SettlementWindow(t *testing.T) {
	start := time.Date(2025, 10, 5, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local)

	out := FilterTasks(boardTasks(), &task_dto.TaskListFilter{
		SettlementStart: &start,
		SettlementEnd:   &end,
		ShowCompleted:   true,
	})

	assert.Len(t, out, 2)
	assert.Equal(t, "task-3", out[0].ID)
	assert.Equal(t, "task-1", out[1].ID)
}

func TestListTasks_DerivesProgressAndOverdue(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &TaskService{repo: repo}

	overdueTask := freshTask()
	overdueTask.ID = "task-overdue"
	overdueTask.SettlementDate = time.Now().AddDate(0, 0, -3)

	futureTask := freshTask()
	futureTask.ID = "task-future"
	futureTask.SettlementDate = time.Now().AddDate(0, 1, 0)

	repo.On("ListTasks", ctx).Return([]entity.PropertyTaskEntity{*overdueTask, *futureTask}, (*app_errors.AppError)(nil))

	items, err := service.ListTasks(ctx, &task_dto.TaskListFilter{})

	assert.Nil(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "task-overdue", items[0].Task.ID)
	assert.True(t, items[0].Overdue)
	assert.Equal(t, 0, items[0].Progress.Progress)
	assert.False(t, items[1].Overdue)

	repo.AssertExpectations(t)
}
