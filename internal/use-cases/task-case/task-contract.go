package task_case

import (
	"context"

	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/period"
)

type TaskServiceContract interface {
	ListTasks(ctx context.Context, filter *task_dto.TaskListFilter) ([]task_dto.TaskListItem, *app_errors.AppError)
	GetTaskByID(ctx context.Context, taskID string) (*task_dto.TaskListItem, *app_errors.AppError)
	UpdateTask(ctx context.Context, taskID string, req *task_dto.UpdateTaskRequest) (*entity.PropertyTaskEntity, *app_errors.AppError)
	DeleteTask(ctx context.Context, actor *entity.UserEntity, taskID string) *app_errors.AppError
	MonthlyStatistics(ctx context.Context, periods []period.Period) (map[string]task_dto.MonthStatistics, *app_errors.AppError)
	HandlerStatistics(ctx context.Context, window period.Period) (map[string]task_dto.HandlerStatistics, *app_errors.AppError)
}
