package task_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type TaskRepoContract interface {
	ListTasks(ctx context.Context) ([]entity.PropertyTaskEntity, *app_errors.AppError)
	GetTaskByID(ctx context.Context, taskID string) (*entity.PropertyTaskEntity, *app_errors.AppError)
	// FindTaskByPropertyID returns (nil, nil) when the property has no task
	// yet; the lifecycle sync uses it as its existence check.
	FindTaskByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyTaskEntity, *app_errors.AppError)
	InsertTask(ctx context.Context, tx tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError
	UpdateTask(ctx context.Context, tx tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError
	DeleteTask(ctx context.Context, tx tx.Tx, taskID string) *app_errors.AppError
}
