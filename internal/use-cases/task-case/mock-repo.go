package task_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) ListTasks(ctx context.Context) ([]entity.PropertyTaskEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PropertyTaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.PropertyTaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.PropertyTaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) FindTaskByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyTaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(*entity.PropertyTaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertTask(ctx context.Context, t tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError {
	args := m.Called(ctx, t, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, t tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError {
	args := m.Called(ctx, t, task)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) DeleteTask(ctx context.Context, t tx.Tx, taskID string) *app_errors.AppError {
	args := m.Called(ctx, t, taskID)
	return args.Get(0).(*app_errors.AppError)
}
