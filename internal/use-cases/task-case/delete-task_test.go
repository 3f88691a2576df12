package task_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	use_cases "github.com/thomas0124/estate-portal/internal/use-cases"
)

// Test 1: Happy path, admin deletes a finished checklist
func TestDeleteTask_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &TaskService{
		repo:      repo,
		txManager: txManager,
	}

	admin := &entity.UserEntity{ID: "user-1", Role: entity.RoleAdmin}

	repo.On("GetTaskByID", ctx, "task-1").Return(completedTask(), (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("DeleteTask", ctx, tx, "task-1").Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	err := service.DeleteTask(ctx, admin, "task-1")

	assert.Nil(t, err)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

// Test 2: Non-admin is refused before any lookup
func TestDeleteTask_NotAdmin(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &TaskService{repo: repo}

	user := &entity.UserEntity{ID: "user-2", Role: entity.RoleUser}

	err := service.DeleteTask(ctx, user, "task-1")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.CodeForbidden, err.Code)
	assert.Equal(t, "forbidden.admin_only", err.MessageKey)

	repo.AssertNotCalled(t, "GetTaskByID", mock.Anything, mock.Anything)
}

// Test 3: A missing actor fails closed
func TestDeleteTask_NilActor(t *testing.T) {
	ctx := context.Background()

	service := &TaskService{}

	err := service.DeleteTask(ctx, nil, "task-1")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)
}

// Test 4: An unfinished checklist cannot be deleted
func TestDeleteTask_InProgress(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := &TaskService{repo: repo}

	admin := &entity.UserEntity{ID: "user-1", Role: entity.RoleAdmin}

	repo.On("GetTaskByID", ctx, "task-1").Return(freshTask(), (*app_errors.AppError)(nil))

	err := service.DeleteTask(ctx, admin, "task-1")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.CodeConflict, err.Code)
	assert.Equal(t, "conflict.task_in_progress", err.MessageKey)

	repo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything, mock.Anything)
}
