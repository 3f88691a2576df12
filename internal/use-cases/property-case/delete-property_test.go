package property_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	use_cases "github.com/thomas0124/estate-portal/internal/use-cases"
)

// Test 1: Happy path; the property's task, if any, is untouched
func TestDeleteProperty_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPropertyRepo)
	taskRepo := new(MockTaskRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &PropertyService{
		repo:      repo,
		taskRepo:  taskRepo,
		txManager: txManager,
	}

	repo.On("GetPropertyByID", ctx, "property-1").Return(storedProperty(), (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("DeleteProperty", ctx, tx, "property-1").Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	err := service.DeleteProperty(ctx, "property-1")

	assert.Nil(t, err)

	repo.AssertExpectations(t)
	taskRepo.AssertNotCalled(t, "DeleteTask", ctx, tx, "property-1")
}

// Test 2: Unknown property
func TestDeleteProperty_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPropertyRepo)
	service := &PropertyService{repo: repo}

	notFound := app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.property", nil)
	repo.On("GetPropertyByID", ctx, "missing").Return((*entity.PropertyEntity)(nil), notFound)

	err := service.DeleteProperty(ctx, "missing")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.CodeNotFound, err.Code)

	repo.AssertExpectations(t)
}
