package property_case

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	use_cases "github.com/thomas0124/estate-portal/internal/use-cases"
)

func storedProperty() *entity.PropertyEntity {
	return &entity.PropertyEntity{
		ID:             "property-1",
		PropertyNumber: 1024,
		PropertyName:   "世田谷区桜丘3丁目戸建",
		PropertyType:   entity.TypeHouse,
		Status:         entity.StatusBrokerage,
		Price:          35_000_000,
		CompanyName:    "株式会社サンプル不動産",
		HandlerName:    "田中",
		CreatedAt:      time.Date(2025, 5, 10, 9, 0, 0, 0, time.Local),
		CreatedBy:      "user-1",
	}
}

// Test 1: Happy path, no status transition
func TestUpdateProperty_Success(t *testing.T) {
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

	original := storedProperty()
	req := validCreateRequest()
	req.PropertyName = "世田谷区桜丘3丁目戸建（値下げ）"

	repo.On("GetPropertyByID", ctx, "property-1").Return(original, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdateProperty", ctx, tx, mock.MatchedBy(func(p *entity.PropertyEntity) bool {
		return p.ID == "property-1" && p.CreatedBy == "user-1" && p.PropertyName == "世田谷区桜丘3丁目戸建（値下げ）"
	})).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateProperty(ctx, "property-1", req)

	assert.Nil(t, err)
	assert.False(t, resp.TaskCreated)

	repo.AssertExpectations(t)
	taskRepo.AssertNotCalled(t, "FindTaskByPropertyID", mock.Anything, mock.Anything)
}

// Test 2: The property number in the request is ignored on update
func TestUpdateProperty_NumberImmutable(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPropertyRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &PropertyService{
		repo:      repo,
		txManager: txManager,
	}

	original := storedProperty()
	req := validCreateRequest()
	req.PropertyNumber = 9999

	repo.On("GetPropertyByID", ctx, "property-1").Return(original, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdateProperty", ctx, tx, mock.MatchedBy(func(p *entity.PropertyEntity) bool {
		return p.PropertyNumber == 1024
	})).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateProperty(ctx, "property-1", req)

	assert.Nil(t, err)
	assert.Equal(t, 1024, resp.PropertyNumber)

	repo.AssertExpectations(t)
}

// Test 3: Transition into Post_Contract materializes the task once
func TestUpdateProperty_TransitionToPostContract(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPropertyRepo)
	taskRepo := new(MockTaskRepo)
	lookupRepo := new(MockLookupRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &PropertyService{
		repo:       repo,
		taskRepo:   taskRepo,
		lookupRepo: lookupRepo,
		txManager:  txManager,
	}

	original := storedProperty()
	contractDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	settlementDate := time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)
	req := validCreateRequest()
	req.Status = string(entity.StatusPostContract)
	req.ContractDate = &contractDate
	req.SettlementDate = &settlementDate

	repo.On("GetPropertyByID", ctx, "property-1").Return(original, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdateProperty", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))
	taskRepo.On("FindTaskByPropertyID", ctx, "property-1").Return((*entity.PropertyTaskEntity)(nil), (*app_errors.AppError)(nil))
	lookupRepo.On("GetHandlerColor", ctx, "田中").Return("#a7f3d0")
	taskRepo.On("InsertTask", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateProperty(ctx, "property-1", req)

	assert.Nil(t, err)
	assert.True(t, resp.TaskCreated)

	taskRepo.AssertExpectations(t)
}

// Test 4: Re-entering Post_Contract with an existing task is a no-op sync
func TestUpdateProperty_TaskAlreadyExists(t *testing.T) {
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

	original := storedProperty()
	original.Status = entity.StatusSaleHalted

	contractDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	settlementDate := time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local)
	req := validCreateRequest()
	req.Status = string(entity.StatusPostContract)
	req.ContractDate = &contractDate
	req.SettlementDate = &settlementDate

	existing := &entity.PropertyTaskEntity{ID: "task-1", PropertyID: "property-1"}

	repo.On("GetPropertyByID", ctx, "property-1").Return(original, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("UpdateProperty", ctx, tx, mock.Anything).Return((*app_errors.AppError)(nil))
	taskRepo.On("FindTaskByPropertyID", ctx, "property-1").Return(existing, (*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.UpdateProperty(ctx, "property-1", req)

	assert.Nil(t, err)
	assert.False(t, resp.TaskCreated)

	taskRepo.AssertNotCalled(t, "InsertTask", mock.Anything, mock.Anything, mock.Anything)
}

// Test 5: Unknown property
func TestUpdateProperty_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPropertyRepo)
	service := &PropertyService{repo: repo}

	notFound := app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.property", nil)
	repo.On("GetPropertyByID", ctx, "missing").Return((*entity.PropertyEntity)(nil), notFound)

	resp, err := service.UpdateProperty(ctx, "missing", validCreateRequest())

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)

	repo.AssertExpectations(t)
}
