package admin_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	admin_dto "github.com/thomas0124/estate-portal/internal/dtos/admin-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	use_cases "github.com/thomas0124/estate-portal/internal/use-cases"
)

// Test 1: Happy path
func TestAddBuildingType_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLookupRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &AdminService{
		repo:      repo,
		txManager: txManager,
	}

	req := &admin_dto.SaveBuildingTypeRequest{Name: "倉庫", Icon: "🏭"}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("InsertBuildingType", ctx, tx, mock.MatchedBy(func(b *entity.BuildingTypeEntity) bool {
		return b.Name == "倉庫" && b.Icon == "🏭" && b.ID != ""
	})).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	buildingType, err := service.AddBuildingType(ctx, admin, req)

	assert.Nil(t, err)
	assert.Equal(t, "倉庫", buildingType.Name)

	repo.AssertExpectations(t)
}

// Test 2: Non-admin is refused
func TestAddBuildingType_NotAdmin(t *testing.T) {
	ctx := context.Background()

	service := &AdminService{}

	buildingType, err := service.AddBuildingType(ctx, regular, &admin_dto.SaveBuildingTypeRequest{Name: "倉庫", Icon: "🏭"})

	assert.Nil(t, buildingType)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.CodeForbidden, err.Code)
}

// Test 3: Missing name is caught by the tag rules
func TestAddBuildingType_InvalidRequest(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLookupRepo)
	service := &AdminService{repo: repo}

	buildingType, err := service.AddBuildingType(ctx, admin, &admin_dto.SaveBuildingTypeRequest{Icon: "🏭"})

	assert.Nil(t, buildingType)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)

	repo.AssertNotCalled(t, "InsertBuildingType", mock.Anything, mock.Anything, mock.Anything)
}

// Test 4: Owned property color update
func TestUpdateOwnedPropertyColor_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLookupRepo)
	txManager := new(use_cases.MockTxManager)
	tx := new(use_cases.MockTx)
	service := &AdminService{
		repo:      repo,
		txManager: txManager,
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	repo.On("SetOwnedPropertyColor", ctx, tx, "#fde68a").Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	err := service.UpdateOwnedPropertyColor(ctx, admin, &admin_dto.UpdateOwnedPropertyColorRequest{Color: "#fde68a"})

	assert.Nil(t, err)

	repo.AssertExpectations(t)
}

// Test 5: Color format is validated
func TestUpdateOwnedPropertyColor_InvalidColor(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLookupRepo)
	service := &AdminService{repo: repo}

	err := service.UpdateOwnedPropertyColor(ctx, admin, &admin_dto.UpdateOwnedPropertyColorRequest{Color: "orange"})

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)

	repo.AssertNotCalled(t, "SetOwnedPropertyColor", mock.Anything, mock.Anything, mock.Anything)
}
