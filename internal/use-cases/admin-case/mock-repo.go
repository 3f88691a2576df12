package admin_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type MockLookupRepo struct {
	mock.Mock
}

func (m *MockLookupRepo) ListHandlers(ctx context.Context) ([]entity.HandlerEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.HandlerEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockLookupRepo) GetHandlerByID(ctx context.Context, handlerID string) (*entity.HandlerEntity, *app_errors.AppError) {
	args := m.Called(ctx, handlerID)
	return args.Get(0).(*entity.HandlerEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockLookupRepo) GetHandlerColor(ctx context.Context, handlerName string) string {
	args := m.Called(ctx, handlerName)
	return args.String(0)
}

func (m *MockLookupRepo) HandlerNameTaken(ctx context.Context, name, excludeID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockLookupRepo) InsertHandler(ctx context.Context, t tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError {
	args := m.Called(ctx, t, handler)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) UpdateHandler(ctx context.Context, t tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError {
	args := m.Called(ctx, t, handler)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) DeleteHandler(ctx context.Context, t tx.Tx, handlerID string) *app_errors.AppError {
	args := m.Called(ctx, t, handlerID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) ListBuildingTypes(ctx context.Context) ([]entity.BuildingTypeEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.BuildingTypeEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockLookupRepo) InsertBuildingType(ctx context.Context, t tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError {
	args := m.Called(ctx, t, buildingType)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) UpdateBuildingType(ctx context.Context, t tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError {
	args := m.Called(ctx, t, buildingType)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) DeleteBuildingType(ctx context.Context, t tx.Tx, buildingTypeID string) *app_errors.AppError {
	args := m.Called(ctx, t, buildingTypeID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockLookupRepo) GetOwnedPropertyColor(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockLookupRepo) SetOwnedPropertyColor(ctx context.Context, t tx.Tx, color string) *app_errors.AppError {
	args := m.Called(ctx, t, color)
	return args.Get(0).(*app_errors.AppError)
}
