package property_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) ListProperties(ctx context.Context) ([]entity.PropertyEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PropertyEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPropertyRepo) GetPropertyByID(ctx context.Context, propertyID string) (*entity.PropertyEntity, *app_errors.AppError) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(*entity.PropertyEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPropertyRepo) PropertyNumberTaken(ctx context.Context, number int, excludeID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockPropertyRepo) InsertProperty(ctx context.Context, t tx.Tx, property *entity.PropertyEntity) *app_errors.AppError {
	args := m.Called(ctx, t, property)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockPropertyRepo) UpdateProperty(ctx context.Context, t tx.Tx, property *entity.PropertyEntity) *app_errors.AppError {
	args := m.Called(ctx, t, property)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockPropertyRepo) DeleteProperty(ctx context.Context, t tx.Tx, propertyID string) *app_errors.AppError {
	args := m.Called(ctx, t, propertyID)
	return args.Get(0).(*app_errors.AppError)
}

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

type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) FetchPrice(ctx context.Context, athomeNumber string, currentPrice int64) (int64, error) {
	args := m.Called(ctx, athomeNumber, currentPrice)
	return args.Get(0).(int64), args.Error(1)
}
