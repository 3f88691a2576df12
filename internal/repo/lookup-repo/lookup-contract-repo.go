package lookup_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

// LookupRepoContract covers the reference tables: handlers, building types
// and the owned-property display color.
type LookupRepoContract interface {
	ListHandlers(ctx context.Context) ([]entity.HandlerEntity, *app_errors.AppError)
	GetHandlerByID(ctx context.Context, handlerID string) (*entity.HandlerEntity, *app_errors.AppError)
	// GetHandlerColor resolves a handler color by name, falling back to a
	// neutral gray for unknown names. Weak reference: no error on a miss.
	GetHandlerColor(ctx context.Context, handlerName string) string
	HandlerNameTaken(ctx context.Context, name, excludeID string) (bool, *app_errors.AppError)
	InsertHandler(ctx context.Context, tx tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError
	UpdateHandler(ctx context.Context, tx tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError
	DeleteHandler(ctx context.Context, tx tx.Tx, handlerID string) *app_errors.AppError

	ListBuildingTypes(ctx context.Context) ([]entity.BuildingTypeEntity, *app_errors.AppError)
	InsertBuildingType(ctx context.Context, tx tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError
	UpdateBuildingType(ctx context.Context, tx tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError
	DeleteBuildingType(ctx context.Context, tx tx.Tx, buildingTypeID string) *app_errors.AppError

	GetOwnedPropertyColor(ctx context.Context) string
	SetOwnedPropertyColor(ctx context.Context, tx tx.Tx, color string) *app_errors.AppError
}
